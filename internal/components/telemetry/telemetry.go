package telemetry

import (
	"fmt"
)

// API is an abstraction over logging/metrics so that brokenness reporting
// can be asserted on in tests.
//
// The `id` passed to the Report methods is an identifier locating the
// component that broke, not the specific line that broke: seeing the id on
// a dashboard should be enough to find the broken place. Format ids as
// `<component>.<method>`, all lowercase, dashes inside a segment
// (ex. `wiki_scraper: client.get-page`). Disambiguating detail belongs in
// params or a wrapped error, not the id.
type API interface {
	// ReportBroken reports a component that broke in a way that should be
	// addressed.
	ReportBroken(id string, params ...any)

	// ReportWarning reports a scenario that is not necessarily broken but
	// may deserve investigation.
	ReportWarning(id string, params ...any)

	// ReportDebug reports debug information that is ignored in production.
	ReportDebug(msg string, params ...any)

	// ReportCount reports the count of an event at the current time. Counts
	// are points over time, not values to be summed.
	ReportCount(id string, count int64)
}

// ScopedAPI attaches a namespace to every report passing through it,
// similar to a sub-logger with a fixed prefix.
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(fmt.Sprintf("%s: %s", s.namespace, msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(fmt.Sprintf("%s: %s", s.namespace, id), count)
}
