// Package assemble merges per-field extraction results into either a fully
// populated record or a report keyed by the fields that failed. A record is
// never observable with placeholder values: the record constructor only runs
// once every collected field is known to be ok.
package assemble

import (
	"fmt"
	"sort"
	"strings"

	"nikkedle-backend/lib/outcome"
)

// Report maps a field name to the diagnostic for that field's failure.
// A field that succeeded never has an entry, so an empty Report means
// nothing went wrong.
type Report map[string]string

// Fields returns the failing field names in lexical order.
func (r Report) Fields() []string {
	fields := make([]string, 0, len(r))
	for name := range r {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}

func (r Report) String() string {
	var out strings.Builder
	for i, name := range r.Fields() {
		if i > 0 {
			out.WriteString("; ")
		}
		fmt.Fprintf(&out, "%s: %s", name, r[name])
	}
	return out.String()
}

// Collector accumulates field failures while a record's fields are being
// unwrapped. Build one per record and discard it after Finish.
type Collector struct {
	errs Report
}

func NewCollector() *Collector {
	return &Collector{errs: Report{}}
}

// Take unwraps one field result, recording the failure under the field's
// name when it is an Err. The returned value is the zero value on failure
// and must only reach a record through Finish, which refuses to build one.
func Take[V any](c *Collector, field string, r outcome.Result[V, string]) V {
	msg, isErr := r.GetErr()
	if isErr {
		c.errs[field] = msg
	}
	value, _ := r.Get()
	return value
}

// Finish produces the record when every taken field was ok, otherwise the
// report of failing fields. build runs only in the all-ok case.
func Finish[R any](c *Collector, build func() R) outcome.Result[R, Report] {
	if len(c.errs) > 0 {
		return outcome.Err[R, Report](c.errs)
	}
	return outcome.Ok[R, Report](build())
}
