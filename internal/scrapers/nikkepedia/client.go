// client.go contains the logic for fetching wiki pages, it knows nothing
// about the shape of the documents it returns.

package nikkepedia

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"nikkedle-backend/internal/components/chrono"
	"nikkedle-backend/internal/components/db"
	"nikkedle-backend/internal/components/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	report_client_get_page   = "client.get-page"
	report_client_page_cache = "client.page-cache"
)

type client struct {
	baseUrl  *url.URL
	http     *resty.Client
	qry      *db.Queries
	time     chrono.API
	cacheTTL time.Duration
	tel      telemetry.API
}

func newClient(
	baseUrl string,
	qry *db.Queries,
	clock chrono.API,
	cacheTTL time.Duration,
	tel telemetry.API,
) (*client, error) {
	parsedBaseUrl, err := url.Parse(baseUrl)
	if err != nil {
		return nil, err
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(baseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	httpClient.SetCookieJar(jar)
	httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)

	httpClient.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	httpClient.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(parsedBaseUrl.Hostname()))
	httpClient.SetTimeout(time.Second * 30)

	// 2 requests max per second
	// max burst >= 2 just means that no requests will be dropped
	rateLimiter := rate.NewLimiter(2, 2)
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return rateLimiter.Wait(req.Context())
	})

	telemetry.InstrumentResty(httpClient, tel)

	return &client{
		baseUrl:  parsedBaseUrl,
		http:     httpClient,
		qry:      qry,
		time:     clock,
		cacheTTL: cacheTTL,
		tel:      tel,
	}, nil
}

func (c *client) resolve(path string) string {
	ref, err := url.Parse(path)
	if err != nil {
		return c.baseUrl.String() + path
	}
	return c.baseUrl.ResolveReference(ref).String()
}

// GetPage returns the parsed document at path (absolute or wiki-relative),
// serving from the page cache when the cached copy is younger than the
// cache ttl.
func (c *client) GetPage(ctx context.Context, path string) (*goquery.Document, error) {
	link := c.resolve(path)

	cached, err := c.qry.GetCachedPage(ctx, link)
	if err == nil && c.time.Now().Unix()-cached.FetchedAt < int64(c.cacheTTL.Seconds()) {
		c.tel.ReportDebug(report_client_page_cache, "hit", link)
		return goquery.NewDocumentFromReader(strings.NewReader(cached.Body))
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		c.tel.ReportWarning(report_client_page_cache, err, link)
	}

	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != 200 {
		err = fmt.Errorf("fetch '%s': unexpected status %s", link, res.Status())
		c.tel.ReportBroken(report_client_get_page, err)
		return nil, err
	}

	body := string(res.Body())
	err = c.qry.UpsertCachedPage(ctx, db.UpsertCachedPageParams{
		Url:       link,
		Body:      body,
		FetchedAt: c.time.Now().Unix(),
	})
	if err != nil {
		// cache write failures do not fail the fetch
		c.tel.ReportWarning(report_client_page_cache, err, link)
	}

	return goquery.NewDocumentFromReader(strings.NewReader(body))
}
