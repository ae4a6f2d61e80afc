// Package images downloads character portraits referenced by extracted
// records. Downloads fan out with bounded concurrency and are best effort:
// a failed portrait is reported and retried on the next scrape run.
package images

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"nikkedle-backend/internal/assert"
	"nikkedle-backend/internal/components/telemetry"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"
)

const (
	report_fetch_image = "images.fetch"
)

type Fetcher struct {
	http  *resty.Client
	dir   string
	limit int
	tel   telemetry.API
}

// NewFetcher stores portraits under dir, downloading at most limit
// concurrently.
func NewFetcher(dir string, limit int, tel telemetry.API) *Fetcher {
	assert.NotEmptyStr(dir)
	assert.NotNil(tel)
	if limit <= 0 {
		limit = 4
	}

	tel = telemetry.NewScopedAPI("image_fetcher", tel)

	httpClient := resty.New()
	httpClient.SetTimeout(time.Second * 30)
	telemetry.InstrumentResty(httpClient, tel)

	return &Fetcher{
		http:  httpClient,
		dir:   dir,
		limit: limit,
		tel:   tel,
	}
}

func filenameFor(link string) (string, error) {
	parsed, err := url.Parse(link)
	if err != nil {
		return "", err
	}
	name := path.Base(parsed.Path)
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("no usable filename in url '%s'", link)
	}
	return name, nil
}

// FetchAll downloads every url that is not already on disk. Individual
// failures are reported and joined into the returned error; they never
// stop the other downloads.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) error {
	err := os.MkdirAll(f.dir, 0755)
	if err != nil {
		return err
	}

	var errList []error
	var errLock sync.Mutex

	group := errgroup.Group{}
	group.SetLimit(f.limit)
	for _, link := range urls {
		link := link
		group.Go(func() error {
			err := f.fetchOne(ctx, link)
			if err != nil {
				f.tel.ReportBroken(report_fetch_image, err, link)
				errLock.Lock()
				errList = append(errList, err)
				errLock.Unlock()
			}
			return nil
		})
	}
	group.Wait()

	return errors.Join(errList...)
}

func (f *Fetcher) fetchOne(ctx context.Context, link string) error {
	name, err := filenameFor(link)
	if err != nil {
		return err
	}
	dest := filepath.Join(f.dir, name)

	_, err = os.Stat(dest)
	if err == nil {
		f.tel.ReportDebug(report_fetch_image, "already downloaded", name)
		return nil
	}

	res, err := f.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		return err
	}
	if res.StatusCode() != 200 {
		return fmt.Errorf("fetch '%s': unexpected status %s", link, res.Status())
	}

	return os.WriteFile(dest, res.Body(), 0644)
}
