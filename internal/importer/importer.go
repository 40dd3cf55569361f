// Package importer fetches curriculum pages and extracts geographic
// features from HTML tables, so teachers can extend the dataset beyond
// the embedded seed.
package importer

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Biniyan/sociomap/internal/category"
	"github.com/Biniyan/sociomap/internal/model"
	"github.com/Biniyan/sociomap/internal/store"
	"github.com/PuerkitoBio/goquery"
)

// Importer fetches and parses feature tables, honoring a rate limit
// between page fetches.
type Importer struct {
	HTTPClient *http.Client
	limiter    *RateLimiter
}

// New creates an Importer allowing rps page fetches per second.
func New(rps float64) *Importer {
	return &Importer{
		HTTPClient: http.DefaultClient,
		limiter:    NewRateLimiter(rps),
	}
}

// FetchRows retrieves a page and parses every feature row from its
// first table.
func (im *Importer) FetchRows(ctx context.Context, url string) ([]store.FeatureRow, error) {
	if err := im.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := im.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing page HTML: %w", err)
	}

	return ParseRows(doc)
}

// ParseRows extracts feature rows from the first table in the
// document. The table must have a header row naming at least the
// name, category, province, lat and lng columns (case-insensitive);
// a description column is optional. Rows with an unknown category or
// unparsable coordinates are skipped, not fatal.
func ParseRows(doc *goquery.Document) ([]store.FeatureRow, error) {
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no table found in document")
	}

	cols := make(map[string]int)
	table.Find("tr").First().Find("th, td").Each(func(i int, cell *goquery.Selection) {
		cols[strings.ToLower(strings.TrimSpace(cell.Text()))] = i
	})

	for _, required := range []string{"name", "category", "province", "lat", "lng"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("table header missing %q column", required)
		}
	}

	var rows []store.FeatureRow
	table.Find("tr").Each(func(ri int, tr *goquery.Selection) {
		if ri == 0 {
			return // header
		}

		cells := tr.Find("td").Map(func(_ int, td *goquery.Selection) string {
			return strings.TrimSpace(td.Text())
		})
		cell := func(col string) string {
			i, ok := cols[col]
			if !ok || i >= len(cells) {
				return ""
			}
			return cells[i]
		}

		key := model.CategoryKey(cell("category"))
		if !category.Valid(key) || key == model.CategoryHighways || key == model.CategoryCapitals {
			return
		}

		lat, err := strconv.ParseFloat(cell("lat"), 64)
		if err != nil {
			return
		}
		lng, err := strconv.ParseFloat(cell("lng"), 64)
		if err != nil {
			return
		}

		name := cell("name")
		province := cell("province")
		if name == "" || province == "" {
			return
		}

		rows = append(rows, store.FeatureRow{
			Category: key,
			Feature: model.Feature{
				Name:        name,
				Province:    province,
				Lat:         lat,
				Lng:         lng,
				Description: cell("description"),
			},
		})
	})

	return rows, nil
}
