package teamcolors

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/tuhmez/sports-stats-web-service/internal/platform/logging"
	"github.com/tuhmez/sports-stats-web-service/internal/usecase"
)

const (
	defaultPageURL = "https://teamcolorcodes.com/mlb-color-codes/"

	maxPageBytes = 6 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	PageURL    string
	Timeout    time.Duration
	MaxRetries int
	Logger     *logging.Logger
}

// Client scrapes the static color-reference page into caption-labelled
// tables. Selection of the authoritative table and row matching happen in the
// usecase layer; this client only parses structure.
type Client struct {
	httpClient *http.Client
	pageURL    string
	maxRetries int
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	pageURL := strings.TrimSpace(cfg.PageURL)
	if pageURL == "" {
		pageURL = defaultPageURL
	}

	return &Client{
		httpClient: httpClient,
		pageURL:    pageURL,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

// Tables fetches the reference page and returns every table in document
// order, with caption text and per-row header/data cells.
func (c *Client) Tables(ctx context.Context) ([]usecase.ColorTable, error) {
	body, err := c.fetchPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch color reference page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse color reference page: %w", err)
	}

	var tables []usecase.ColorTable
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		parsed := usecase.ColorTable{
			Caption: strings.TrimSpace(table.Find("caption").First().Text()),
		}
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			parsed.Rows = append(parsed.Rows, parseRow(row))
		})
		tables = append(tables, parsed)
	})
	return tables, nil
}

// parseRow treats the first th (or, absent any th, the first td) as the row
// header and everything after it as data cells.
func parseRow(row *goquery.Selection) usecase.ColorRow {
	parsed := usecase.ColorRow{}

	header := row.Find("th").First()
	cells := row.Find("td")
	if header.Length() == 0 && cells.Length() > 0 {
		header = cells.First()
		cells = cells.Slice(1, cells.Length())
	}

	parsed.Header = strings.TrimSpace(header.Text())
	cells.Each(func(_ int, cell *goquery.Selection) {
		parsed.Cells = append(parsed.Cells, strings.TrimSpace(cell.Text()))
	})
	return parsed
}

func (c *Client) fetchPage(ctx context.Context) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pageURL, nil)
		if err != nil {
			return "", fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "text/html")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("send request: %w", err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("read page body: %w", readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return string(raw), nil
			default:
				lastErr = fmt.Errorf("page status=%d", resp.StatusCode)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "color reference page fetch failed", "url", c.pageURL, "error", lastErr)
	return "", lastErr
}
