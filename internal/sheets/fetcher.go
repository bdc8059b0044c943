package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the Google Sheets host serving the gviz endpoint.
const DefaultBaseURL = "https://docs.google.com"

// Source identifies the sheet and cell range to query.
type Source struct {
	SheetID    string
	SheetTitle string
	Range      string
}

// URL builds the gviz query URL for the source under base.
func (s Source) URL(base string) string {
	if base == "" {
		base = DefaultBaseURL
	}
	q := url.Values{}
	if s.SheetTitle != "" {
		q.Set("sheet", s.SheetTitle)
	}
	if s.Range != "" {
		q.Set("range", s.Range)
	}
	u := strings.TrimRight(base, "/") + "/spreadsheets/d/" + url.PathEscape(s.SheetID) + "/gviz/tq"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// Fetcher issues a single GET against the gviz endpoint. It never retries.
type Fetcher struct {
	httpClient *http.Client
	baseURL    string
	source     Source
	log        *zap.Logger
}

// NewFetcher returns a Fetcher for src. A timeout of 0 disables the client timeout,
// so only ctx can abandon a hung request.
func NewFetcher(src Source, baseURL string, timeout time.Duration, log *zap.Logger) *Fetcher {
	if log == nil {
		log = zap.NewNop()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		source:     src,
		log:        log,
	}
}

// URL returns the endpoint the fetcher queries.
func (f *Fetcher) URL() string { return f.source.URL(f.baseURL) }

// Fetch reads the full response body.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	u := f.URL()
	if f.source.SheetID == "" {
		return nil, &FetchError{URL: u, Err: fmt.Errorf("sheet id is required")}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &FetchError{URL: u, Err: err}
	}
	f.log.Debug("fetching sheet", zap.String("url", u))
	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.log.Error("sheet fetch failed", zap.String("url", u), zap.Error(err))
		return nil, &FetchError{URL: u, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		f.log.Error("sheet fetch failed", zap.String("url", u), zap.Int("status", resp.StatusCode))
		return nil, &FetchError{URL: u, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: u, Err: fmt.Errorf("read body: %w", err)}
	}
	f.log.Debug("sheet fetched", zap.Int("bytes", len(body)))
	return body, nil
}

// Load fetches and decodes the sheet.
func (f *Fetcher) Load(ctx context.Context) (*Table, error) {
	body, err := f.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	t, err := ParsePayload(body)
	if err != nil {
		f.log.Error("sheet payload rejected", zap.Error(err))
		return nil, err
	}
	return t, nil
}
