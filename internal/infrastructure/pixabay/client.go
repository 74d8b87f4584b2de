// Package pixabay implements the image-search provider backed by the Pixabay API.
package pixabay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tesso57/imgsearch/internal/domain/gallery"
)

// DefaultBaseURL is the public Pixabay search endpoint.
const DefaultBaseURL = "https://pixabay.com/api/"

// ErrMissingAPIKey is returned when no API key is configured.
var ErrMissingAPIKey = errors.New("pixabay: api key is not configured (set pixabay.api_key or PIXABAY_API_KEY)")

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("pixabay: status %d", e.Code)
	}
	return fmt.Sprintf("pixabay: status %d: %s", e.Code, e.Body)
}

// Options configures a Client.
type Options struct {
	BaseURL     string
	APIKey      string
	ImageType   string
	Orientation string
	SafeSearch  bool
	Timeout     time.Duration
	HTTPClient  *http.Client
	Logger      *slog.Logger
}

// Client fetches result pages from Pixabay.
type Client struct {
	baseURL     string
	apiKey      string
	imageType   string
	orientation string
	safeSearch  bool
	timeout     time.Duration
	http        *http.Client
	log         *slog.Logger
}

// NewClient constructs a Client. A nil HTTPClient gets a default one.
func NewClient(opt Options) *Client {
	baseURL := strings.TrimSpace(opt.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := opt.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	wrapped := *httpClient
	wrapped.Transport = encodingTransport{base: httpClient.Transport}

	logger := opt.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		baseURL:     baseURL,
		apiKey:      opt.APIKey,
		imageType:   opt.ImageType,
		orientation: opt.Orientation,
		safeSearch:  opt.SafeSearch,
		timeout:     opt.Timeout,
		http:        &wrapped,
		log:         logger.With(slog.String("component", "pixabay")),
	}
}

type searchResponse struct {
	Total     int   `json:"total"`
	TotalHits int   `json:"totalHits"`
	Hits      []hit `json:"hits"`
}

type hit struct {
	ID            int    `json:"id"`
	PageURL       string `json:"pageURL"`
	Tags          string `json:"tags"`
	PreviewURL    string `json:"previewURL"`
	WebformatURL  string `json:"webformatURL"`
	LargeImageURL string `json:"largeImageURL"`
	ImageWidth    int    `json:"imageWidth"`
	ImageHeight   int    `json:"imageHeight"`
	User          string `json:"user"`
}

// FetchPage returns one page of hits for query. Pages are 1-based.
func (c *Client) FetchPage(ctx context.Context, query string, page int) (gallery.Page, error) {
	if c.apiKey == "" {
		return gallery.Page{}, ErrMissingAPIKey
	}
	if page < 1 {
		return gallery.Page{}, fmt.Errorf("pixabay: invalid page %d", page)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(query, page), nil)
	if err != nil {
		return gallery.Page{}, fmt.Errorf("pixabay: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		err = stripURL(err)
		c.log.Warn("request failed", slog.String("query", query), slog.Int("page", page), slog.Any("error", err))
		return gallery.Page{}, fmt.Errorf("pixabay: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn("unexpected status", slog.String("query", query), slog.Int("page", page), slog.Int("status", resp.StatusCode))
		return gallery.Page{}, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return gallery.Page{}, fmt.Errorf("pixabay: decode response: %w", err)
	}

	c.log.Debug("page fetched",
		slog.String("query", query),
		slog.Int("page", page),
		slog.Int("hits", len(data.Hits)),
		slog.Int("total_hits", data.TotalHits),
		slog.Duration("elapsed", time.Since(started)))

	return toPage(data), nil
}

// stripURL drops the request URL from transport errors; it carries the API key.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

func (c *Client) searchURL(query string, page int) string {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(gallery.PageSize))
	if c.imageType != "" {
		params.Set("image_type", c.imageType)
	}
	if c.orientation != "" {
		params.Set("orientation", c.orientation)
	}
	params.Set("safesearch", strconv.FormatBool(c.safeSearch))

	sep := "?"
	if strings.Contains(c.baseURL, "?") {
		sep = "&"
	}
	return c.baseURL + sep + params.Encode()
}

func toPage(data searchResponse) gallery.Page {
	items := make([]gallery.Image, len(data.Hits))
	for i, h := range data.Hits {
		preview := h.WebformatURL
		if preview == "" {
			preview = h.PreviewURL
		}
		items[i] = gallery.Image{
			ID:         h.ID,
			Tags:       h.Tags,
			PreviewURL: preview,
			LargeURL:   h.LargeImageURL,
			PageURL:    h.PageURL,
			User:       h.User,
			Width:      h.ImageWidth,
			Height:     h.ImageHeight,
		}
	}
	return gallery.Page{Items: items, TotalHits: data.TotalHits}
}
