// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/tesso57/imgsearch/internal/domain/gallery"
)

// ErrEmptyQuery is returned when a blank query is submitted.
var ErrEmptyQuery = errors.New("search query is empty")

// SearchProvider abstracts the remote image-search endpoint.
type SearchProvider interface {
	FetchPage(ctx context.Context, query string, page int) (gallery.Page, error)
}

// FetchStatus is the state of the current fetch.
type FetchStatus int

const (
	StatusIdle FetchStatus = iota
	StatusPending
	StatusSuccess
	StatusError
)

func (s FetchStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// FetchRequest identifies one provider call issued by the SearchService.
type FetchRequest struct {
	Query      string
	Page       int
	Generation uint64
}

// Snapshot is a read-only copy of the search state.
type Snapshot struct {
	Query      string
	Page       int
	TotalPages int
	Status     FetchStatus
	LastError  string
	Images     []gallery.Image
}

// SearchService drives query submission and pagination.
// It is not safe for concurrent use; only Fetch may run off the owning goroutine.
type SearchService struct {
	provider SearchProvider
	sink     NotificationSink
	logger   *slog.Logger

	query      string
	page       int
	totalPages int
	status     FetchStatus
	lastError  string
	// notified is the last error description sent to the sink. Unlike
	// lastError it survives SubmitQuery, so a new query failing the same
	// way is not announced again.
	notified   string
	results    gallery.Results
	generation uint64
}

// NewSearchService constructs a SearchService in the idle state.
func NewSearchService(provider SearchProvider, sink NotificationSink, logger *slog.Logger) *SearchService {
	if sink == nil {
		sink = NotifyFunc(func(Notification) {})
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SearchService{
		provider: provider,
		sink:     sink,
		logger:   logger,
		page:     1,
	}
}

// SubmitQuery resets pagination for a new query and returns the page 1 request.
func (s *SearchService) SubmitQuery(text string) (FetchRequest, error) {
	query := strings.TrimSpace(text)
	if query == "" {
		return FetchRequest{}, ErrEmptyQuery
	}
	s.query = query
	s.page = 1
	s.totalPages = 0
	s.lastError = ""
	s.results.Clear()
	return s.begin(), nil
}

// RequestMore advances to the next page when one is known to exist.
// It reports false and changes nothing otherwise.
func (s *SearchService) RequestMore() (FetchRequest, bool) {
	if s.status != StatusSuccess || s.page >= s.totalPages {
		return FetchRequest{}, false
	}
	s.page++
	return s.begin(), true
}

// Retry re-issues the request for the current page after a failure.
func (s *SearchService) Retry() (FetchRequest, bool) {
	if s.status != StatusError || s.query == "" {
		return FetchRequest{}, false
	}
	return s.begin(), true
}

// Fetch calls the provider for req. It touches no service state.
func (s *SearchService) Fetch(ctx context.Context, req FetchRequest) (gallery.Page, error) {
	if s.provider == nil {
		return gallery.Page{}, errors.New("search provider is not configured")
	}
	return s.provider.FetchPage(ctx, req.Query, req.Page)
}

// Resolve applies the outcome of req. Outcomes for anything but the most
// recently issued request are dropped and Resolve reports false.
func (s *SearchService) Resolve(req FetchRequest, page gallery.Page, err error) bool {
	if req.Generation != s.generation {
		s.logger.Debug("discarding stale page",
			slog.String("query", req.Query),
			slog.Int("page", req.Page),
			slog.String("current_query", s.query),
			slog.Int("current_page", s.page))
		return false
	}

	if err != nil {
		s.logger.Warn("page fetch failed",
			slog.String("query", req.Query),
			slog.Int("page", req.Page),
			slog.Any("error", err))
		s.fail(err.Error())
		return true
	}

	if len(page.Items) == 0 {
		s.status = StatusIdle
		s.lastError = ""
		s.notified = ""
		s.sink.Notify(NoResultsNotification())
		return true
	}

	s.results.Append(page.Items...)
	// A provider reporting fewer hits than already delivered must not make
	// the current page look unreachable.
	s.totalPages = max(gallery.TotalPages(page.TotalHits), s.page)
	s.status = StatusSuccess
	s.lastError = ""
	s.notified = ""
	s.logger.Debug("page applied",
		slog.String("query", s.query),
		slog.Int("page", s.page),
		slog.Int("total_pages", s.totalPages),
		slog.Int("images", s.results.Len()))

	if s.page == s.totalPages {
		s.sink.Notify(NoMoreResultsNotification())
	}
	return true
}

// Snapshot returns the current state.
func (s *SearchService) Snapshot() Snapshot {
	return Snapshot{
		Query:      s.query,
		Page:       s.page,
		TotalPages: s.totalPages,
		Status:     s.status,
		LastError:  s.lastError,
		Images:     s.results.Items(),
	}
}

func (s *SearchService) begin() FetchRequest {
	s.generation++
	s.status = StatusPending
	return FetchRequest{
		Query:      s.query,
		Page:       s.page,
		Generation: s.generation,
	}
}

func (s *SearchService) fail(description string) {
	if description == "" {
		description = "unknown error"
	}
	if description != s.notified {
		s.sink.Notify(ErrorNotification(description))
		s.notified = description
	}
	s.lastError = description
	s.status = StatusError
}
