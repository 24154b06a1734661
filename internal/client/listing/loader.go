package listing

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/vmis/internal/client/session"
	"github.com/dmitrijs2005/vmis/internal/logging"
	"github.com/dmitrijs2005/vmis/internal/resources"
)

// ErrStale is returned by Load when its result was discarded because a newer
// Load started meanwhile or the loader was closed.
var ErrStale = errors.New("stale list result")

// Fetcher retrieves a collection from a list endpoint.
type Fetcher interface {
	List(ctx context.Context, sess session.Session, endpoint string) ([]resources.Record, error)
}

// Loader owns the canonical list of one resource kind. It is safe for
// concurrent use.
type Loader struct {
	def     resources.Definition
	fetcher Fetcher
	logger  logging.Logger

	mu      sync.Mutex
	records []resources.Record
	count   int
	loaded  bool
	gen     uint64
	closed  bool
}

func NewLoader(def resources.Definition, fetcher Fetcher, logger logging.Logger) *Loader {
	return &Loader{
		def:     def,
		fetcher: fetcher,
		logger:  logger.With("kind", string(def.Kind)),
	}
}

// Definition returns the kind this loader serves.
func (l *Loader) Definition() resources.Definition {
	return l.def
}

// Load fetches the list endpoint and, on success, replaces the canonical list
// wholesale. On any error the previous list is kept.
//
// A result is stale once a newer Load has started, even when that newer Load
// later fails: both then leave the canonical list at the last applied result.
func (l *Loader) Load(ctx context.Context, sess session.Session) ([]resources.Record, error) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil, ErrStale
	}
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	records, err := l.fetcher.List(ctx, sess, l.def.ListEndpoint)
	if err != nil {
		l.logger.Warn(ctx, "list load failed, keeping previous list", "error", err)
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || gen != l.gen {
		l.logger.Debug(ctx, "discarding superseded list result", "generation", gen)
		return nil, ErrStale
	}
	l.records = records
	l.count = len(records)
	l.loaded = true

	l.logger.Debug(ctx, "list loaded", "count", l.count)
	return records, nil
}

// Records returns the canonical list. Callers must not modify it.
func (l *Loader) Records() []resources.Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.records
}

// Count is the length of the last successfully loaded list.
func (l *Loader) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// Loaded reports whether at least one Load has succeeded.
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// Visible filters the canonical list by query over the kind's search fields.
func (l *Loader) Visible(query string) []resources.Record {
	return Filter(l.Records(), query, l.def.SearchFields)
}

// Close makes every in-flight and future Load discard its result.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
}
