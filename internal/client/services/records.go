package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vmis/internal/client/client"
	"github.com/dmitrijs2005/vmis/internal/client/forms"
	"github.com/dmitrijs2005/vmis/internal/client/listing"
	"github.com/dmitrijs2005/vmis/internal/client/session"
	"github.com/dmitrijs2005/vmis/internal/logging"
	"github.com/dmitrijs2005/vmis/internal/resources"
)

// ErrReloadFailed wraps a list reload error that followed a successful create.
var ErrReloadFailed = errors.New("record created but list reload failed")

// RecordService is the list + filter + form cycle for one resource kind.
type RecordService struct {
	def    resources.Definition
	api    client.API
	loader *listing.Loader
	logger logging.Logger
}

func NewRecordService(def resources.Definition, api client.API, logger logging.Logger) *RecordService {
	return &RecordService{
		def:    def,
		api:    api,
		loader: listing.NewLoader(def, api, logger),
		logger: logger.With("kind", string(def.Kind)),
	}
}

// NewRecordServices builds one RecordService per registered kind.
func NewRecordServices(api client.API, logger logging.Logger) map[resources.Kind]*RecordService {
	out := make(map[resources.Kind]*RecordService)
	for _, def := range resources.All() {
		out[def.Kind] = NewRecordService(def, api, logger)
	}
	return out
}

func (s *RecordService) Definition() resources.Definition { return s.def }

// Load refreshes the canonical list. On failure the previous list stays.
func (s *RecordService) Load(ctx context.Context, sess session.Session) ([]resources.Record, error) {
	return s.loader.Load(ctx, sess)
}

func (s *RecordService) Loaded() bool { return s.loader.Loaded() }

func (s *RecordService) Count() int { return s.loader.Count() }

// Visible filters the canonical list locally.
func (s *RecordService) Visible(query string) []resources.Record {
	return s.loader.Visible(query)
}

// Find looks a record up by id in the canonical list.
func (s *RecordService) Find(id string) (resources.Record, bool) {
	for _, rec := range s.loader.Records() {
		if rec.ID() == id {
			return rec, true
		}
	}
	return nil, false
}

func (s *RecordService) NewForm() *forms.Form {
	return forms.New(s.def)
}

// Submit validates the form, posts it to the create endpoint and then reloads
// the list exactly once. Validation errors never reach the network. On a
// failed create the form keeps its input.
func (s *RecordService) Submit(ctx context.Context, sess session.Session, form *forms.Form) (resources.Record, error) {
	if form.Definition().Kind != s.def.Kind {
		return nil, fmt.Errorf("form for %s submitted to %s: %w", form.Definition().Kind, s.def.Kind, forms.ErrWrongState)
	}

	rec, err := form.Validate()
	if err != nil {
		return nil, err
	}

	created, err := s.api.Create(ctx, sess, s.def.CreateEndpoint, rec)
	if err != nil {
		form.Fail()
		s.logger.Warn(ctx, "create failed", "error", err)
		return nil, fmt.Errorf("create error: %w", err)
	}
	form.Succeed()
	s.logger.Info(ctx, "record created", "id", created.ID())

	if _, err := s.loader.Load(ctx, sess); err != nil && !errors.Is(err, listing.ErrStale) {
		return created, fmt.Errorf("%w: %w", ErrReloadFailed, err)
	}
	return created, nil
}

// Close discards any in-flight load.
func (s *RecordService) Close() {
	s.loader.Close()
}
