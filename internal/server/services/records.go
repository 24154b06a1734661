package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/vmis/internal/resources"
	"github.com/dmitrijs2005/vmis/internal/server/models"
	"github.com/dmitrijs2005/vmis/internal/server/repositories/records"
	"github.com/dmitrijs2005/vmis/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Dashboard holds the per-user counts shown on the landing screen.
type Dashboard struct {
	RepairRequestCount int    `json:"repairRequestCount"`
	MainCount          int    `json:"mainCount"`
	ReminderCount      int    `json:"reminderCount"`
	DispatchCount      int    `json:"dispatchCount"`
	Name               string `json:"name"`
}

// RecordService stores and queries records. Every operation is scoped to the
// owner it is given.
type RecordService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewRecordService(db *sql.DB, m repomanager.RepositoryManager) *RecordService {
	return &RecordService{db: db, repomanager: m}
}

func (s *RecordService) List(ctx context.Context, ownerID string, kind resources.Kind) ([]*models.Record, error) {
	if _, err := resources.Lookup(kind); err != nil {
		return nil, err
	}
	return s.repomanager.Records(s.db).List(ctx, ownerID, kind)
}

// Create validates data against the kind's definition and stores it. Invalid
// data yields a *resources.ValidationError.
func (s *RecordService) Create(ctx context.Context, ownerID string, kind resources.Kind, data resources.Record) (*models.Record, error) {
	def, err := resources.Lookup(kind)
	if err != nil {
		return nil, err
	}

	clean, err := def.ValidateRecord(data)
	if err != nil {
		return nil, err
	}

	rec := &models.Record{
		ID:      uuid.NewString(),
		Kind:    kind,
		OwnerID: ownerID,
		Data:    clean,
	}

	created, err := s.repomanager.Records(s.db).Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("error creating record: %w", err)
	}
	return created, nil
}

// Search matches query against the kind's search fields and, when category
// is set, requires the kind's category field to equal it.
func (s *RecordService) Search(ctx context.Context, ownerID string, kind resources.Kind, query, category string) ([]*models.Record, error) {
	def, err := resources.Lookup(kind)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Records(s.db).Search(ctx, ownerID, kind, records.SearchFilter{
		Fields:        def.SearchFields,
		Query:         query,
		CategoryField: def.CategoryField,
		Category:      category,
	})
}

func (s *RecordService) Dashboard(ctx context.Context, owner *models.User) (*Dashboard, error) {
	counts, err := s.repomanager.Records(s.db).CountByKind(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		RepairRequestCount: counts[resources.KindRepair],
		MainCount:          counts[resources.KindMaintenance],
		ReminderCount:      counts[resources.KindReminder],
		DispatchCount:      counts[resources.KindDispatch],
		Name:               owner.Name,
	}, nil
}
