package records

import (
	"context"

	"github.com/dmitrijs2005/vmis/internal/resources"
	"github.com/dmitrijs2005/vmis/internal/server/models"
)

// SearchFilter narrows a kind's records the way the legacy search endpoint
// does: Query is matched case-insensitively as a substring of any of Fields,
// and a non-empty Category must equal CategoryField exactly.
type SearchFilter struct {
	Fields        []string
	Query         string
	CategoryField string
	Category      string
}

type Repository interface {
	Create(ctx context.Context, rec *models.Record) (*models.Record, error)
	List(ctx context.Context, ownerID string, kind resources.Kind) ([]*models.Record, error)
	Search(ctx context.Context, ownerID string, kind resources.Kind, f SearchFilter) ([]*models.Record, error)
	CountByKind(ctx context.Context, ownerID string) (map[resources.Kind]int, error)
}
