package records

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/vmis/internal/dbx"
	"github.com/dmitrijs2005/vmis/internal/resources"
	"github.com/dmitrijs2005/vmis/internal/server/models"
)

const selectColumns = `SELECT id, kind, owner_id, data, created_at FROM records`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rec *models.Record) (*models.Record, error) {
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("encode data: %w", err)
	}

	query :=
		`INSERT INTO records (id, kind, owner_id, data)
		 VALUES ($1, $2, $3, $4::jsonb)
		 RETURNING created_at
		 `

	err = r.db.QueryRowContext(ctx, query, rec.ID, string(rec.Kind), rec.OwnerID, string(data)).Scan(&rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

func (r *PostgresRepository) List(ctx context.Context, ownerID string, kind resources.Kind) ([]*models.Record, error) {
	query := selectColumns + `
		 WHERE owner_id = $1 AND kind = $2
		 ORDER BY created_at, id`

	return r.query(ctx, query, ownerID, string(kind))
}

// Search builds one ILIKE condition per field; field names and the pattern
// are bound as parameters.
func (r *PostgresRepository) Search(ctx context.Context, ownerID string, kind resources.Kind, f SearchFilter) ([]*models.Record, error) {
	var b strings.Builder
	b.WriteString(selectColumns)
	b.WriteString(`
		 WHERE owner_id = $1 AND kind = $2`)
	args := []any{ownerID, string(kind)}

	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if strings.TrimSpace(f.Query) != "" && len(f.Fields) > 0 {
		pattern := next("%" + escapeLike(f.Query) + "%")
		conds := make([]string, 0, len(f.Fields))
		for _, field := range f.Fields {
			conds = append(conds, fmt.Sprintf(`data->>%s ILIKE %s ESCAPE '\'`, next(field), pattern))
		}
		b.WriteString(" AND (" + strings.Join(conds, " OR ") + ")")
	}

	if f.Category != "" && f.CategoryField != "" {
		fmt.Fprintf(&b, " AND data->>%s = %s", next(f.CategoryField), next(f.Category))
	}

	b.WriteString(`
		 ORDER BY created_at, id`)

	return r.query(ctx, b.String(), args...)
}

func (r *PostgresRepository) CountByKind(ctx context.Context, ownerID string) (map[resources.Kind]int, error) {
	query :=
		`SELECT kind, count(*) FROM records
		 WHERE owner_id = $1
		 GROUP BY kind`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	counts := make(map[resources.Kind]int)
	for rows.Next() {
		var (
			kind string
			n    int
		)
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		counts[resources.Kind(kind)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return counts, nil
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Record, 0)
	for rows.Next() {
		var (
			rec  models.Record
			kind string
			data []byte
		)
		if err := rows.Scan(&rec.ID, &kind, &rec.OwnerID, &data, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		rec.Kind = resources.Kind(kind)
		if err := json.Unmarshal(data, &rec.Data); err != nil {
			return nil, fmt.Errorf("decode data of %s: %w", rec.ID, err)
		}
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

// escapeLike makes %, _ and \ in s match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
