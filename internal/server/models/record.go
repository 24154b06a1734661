package models

import (
	"time"

	"github.com/dmitrijs2005/vmis/internal/resources"
)

// Record is one stored resource row. Data holds the validated fields without
// the id, which lives in its own column.
type Record struct {
	ID        string
	Kind      resources.Kind
	OwnerID   string
	Data      resources.Record
	CreatedAt time.Time
}

// Payload is the record as sent to clients: its fields plus "id".
func (r *Record) Payload() resources.Record {
	out := make(resources.Record, len(r.Data)+1)
	for k, v := range r.Data {
		out[k] = v
	}
	out[resources.IDField] = r.ID
	return out
}
