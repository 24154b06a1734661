// Package resources describes the record types VMIS manages: dispatches,
// reminders, repair requests, maintenance recommendations and trip tickets.
//
// A Definition carries everything the generic list/filter/form machinery
// needs about one kind: its endpoints, its fields with their validation rules,
// and which fields the search box matches against. The same definitions are
// used by the client to validate forms and by the server to validate create
// requests.
package resources

import (
	"fmt"
	"sort"

	"github.com/dmitrijs2005/vmis/internal/common"
)

// Kind names a resource type.
type Kind string

const (
	KindDispatch    Kind = "dispatch"
	KindReminder    Kind = "reminder"
	KindRepair      Kind = "repair"
	KindMaintenance Kind = "maintenance"
	KindTripTicket  Kind = "trip"
)

// FieldKind selects how a raw form value is parsed.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumber
	FieldDate
	FieldChoice
)

// DateLayout is the wire and input format of date fields.
const DateLayout = "2006-01-02"

// Field is one input of a resource form.
type Field struct {
	Name        string
	Label       string
	Kind        FieldKind
	Required    bool
	NonNegative bool
	Options     []string
}

// Ordering requires After >= Before whenever both fields are filled in.
// Both fields must share a kind (number or date).
type Ordering struct {
	Before string
	After  string
}

// Definition describes one resource kind.
type Definition struct {
	Kind           Kind
	Title          string
	ListEndpoint   string
	CreateEndpoint string
	Fields         []Field
	SearchFields   []string
	// CategoryField is matched exactly by the legacy search endpoint.
	CategoryField string
	Orderings     []Ordering
}

// Field returns the field named name.
func (d Definition) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

var registry = map[Kind]Definition{}

func register(d Definition) {
	if _, dup := registry[d.Kind]; dup {
		panic(fmt.Sprintf("resources: duplicate kind %q", d.Kind))
	}
	registry[d.Kind] = d
}

// Lookup returns the definition of kind, or common.ErrUnknownKind.
func Lookup(kind Kind) (Definition, error) {
	d, ok := registry[kind]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", common.ErrUnknownKind, kind)
	}
	return d, nil
}

// All returns every definition sorted by kind.
func All() []Definition {
	out := make([]Definition, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}
