// Package forms tracks user input for creating a record of one resource kind.
package forms

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vmis/internal/resources"
)

// State is the lifecycle position of a Form.
type State int

const (
	Editing State = iota
	Validating
	Submitting
	Closed
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Validating:
		return "validating"
	case Submitting:
		return "submitting"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrWrongState is returned when a transition is requested from a state that
// does not allow it.
var ErrWrongState = errors.New("form is not in a state that allows this")

// Form holds raw field input. It is not safe for concurrent use.
type Form struct {
	def    resources.Definition
	values map[string]string
	state  State
}

func New(def resources.Definition) *Form {
	return &Form{def: def, values: map[string]string{}, state: Editing}
}

func (f *Form) Definition() resources.Definition { return f.def }

func (f *Form) State() State { return f.state }

// Set stores raw input for a field. Only allowed while editing.
func (f *Form) Set(field, value string) error {
	if f.state != Editing {
		return fmt.Errorf("set %s while %s: %w", field, f.state, ErrWrongState)
	}
	f.values[field] = value
	return nil
}

// Value returns the current raw input for field.
func (f *Form) Value(field string) string {
	return f.values[field]
}

// Values returns a copy of the raw input.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Validate moves Editing -> Validating and then either back to Editing with a
// *resources.ValidationError, or on to Submitting with the typed record.
func (f *Form) Validate() (resources.Record, error) {
	if f.state != Editing {
		return nil, fmt.Errorf("validate while %s: %w", f.state, ErrWrongState)
	}
	f.state = Validating

	rec, err := f.def.Validate(f.values)
	if err != nil {
		f.state = Editing
		return nil, err
	}
	f.state = Submitting
	return rec, nil
}

// Fail returns a submitting form to Editing. Input is kept.
func (f *Form) Fail() {
	if f.state == Submitting {
		f.state = Editing
	}
}

// Succeed closes a submitting form and resets its input.
func (f *Form) Succeed() {
	if f.state != Submitting {
		return
	}
	f.values = map[string]string{}
	f.state = Closed
}

// Reopen moves a closed form back to Editing with empty input.
func (f *Form) Reopen() error {
	if f.state != Closed {
		return fmt.Errorf("reopen while %s: %w", f.state, ErrWrongState)
	}
	f.state = Editing
	return nil
}
