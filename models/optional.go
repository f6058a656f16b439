package models

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// Optional records whether a JSON key was present in a request body and
// whether it carried null. Update payloads use it so that omitted keys leave
// columns untouched while an explicit null clears them.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null returns a present Optional carrying null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		var zero T
		o.Valid, o.Value = false, zero
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Changes maps column names to new values for a partial update.
type Changes map[string]interface{}

func put[T any](c Changes, column string, o Optional[T]) {
	if !o.Set {
		return
	}
	if !o.Valid {
		c[column] = nil
		return
	}
	c[column] = o.Value
}

func notNull[T any](field string, o Optional[T]) error {
	if o.Set && !o.Valid {
		return fmt.Errorf("%s cannot be null", field)
	}
	return nil
}

// maxLen bounds a string update by the width of its column, counted in
// characters like varchar(n).
func maxLen(field string, o Optional[string], n int) error {
	if o.Valid && utf8.RuneCountInString(o.Value) > n {
		return fmt.Errorf("%s must be at most %d characters", field, n)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Creator is a validated create payload that builds a new row.
type Creator[T any] interface {
	ToModel() *T
}

// Patch is a validated partial update payload.
type Patch interface {
	Changes() Changes
}

// Validatable payloads carry checks that binding tags cannot express.
type Validatable interface {
	Validate() error
}
