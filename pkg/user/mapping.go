// SPDX-License-Identifier: MPL-2.0

package user

import (
	"encoding/json"
	"fmt"
	"math"
)

type (
	// Field is one entry of an ordered field mapping.
	Field struct {
		Name  string
		Value any
	}

	// Fields is a User flattened to name-value pairs in canonical wire order
	// (id, name, email, age, active). It shares no state with the record it
	// came from; mutating it never touches the original User.
	Fields []Field
)

// Fields returns the record as an ordered mapping. The integer fields are
// carried with their Go types (int64 for id, int for age).
func (u User) Fields() Fields {
	return Fields{
		{FieldID, u.ID},
		{FieldName, u.Name},
		{FieldEmail, u.Email},
		{FieldAge, u.Age},
		{FieldActive, u.Active},
	}
}

// Map returns the fields as a fresh unordered map.
func (f Fields) Map() map[string]any {
	m := make(map[string]any, len(f))
	for _, fld := range f {
		m[fld.Name] = fld.Value
	}
	return m
}

// Get returns the value for the named field and whether it is present.
func (f Fields) Get(name string) (any, bool) {
	for _, fld := range f {
		if fld.Name == name {
			return fld.Value, true
		}
	}
	return nil, false
}

// FromMap constructs a User from an untyped mapping. All five fields must be
// present with compatible values; an absent or nil entry, an entry of an
// incompatible type, and any key beyond the five field names are each a
// ValidationError. Integer fields accept the numeric types a decoded-JSON map
// can deliver (any Go integer, an integral float64, a json.Number).
func FromMap(m map[string]any) (User, error) {
	var u User
	for key := range m {
		switch key {
		case FieldID, FieldName, FieldEmail, FieldAge, FieldActive:
		default:
			return User{}, &ValidationError{Field: key, Reason: "unknown field"}
		}
	}
	for _, name := range FieldNames {
		v, ok := m[name]
		if !ok || v == nil {
			return User{}, &ValidationError{Field: name, Reason: "required field is missing"}
		}
		if verr := setField(&u, name, v); verr != nil {
			return User{}, verr
		}
	}
	return u, nil
}

// FromFields constructs a User from an ordered mapping, with the same
// validation rules as FromMap. Order is not significant on input; duplicate
// names are last-wins.
func FromFields(f Fields) (User, error) {
	return FromMap(f.Map())
}

// setField assigns one named field on u after coercing v, or reports why it
// cannot.
func setField(u *User, name string, v any) *ValidationError {
	switch name {
	case FieldID:
		n, ok := int64FromAny(v)
		if !ok {
			return typeMismatch(name, "integer", v)
		}
		u.ID = n
	case FieldName:
		s, ok := v.(string)
		if !ok {
			return typeMismatch(name, "string", v)
		}
		u.Name = s
	case FieldEmail:
		s, ok := v.(string)
		if !ok {
			return typeMismatch(name, "string", v)
		}
		u.Email = s
	case FieldAge:
		n, ok := int64FromAny(v)
		if !ok || int64(int(n)) != n {
			return typeMismatch(name, "integer", v)
		}
		u.Age = int(n)
	case FieldActive:
		b, ok := v.(bool)
		if !ok {
			return typeMismatch(name, "bool", v)
		}
		u.Active = b
	}
	return nil
}

func typeMismatch(field, want string, got any) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf("cannot use %T value as %s", got, want),
	}
}

// int64FromAny coerces the numeric representations an untyped mapping can
// carry. Floats are accepted only when integral and in range; fractional
// values are a type mismatch, not a rounding opportunity.
func int64FromAny(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		return int64FromFloat(float64(n))
	case float64:
		return int64FromFloat(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func int64FromFloat(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	return int64(f), true
}
