// SPDX-License-Identifier: MPL-2.0

package user

type (
	// Patch names the fields a copy should replace; nil fields keep the
	// original value. Being fully typed, a Patch cannot carry an invalid
	// override, so With never fails. The zero Patch changes nothing.
	Patch struct {
		ID     *int64
		Name   *string
		Email  *string
		Age    *int
		Active *bool
	}
)

// PatchID returns a Patch overriding only the id field.
func PatchID(id int64) Patch { return Patch{ID: &id} }

// PatchName returns a Patch overriding only the name field.
func PatchName(name string) Patch { return Patch{Name: &name} }

// PatchEmail returns a Patch overriding only the email field.
func PatchEmail(email string) Patch { return Patch{Email: &email} }

// PatchAge returns a Patch overriding only the age field.
func PatchAge(age int) Patch { return Patch{Age: &age} }

// PatchActive returns a Patch overriding only the active field.
func PatchActive(active bool) Patch { return Patch{Active: &active} }

// Merge combines p with overrides from q, with q taking precedence where both
// name the same field.
func (p Patch) Merge(q Patch) Patch {
	if q.ID != nil {
		p.ID = q.ID
	}
	if q.Name != nil {
		p.Name = q.Name
	}
	if q.Email != nil {
		p.Email = q.Email
	}
	if q.Age != nil {
		p.Age = q.Age
	}
	if q.Active != nil {
		p.Active = q.Active
	}
	return p
}

// IsZero reports whether the Patch overrides nothing.
func (p Patch) IsZero() bool {
	return p.ID == nil && p.Name == nil && p.Email == nil && p.Age == nil && p.Active == nil
}

// With returns a copy of u with the Patch's non-nil fields replaced. The
// receiver is never modified.
func (u User) With(p Patch) User {
	if p.ID != nil {
		u.ID = *p.ID
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Age != nil {
		u.Age = *p.Age
	}
	if p.Active != nil {
		u.Active = *p.Active
	}
	return u
}

// ApplyOverrides is the dynamic counterpart of With for callers holding
// untyped overrides. Unspecified fields keep their values; an unknown field
// name, a nil value, or a value of the wrong type for its field is a
// ValidationError and leaves u unchanged (the returned User is the zero value
// in that case).
func ApplyOverrides(u User, overrides map[string]any) (User, error) {
	p, err := PatchFromMap(overrides)
	if err != nil {
		return User{}, err
	}
	return u.With(p), nil
}

// PatchFromMap validates untyped overrides into a Patch, using the same value
// coercion rules as FromMap.
func PatchFromMap(overrides map[string]any) (Patch, error) {
	var p Patch
	for _, name := range FieldNames {
		v, ok := overrides[name]
		if !ok {
			continue
		}
		if v == nil {
			return Patch{}, &ValidationError{Field: name, Reason: "override value is nil"}
		}
		var u User
		if verr := setField(&u, name, v); verr != nil {
			return Patch{}, verr
		}
		switch name {
		case FieldID:
			p.ID = &u.ID
		case FieldName:
			p.Name = &u.Name
		case FieldEmail:
			p.Email = &u.Email
		case FieldAge:
			p.Age = &u.Age
		case FieldActive:
			p.Active = &u.Active
		}
	}
	for key := range overrides {
		switch key {
		case FieldID, FieldName, FieldEmail, FieldAge, FieldActive:
		default:
			return Patch{}, &ValidationError{Field: key, Reason: "unknown field"}
		}
	}
	return p, nil
}
