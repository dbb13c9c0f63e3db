// SPDX-License-Identifier: MPL-2.0

package user

import "fmt"

// Canonical field names, in wire order.
const (
	FieldID     = "id"
	FieldName   = "name"
	FieldEmail  = "email"
	FieldAge    = "age"
	FieldActive = "active"
)

// FieldNames is the canonical field order shared by the JSON encoders and
// Fields(). Callers must not modify it.
var FieldNames = [5]string{FieldID, FieldName, FieldEmail, FieldAge, FieldActive}

// User is a single user record. Values are immutable by convention: every
// method takes a value receiver and every modification returns a new User, so
// two records never share mutable state and == compares all five fields.
//
// Field values carry no constraints beyond their types. There is no email
// format check and no bounds on ID or Age; validation concerns presence and
// type only, and applies where data crosses the untyped boundary (FromJSON,
// FromMap, ApplyOverrides).
type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Age    int    `json:"age"`
	Active bool   `json:"active"`
}

// New constructs a User from typed values. It cannot fail: the signature
// enforces presence and type of every field at compile time.
func New(id int64, name, email string, age int, active bool) User {
	return User{ID: id, Name: name, Email: email, Age: age, Active: active}
}

// String returns the canonical debug form, e.g.
// User(id=1, name='Alice Johnson', email='alice@example.com').
// It is display-only and is not parsed by any other component.
func (u User) String() string {
	return fmt.Sprintf("User(id=%d, name='%s', email='%s')", u.ID, u.Name, u.Email)
}

// JSON returns the compact canonical wire form with keys in the order
// id, name, email, age, active.
func (u User) JSON() string { return string(appendCompact(nil, u)) }

// JSONIndent returns the wire form with two-space indentation and one
// key-value pair per line. No trailing newline is emitted.
func (u User) JSONIndent() string { return string(appendIndent(nil, u)) }
