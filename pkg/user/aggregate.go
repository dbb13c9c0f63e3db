// SPDX-License-Identifier: MPL-2.0

package user

import "reflect"

// Tally is the result of one aggregation pass.
type Tally struct {
	// TotalAge is the sum of Age over records with Active set.
	TotalAge int64 `json:"total_age" toml:"total_age"`
	// ActiveCount is the number of records with Active set.
	ActiveCount int64 `json:"active_count" toml:"active_count"`
}

// Summarize aggregates users with direct field reads. Pure and deterministic:
// the same slice always produces the same Tally, and no error path exists for
// well-formed records.
func Summarize(users []User) Tally {
	var t Tally
	for _, u := range users {
		if u.Active {
			t.TotalAge += int64(u.Age)
			t.ActiveCount++
		}
	}
	return t
}

// SummarizeReflect computes the same aggregation through reflective field
// access, reading Age and Active by name on each record. It must return a
// Tally identical to Summarize for every input; the pair is the oracle that
// proves the two access paths behaviorally interchangeable.
func SummarizeReflect(users []User) Tally {
	var t Tally
	for i := range users {
		rv := reflect.ValueOf(users[i])
		if rv.FieldByName("Active").Bool() {
			t.TotalAge += rv.FieldByName("Age").Int()
			t.ActiveCount++
		}
	}
	return t
}
