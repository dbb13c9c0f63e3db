// SPDX-License-Identifier: MPL-2.0

package user

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		users []User
		want  Tally
	}{
		{name: "empty", users: nil, want: Tally{}},
		{
			name:  "all inactive",
			users: []User{New(1, "a", "a@x.com", 30, false), New(2, "b", "b@x.com", 40, false)},
			want:  Tally{},
		},
		{
			name:  "mixed",
			users: []User{New(1, "a", "a@x.com", 30, true), New(2, "b", "b@x.com", 40, false), New(3, "c", "c@x.com", 25, true)},
			want:  Tally{TotalAge: 55, ActiveCount: 2},
		},
		{
			name:  "zero age active",
			users: []User{New(1, "a", "a@x.com", 0, true)},
			want:  Tally{TotalAge: 0, ActiveCount: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Summarize(tt.users); got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
			if got := SummarizeReflect(tt.users); got != tt.want {
				t.Errorf("SummarizeReflect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSummarizePathsAgree(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	users := make([]User, 10000)
	for i := range users {
		users[i] = New(
			int64(i+1),
			fmt.Sprintf("User %d", i+1),
			fmt.Sprintf("user%d@example.com", i+1),
			18+rng.Intn(63),
			rng.Intn(2) == 1,
		)
	}

	direct := Summarize(users)
	reflective := SummarizeReflect(users)
	if direct != reflective {
		t.Errorf("access paths disagree: direct %+v, reflect %+v", direct, reflective)
	}
	if direct.ActiveCount == 0 || direct.ActiveCount == int64(len(users)) {
		t.Errorf("degenerate corpus: ActiveCount = %d of %d", direct.ActiveCount, len(users))
	}
	if direct.TotalAge < direct.ActiveCount*18 || direct.TotalAge > direct.ActiveCount*80 {
		t.Errorf("TotalAge %d outside [18,80] per active record bounds", direct.TotalAge)
	}
}

func TestSummarizeDeterministic(t *testing.T) {
	t.Parallel()

	users := []User{
		New(1, "a", "a@x.com", 30, true),
		New(2, "b", "b@x.com", 41, true),
		New(3, "c", "c@x.com", 52, false),
	}
	first := Summarize(users)
	for i := 0; i < 5; i++ {
		if got := Summarize(users); got != first {
			t.Fatalf("Summarize changed between runs: %+v vs %+v", got, first)
		}
	}
}
