// SPDX-License-Identifier: MPL-2.0

// Package dataset produces the deterministic user corpora the benchmarks run
// against. Generation is fully specified so that independent runs (and
// independent engines) can be fed byte-identical inputs: a Generator with the
// same seed always yields the same sequence.
package dataset

import (
	"fmt"
	"math/rand"
	"strings"

	"userbench/pkg/user"
)

// DefaultSeed is the seed used by the benchmark corpus and the aggregation
// oracle described in the test suite.
const DefaultSeed = 42

// Name pools for generated records. Fixed and ASCII-only so that the derived
// email addresses need no escaping.
var (
	firstNames = []string{
		"Alice", "Bob", "Carol", "David", "Erin", "Frank", "Grace", "Henry",
		"Iris", "Jack", "Karen", "Liam", "Mona", "Nathan", "Olga", "Peter",
		"Quinn", "Rosa", "Samuel", "Tina",
	}
	lastNames = []string{
		"Anderson", "Brown", "Clark", "Davis", "Evans", "Fisher", "Garcia",
		"Hughes", "Irwin", "Johnson", "King", "Lopez", "Miller", "Nguyen",
		"Ortiz", "Parker", "Quigley", "Reyes", "Smith", "Turner",
	}
)

// Generator yields deterministic pseudo-random users.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded with seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the generated record for sequential id. Each call draws
// exactly four values from the source, in the order first name, last name,
// age, active; age is uniform in [18, 80] and active is a uniform boolean.
// The email derives from the name and id without further draws.
func (g *Generator) Next(id int64) user.User {
	first := firstNames[g.rng.Intn(len(firstNames))]
	last := lastNames[g.rng.Intn(len(lastNames))]
	age := 18 + g.rng.Intn(63)
	active := g.rng.Intn(2) == 1

	name := first + " " + last
	email := fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), id)
	return user.New(id, name, email, age, active)
}

// Users generates n records with ids 1 through n.
func (g *Generator) Users(n int) []user.User {
	users := make([]user.User, n)
	for i := range users {
		users[i] = g.Next(int64(i + 1))
	}
	return users
}

// Users is shorthand for New(seed).Users(n).
func Users(seed int64, n int) []user.User {
	return New(seed).Users(n)
}
