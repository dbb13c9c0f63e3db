// SPDX-License-Identifier: MPL-2.0

package bench

import (
	"fmt"

	"userbench/internal/dataset"
	"userbench/pkg/user"
)

// Operation names, in run order.
const (
	OpBaseline      = "baseline"
	OpConstruct     = "construct"
	OpMarshal       = "marshal"
	OpMarshalIndent = "marshal-indent"
	OpUnmarshal     = "unmarshal"
	OpMapping       = "mapping"
	OpCopy          = "copy"
	OpAccess        = "access"
)

// OpNames returns every operation name in canonical run order.
func OpNames() []string {
	return []string{
		OpBaseline, OpConstruct, OpMarshal, OpMarshalIndent,
		OpUnmarshal, OpMapping, OpCopy, OpAccess,
	}
}

// accessIterations caps the whole-corpus access operation: each call walks
// the full corpus, so running it at the per-call iteration count would
// dominate the suite.
func accessIterations(iters Iterations) Iterations {
	scaled := iters / 1000
	if scaled < 10 {
		scaled = 10
	}
	return scaled
}

// Ops builds the standard operation set for one engine. Per-call operations
// run against the fixed sample record; the access operation aggregates the
// supplied corpus, using the engine's own field-access path.
func Ops(c user.Codec, corpus []user.User, iters Iterations) ([]Op, error) {
	sample := dataset.Sample()
	sampleMap := dataset.SampleMap()
	sampleData := []byte(dataset.SampleJSON)
	patch := dataset.SamplePatch()

	fields := sample.Fields
	applyPatch := func() user.User { return sample.With(patch) }
	aggregate := func() user.Tally { return user.Summarize(corpus) }
	if c.Name() == user.EngineReflect {
		fields = func() user.Fields { return user.ReflectFields(sample) }
		applyPatch = func() user.User { return user.ReflectWith(sample, patch) }
		aggregate = func() user.Tally { return user.SummarizeReflect(corpus) }
	}

	ops := make([]Op, 0, 8)
	for _, name := range OpNames() {
		op := Op{Name: name, Engine: c.Name()}
		switch name {
		case OpBaseline:
			op.Fn = func() (uint64, error) { return 1, nil }
		case OpConstruct:
			op.Fn = func() (uint64, error) {
				u, err := c.FromMap(sampleMap)
				return uint64(u.ID), err
			}
		case OpMarshal:
			op.Fn = func() (uint64, error) {
				data, err := c.Encode(sample)
				return uint64(len(data)), err
			}
		case OpMarshalIndent:
			op.Fn = func() (uint64, error) {
				data, err := c.EncodeIndent(sample)
				return uint64(len(data)), err
			}
		case OpUnmarshal:
			op.Fn = func() (uint64, error) {
				u, err := c.Decode(sampleData)
				return uint64(u.Age), err
			}
		case OpMapping:
			op.Fn = func() (uint64, error) {
				return uint64(len(fields())), nil
			}
		case OpCopy:
			op.Fn = func() (uint64, error) {
				return uint64(applyPatch().Age), nil
			}
		case OpAccess:
			op.Iterations = accessIterations(iters)
			op.Fn = func() (uint64, error) {
				t := aggregate()
				return uint64(t.TotalAge) + uint64(t.ActiveCount), nil
			}
		default:
			return nil, fmt.Errorf("unknown operation %q", name)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// SelectOps filters the standard set down to the named operations, keeping
// canonical order. An unknown name is an error; an empty selection means all.
func SelectOps(ops []Op, names []string) ([]Op, error) {
	if len(names) == 0 {
		return ops, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		known := false
		for _, op := range ops {
			if op.Name == n {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown operation %q", n)
		}
		want[n] = true
	}
	selected := make([]Op, 0, len(ops))
	for _, op := range ops {
		if want[op.Name] {
			selected = append(selected, op)
		}
	}
	return selected, nil
}
