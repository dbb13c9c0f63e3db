// SPDX-License-Identifier: MPL-2.0

package user

// Engine names, as reported by Codec.Name and accepted by ByName.
const (
	EngineDirect  = "direct"
	EngineReflect = "reflect"
)

// Codec is one engine's implementation of the User wire contract. The two
// engines differ only in mechanism (hand-written code vs. reflection); for
// every input they must produce identical bytes, identical records and
// identical accept/reject decisions, which is what the benchmarks rely on
// when they compare the engines' timings.
type Codec interface {
	// Name identifies the engine ("direct" or "reflect").
	Name() string
	// Encode renders u in the compact canonical wire form.
	Encode(u User) ([]byte, error)
	// EncodeIndent renders u with two-space indentation.
	EncodeIndent(u User) ([]byte, error)
	// Decode parses one JSON object into a User, with the FromJSON error
	// contract.
	Decode(data []byte) (User, error)
	// FromMap constructs a User from an untyped mapping, with the FromMap
	// error contract.
	FromMap(m map[string]any) (User, error)
}

// DirectCodec is the hand-written engine: explicit per-field encoding,
// scanning and validation, no reflection anywhere on the path.
type DirectCodec struct{}

// Name implements Codec.
func (DirectCodec) Name() string { return EngineDirect }

// Encode implements Codec. It cannot fail; the error is always nil.
func (DirectCodec) Encode(u User) ([]byte, error) { return appendCompact(nil, u), nil }

// EncodeIndent implements Codec. It cannot fail; the error is always nil.
func (DirectCodec) EncodeIndent(u User) ([]byte, error) { return appendIndent(nil, u), nil }

// Decode implements Codec.
func (DirectCodec) Decode(data []byte) (User, error) { return decodeDirect(data) }

// FromMap implements Codec.
func (DirectCodec) FromMap(m map[string]any) (User, error) { return FromMap(m) }

// Codecs returns the engines in comparison order, direct first.
func Codecs() []Codec {
	return []Codec{DirectCodec{}, ReflectCodec{}}
}

// ByName returns the named engine, or false if no engine has that name.
func ByName(name string) (Codec, bool) {
	for _, c := range Codecs() {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}
