// SPDX-License-Identifier: MPL-2.0

package user

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Extraction pass of the hand-written decoder. It runs only on input that
// checkSyntax accepted, so it never reports syntax problems; every failure
// here is a ValidationError. Unknown keys are skipped, duplicate keys are
// last-wins, and a null value leaves its field unset, null being last-wins
// too. The standard library behaves the same way with the pointer-field wire
// struct, which is what keeps the two engines in agreement.

const (
	seenID = 1 << iota
	seenName
	seenEmail
	seenAge
	seenActive
)

var requiredFields = [...]struct {
	name string
	bit  uint8
}{
	{FieldID, seenID},
	{FieldName, seenName},
	{FieldEmail, seenEmail},
	{FieldAge, seenAge},
	{FieldActive, seenActive},
}

// FromJSON parses text into a User via the hand-written decoder. It returns a
// ParseError for syntactically invalid JSON (including trailing data after the
// object) and a ValidationError when the document is well-formed but the root
// is not an object, a required key is missing or null, or a value's JSON type
// is incompatible with its field. Unknown keys are ignored.
func FromJSON(text string) (User, error) {
	return decodeDirect([]byte(text))
}

func decodeDirect(data []byte) (User, error) {
	if perr := checkSyntax(data); perr != nil {
		return User{}, perr
	}
	d := &decoder{data: data}
	d.white()
	if d.data[d.off] != '{' {
		return User{}, &ValidationError{Reason: "cannot decode " + d.kind() + " as user object"}
	}

	var (
		u    User
		seen uint8
	)
	d.off++
	d.white()
	if d.data[d.off] == '}' {
		d.off++
	} else {
		for {
			d.white()
			key := d.readString()
			d.white()
			d.off++ // ':'
			d.white()

			// A null value leaves the field unset even when an earlier
			// duplicate key supplied one: null assigns nil to the wire
			// struct's pointer on the other engine, so it must clear the
			// seen bit here.
			null := d.data[d.off] == 'n'
			switch {
			case null:
				d.skipValue()
				for _, f := range requiredFields {
					if f.name == key {
						seen &^= f.bit
					}
				}
			case key == FieldID:
				n, verr := d.readInt(FieldID, 64)
				if verr != nil {
					return User{}, verr
				}
				u.ID = n
				seen |= seenID
			case key == FieldName:
				s, verr := d.readStringField(FieldName)
				if verr != nil {
					return User{}, verr
				}
				u.Name = s
				seen |= seenName
			case key == FieldEmail:
				s, verr := d.readStringField(FieldEmail)
				if verr != nil {
					return User{}, verr
				}
				u.Email = s
				seen |= seenEmail
			case key == FieldAge:
				n, verr := d.readInt(FieldAge, strconv.IntSize)
				if verr != nil {
					return User{}, verr
				}
				u.Age = int(n)
				seen |= seenAge
			case key == FieldActive:
				b, verr := d.readBool(FieldActive)
				if verr != nil {
					return User{}, verr
				}
				u.Active = b
				seen |= seenActive
			default:
				d.skipValue()
			}

			d.white()
			if d.data[d.off] == ',' {
				d.off++
				continue
			}
			d.off++ // '}'
			break
		}
	}

	for _, f := range requiredFields {
		if seen&f.bit == 0 {
			return User{}, &ValidationError{Field: f.name, Reason: "required field is missing"}
		}
	}
	return u, nil
}

type decoder struct {
	data []byte
	off  int
}

func (d *decoder) white() {
	for d.off < len(d.data) {
		switch d.data[d.off] {
		case ' ', '\t', '\n', '\r':
			d.off++
		default:
			return
		}
	}
}

// kind names the JSON type of the value starting at the current offset.
func (d *decoder) kind() string {
	switch c := d.data[d.off]; c {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func (d *decoder) readInt(field string, bits int) (int64, *ValidationError) {
	if c := d.data[d.off]; c != '-' && !isDigit(c) {
		return 0, &ValidationError{Field: field, Reason: "cannot decode " + d.kind() + " as integer"}
	}
	start := d.off
	d.off++
	for d.off < len(d.data) && isNumberByte(d.data[d.off]) {
		d.off++
	}
	tok := string(d.data[start:d.off])
	n, err := strconv.ParseInt(tok, 10, bits)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("cannot decode number %s as integer", tok)}
	}
	return n, nil
}

func (d *decoder) readStringField(field string) (string, *ValidationError) {
	if d.data[d.off] != '"' {
		return "", &ValidationError{Field: field, Reason: "cannot decode " + d.kind() + " as string"}
	}
	return d.readString(), nil
}

func (d *decoder) readBool(field string) (bool, *ValidationError) {
	switch d.data[d.off] {
	case 't':
		d.off += len("true")
		return true, nil
	case 'f':
		d.off += len("false")
		return false, nil
	default:
		return false, &ValidationError{Field: field, Reason: "cannot decode " + d.kind() + " as bool"}
	}
}

// readString decodes the quoted string at the current offset. The fast path
// returns a plain slice; escapes, multibyte runes and invalid UTF-8 take the
// buffered path, with invalid bytes and unpaired surrogates replaced by
// U+FFFD the way the standard library replaces them.
func (d *decoder) readString() string {
	d.off++ // opening quote
	start := d.off
	for d.data[d.off] != '"' && d.data[d.off] != '\\' && d.data[d.off] < utf8.RuneSelf {
		d.off++
	}
	if d.data[d.off] == '"' {
		s := string(d.data[start:d.off])
		d.off++
		return s
	}

	buf := append([]byte(nil), d.data[start:d.off]...)
	for {
		switch c := d.data[d.off]; {
		case c == '"':
			d.off++
			return string(buf)
		case c == '\\':
			buf = d.appendEscape(buf)
		case c < utf8.RuneSelf:
			buf = append(buf, c)
			d.off++
		default:
			r, size := utf8.DecodeRune(d.data[d.off:])
			if r == utf8.RuneError && size == 1 {
				buf = utf8.AppendRune(buf, utf8.RuneError)
			} else {
				buf = append(buf, d.data[d.off:d.off+size]...)
			}
			d.off += size
		}
	}
}

// appendEscape consumes the escape sequence at d.off and appends its decoded
// form. A \uXXXX high surrogate joins a directly following \uXXXX low
// surrogate; otherwise it decodes to U+FFFD on its own.
func (d *decoder) appendEscape(buf []byte) []byte {
	if r := hexRune(d.data[d.off:]); r >= 0 {
		d.off += 6
		if utf16.IsSurrogate(r) {
			if r2 := hexRune(d.data[d.off:]); r2 >= 0 {
				if dec := utf16.DecodeRune(r, r2); dec != unicode.ReplacementChar {
					d.off += 6
					return utf8.AppendRune(buf, dec)
				}
			}
			r = unicode.ReplacementChar
		}
		return utf8.AppendRune(buf, r)
	}
	switch e := d.data[d.off+1]; e {
	case 'b':
		buf = append(buf, '\b')
	case 'f':
		buf = append(buf, '\f')
	case 'n':
		buf = append(buf, '\n')
	case 'r':
		buf = append(buf, '\r')
	case 't':
		buf = append(buf, '\t')
	default: // '"', '\\', '/'
		buf = append(buf, e)
	}
	d.off += 2
	return buf
}

// hexRune decodes a leading \uXXXX escape, or returns -1 if b does not start
// with one.
func hexRune(b []byte) rune {
	if len(b) < 6 || b[0] != '\\' || b[1] != 'u' {
		return -1
	}
	var r rune
	for _, c := range b[2:6] {
		switch {
		case isDigit(c):
			c -= '0'
		case c >= 'a' && c <= 'f':
			c = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			c = c - 'A' + 10
		default:
			return -1
		}
		r = r*16 + rune(c)
	}
	return r
}

// skipValue advances past the syntactically valid value at the current offset.
func (d *decoder) skipValue() {
	switch c := d.data[d.off]; {
	case c == '{':
		d.off++
		d.white()
		if d.data[d.off] == '}' {
			d.off++
			return
		}
		for {
			d.white()
			d.skipString()
			d.white()
			d.off++ // ':'
			d.white()
			d.skipValue()
			d.white()
			if d.data[d.off] == ',' {
				d.off++
				continue
			}
			d.off++ // '}'
			return
		}
	case c == '[':
		d.off++
		d.white()
		if d.data[d.off] == ']' {
			d.off++
			return
		}
		for {
			d.white()
			d.skipValue()
			d.white()
			if d.data[d.off] == ',' {
				d.off++
				continue
			}
			d.off++ // ']'
			return
		}
	case c == '"':
		d.skipString()
	case c == 't', c == 'n':
		d.off += 4
	case c == 'f':
		d.off += 5
	default: // number
		d.off++
		for d.off < len(d.data) && isNumberByte(d.data[d.off]) {
			d.off++
		}
	}
}

func (d *decoder) skipString() {
	d.off++ // opening quote
	for {
		switch d.data[d.off] {
		case '"':
			d.off++
			return
		case '\\':
			d.off += 2
		default:
			d.off++
		}
	}
}

func isNumberByte(c byte) bool {
	return isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}
