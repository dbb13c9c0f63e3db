// SPDX-License-Identifier: MPL-2.0

package user

import "fmt"

// Syntax pass of the hand-written decoder. The full input is checked against
// the JSON grammar before any field is extracted, so a syntactically broken
// document is always a ParseError regardless of where the first type mismatch
// sits. This matches the standard library, which runs its validity scan before
// decoding; the two engines therefore classify every input identically.

type scanner struct {
	data []byte
	off  int
}

// checkSyntax returns a ParseError if data is not a single well-formed JSON
// value, optionally surrounded by whitespace.
func checkSyntax(data []byte) *ParseError {
	s := &scanner{data: data}
	if err := s.value(); err != nil {
		return err
	}
	s.white()
	if s.off < len(s.data) {
		return s.errorf("invalid character %q after top-level value", s.data[s.off])
	}
	return nil
}

func (s *scanner) white() {
	for s.off < len(s.data) {
		switch s.data[s.off] {
		case ' ', '\t', '\n', '\r':
			s.off++
		default:
			return
		}
	}
}

func (s *scanner) errorf(format string, args ...any) *ParseError {
	return &ParseError{Offset: s.off, Reason: fmt.Sprintf(format, args...)}
}

func (s *scanner) eof() *ParseError {
	return &ParseError{Offset: len(s.data), Reason: "unexpected end of input"}
}

func (s *scanner) value() *ParseError {
	s.white()
	if s.off >= len(s.data) {
		return s.eof()
	}
	switch c := s.data[s.off]; {
	case c == '{':
		return s.object()
	case c == '[':
		return s.array()
	case c == '"':
		return s.str()
	case c == 't':
		return s.literal("true")
	case c == 'f':
		return s.literal("false")
	case c == 'n':
		return s.literal("null")
	case c == '-' || isDigit(c):
		return s.number()
	default:
		return s.errorf("invalid character %q looking for beginning of value", c)
	}
}

func (s *scanner) literal(want string) *ParseError {
	rest := s.data[s.off:]
	if len(rest) < len(want) || string(rest[:len(want)]) != want {
		return s.errorf("invalid literal (expecting %s)", want)
	}
	s.off += len(want)
	return nil
}

func (s *scanner) object() *ParseError {
	s.off++ // '{'
	s.white()
	if s.off >= len(s.data) {
		return s.eof()
	}
	if s.data[s.off] == '}' {
		s.off++
		return nil
	}
	for {
		s.white()
		if s.off >= len(s.data) {
			return s.eof()
		}
		if s.data[s.off] != '"' {
			return s.errorf("invalid character %q looking for object key", s.data[s.off])
		}
		if err := s.str(); err != nil {
			return err
		}
		s.white()
		if s.off >= len(s.data) {
			return s.eof()
		}
		if s.data[s.off] != ':' {
			return s.errorf("invalid character %q after object key", s.data[s.off])
		}
		s.off++
		if err := s.value(); err != nil {
			return err
		}
		s.white()
		if s.off >= len(s.data) {
			return s.eof()
		}
		switch s.data[s.off] {
		case ',':
			s.off++
		case '}':
			s.off++
			return nil
		default:
			return s.errorf("invalid character %q after object value", s.data[s.off])
		}
	}
}

func (s *scanner) array() *ParseError {
	s.off++ // '['
	s.white()
	if s.off >= len(s.data) {
		return s.eof()
	}
	if s.data[s.off] == ']' {
		s.off++
		return nil
	}
	for {
		if err := s.value(); err != nil {
			return err
		}
		s.white()
		if s.off >= len(s.data) {
			return s.eof()
		}
		switch s.data[s.off] {
		case ',':
			s.off++
		case ']':
			s.off++
			return nil
		default:
			return s.errorf("invalid character %q after array element", s.data[s.off])
		}
	}
}

func (s *scanner) str() *ParseError {
	s.off++ // opening quote
	for s.off < len(s.data) {
		switch c := s.data[s.off]; {
		case c == '"':
			s.off++
			return nil
		case c == '\\':
			s.off++
			if s.off >= len(s.data) {
				return s.eof()
			}
			switch s.data[s.off] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				s.off++
			case 'u':
				s.off++
				for i := 0; i < 4; i++ {
					if s.off >= len(s.data) {
						return s.eof()
					}
					if !isHex(s.data[s.off]) {
						return s.errorf("invalid character %q in \\u escape", s.data[s.off])
					}
					s.off++
				}
			default:
				return s.errorf("invalid character %q in string escape", s.data[s.off])
			}
		case c < 0x20:
			return s.errorf("invalid character %q in string literal", c)
		default:
			s.off++
		}
	}
	return s.eof()
}

func (s *scanner) number() *ParseError {
	if s.data[s.off] == '-' {
		s.off++
		if s.off >= len(s.data) {
			return s.eof()
		}
	}
	switch {
	case s.data[s.off] == '0':
		s.off++
	case isDigit(s.data[s.off]):
		for s.off < len(s.data) && isDigit(s.data[s.off]) {
			s.off++
		}
	default:
		return s.errorf("invalid character %q in numeric literal", s.data[s.off])
	}
	if s.off < len(s.data) && s.data[s.off] == '.' {
		s.off++
		if s.off >= len(s.data) {
			return s.eof()
		}
		if !isDigit(s.data[s.off]) {
			return s.errorf("invalid character %q after decimal point", s.data[s.off])
		}
		for s.off < len(s.data) && isDigit(s.data[s.off]) {
			s.off++
		}
	}
	if s.off < len(s.data) && (s.data[s.off] == 'e' || s.data[s.off] == 'E') {
		s.off++
		if s.off < len(s.data) && (s.data[s.off] == '+' || s.data[s.off] == '-') {
			s.off++
		}
		if s.off >= len(s.data) {
			return s.eof()
		}
		if !isDigit(s.data[s.off]) {
			return s.errorf("invalid character %q in exponent", s.data[s.off])
		}
		for s.off < len(s.data) && isDigit(s.data[s.off]) {
			s.off++
		}
	}
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
