// SPDX-License-Identifier: MPL-2.0

package user

import (
	"strconv"
	"unicode/utf8"
)

// The hand-written encoder. Output must stay byte-identical to what
// encoding/json produces for the same record (ReflectCodec goes through the
// standard library), so string escaping below mirrors the standard library's
// rules exactly: `"` and `\` get short escapes, as do \b \f \n \r \t; other
// control characters, `<`, `>` and `&` become \u00XX; U+2028 and U+2029 become
// \u202X; invalid UTF-8 bytes are replaced with �; everything else is
// copied through verbatim.

const hexDigits = "0123456789abcdef"

func appendCompact(dst []byte, u User) []byte {
	dst = append(dst, `{"id":`...)
	dst = strconv.AppendInt(dst, u.ID, 10)
	dst = append(dst, `,"name":`...)
	dst = appendQuoted(dst, u.Name)
	dst = append(dst, `,"email":`...)
	dst = appendQuoted(dst, u.Email)
	dst = append(dst, `,"age":`...)
	dst = strconv.AppendInt(dst, int64(u.Age), 10)
	dst = append(dst, `,"active":`...)
	dst = strconv.AppendBool(dst, u.Active)
	return append(dst, '}')
}

func appendIndent(dst []byte, u User) []byte {
	dst = append(dst, "{\n  \"id\": "...)
	dst = strconv.AppendInt(dst, u.ID, 10)
	dst = append(dst, ",\n  \"name\": "...)
	dst = appendQuoted(dst, u.Name)
	dst = append(dst, ",\n  \"email\": "...)
	dst = appendQuoted(dst, u.Email)
	dst = append(dst, ",\n  \"age\": "...)
	dst = strconv.AppendInt(dst, int64(u.Age), 10)
	dst = append(dst, ",\n  \"active\": "...)
	dst = strconv.AppendBool(dst, u.Active)
	return append(dst, "\n}"...)
}

// appendQuoted appends s as a quoted JSON string.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); {
		if b := s[i]; b < utf8.RuneSelf {
			if jsonSafe[b] {
				i++
				continue
			}
			dst = append(dst, s[start:i]...)
			switch b {
			case '\\', '"':
				dst = append(dst, '\\', b)
			case '\b':
				dst = append(dst, '\\', 'b')
			case '\f':
				dst = append(dst, '\\', 'f')
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\t':
				dst = append(dst, '\\', 't')
			default:
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xF])
			}
			i++
			start = i
			continue
		}
		c, size := utf8.DecodeRuneInString(s[i:])
		if c == utf8.RuneError && size == 1 {
			dst = append(dst, s[start:i]...)
			dst = append(dst, `�`...)
			i += size
			start = i
			continue
		}
		if c == '\u2028' || c == '\u2029' {
			dst = append(dst, s[start:i]...)
			dst = append(dst, '\\', 'u', '2', '0', '2', hexDigits[c&0xF])
			i += size
			start = i
			continue
		}
		i += size
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}

// jsonSafe marks ASCII bytes that may appear unescaped inside a JSON string.
// Printable ASCII minus `"`, `\` and the HTML-sensitive `<`, `>`, `&`.
var jsonSafe = [utf8.RuneSelf]bool{}

func init() {
	for b := 0x20; b < utf8.RuneSelf; b++ {
		switch b {
		case '"', '\\', '<', '>', '&':
		default:
			jsonSafe[b] = true
		}
	}
}
