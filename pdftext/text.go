// Package pdftext converts between the string representations PDF uses in
// its document-information dictionary and plain Go strings. Literal and
// hexadecimal string objects are decoded from PDFDocEncoding or UTF-16
// into text, and text is encoded back into whichever of the two forms can
// carry it. Decoding is total: malformed values degrade to a best-effort
// result and are flagged, they never produce an error.
package pdftext

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Decode renders a dictionary value as text. Indirect references must be
// resolved by the caller first. The lossy result reports that the value
// did not conform to any expected encoding and parts of it may have been
// substituted.
func Decode(obj types.Object) (text string, lossy bool) {
	switch v := obj.(type) {
	case types.StringLiteral:
		return decodeBytes(Unescape(v.Value()))
	case types.HexLiteral:
		b, clean := hexBytes(v.Value())
		text, lossy = decodeBytes(b)
		return text, lossy || !clean
	case types.Name:
		return string(v), false
	case types.Integer:
		return strconv.Itoa(int(v)), false
	case types.Float:
		return strconv.FormatFloat(float64(v), 'f', -1, 64), false
	case types.Boolean:
		return strconv.FormatBool(bool(v)), false
	case nil:
		return "", false
	default:
		return fmt.Sprintf("(unsupported %T)", obj), true
	}
}

// Encode converts text to the string object to store for it. Text wholly
// representable in PDFDocEncoding becomes an escaped literal string;
// anything else becomes a hexadecimal UTF-16BE string with a byte-order
// mark, so the emitted bytes never need further escaping.
func Encode(text string) types.Object {
	if b, ok := encodePDFDoc(text); ok {
		return types.StringLiteral(Escape(b))
	}
	return types.HexLiteral(hex.EncodeToString(utf16Bytes(text)))
}

// decodeBytes interprets the payload of a PDF text string: UTF-16 behind
// a byte-order mark (big endian is what writers produce, little endian is
// accepted for interoperability), PDFDocEncoding otherwise. Payloads with
// bytes undefined in PDFDocEncoding are retried as UTF-8 before degrading
// to replacement runes.
func decodeBytes(b []byte) (string, bool) {
	if len(b) >= 2 && b[0] == 0xfe && b[1] == 0xff {
		return decodeUTF16(b[2:], false)
	}
	if len(b) >= 2 && b[0] == 0xff && b[1] == 0xfe {
		return decodeUTF16(b[2:], true)
	}

	ascii := true
	defined := true
	for _, c := range b {
		if c >= 0x20 && c <= 0x7e {
			continue
		}
		ascii = false
		if decodePDFDocByte(c) == unicode.ReplacementChar {
			defined = false
			break
		}
	}
	if ascii {
		return string(b), false
	}
	if !defined && utf8.Valid(b) {
		return string(b), true
	}
	r := make([]rune, len(b))
	for i, c := range b {
		r[i] = decodePDFDocByte(c)
	}
	return string(r), !defined
}

func decodeUTF16(b []byte, littleEndian bool) (string, bool) {
	lossy := len(b)%2 != 0
	u := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		if littleEndian {
			u = append(u, uint16(b[i])|uint16(b[i+1])<<8)
		} else {
			u = append(u, uint16(b[i])<<8|uint16(b[i+1]))
		}
	}
	r := utf16.Decode(u)
	// utf16.Decode substitutes U+FFFD for broken surrogates, but the
	// input may carry U+FFFD itself: only an excess of replacement
	// runes over replacement units marks a substitution.
	repl := 0
	for _, c := range r {
		if c == unicode.ReplacementChar {
			repl++
		}
	}
	if repl > 0 {
		for _, v := range u {
			if v == uint16(unicode.ReplacementChar) {
				repl--
			}
		}
	}
	return string(r), lossy || repl > 0
}

func encodePDFDoc(s string) ([]byte, bool) {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		c, ok := encodePDFDocByte(r)
		if !ok {
			return nil, false
		}
		b = append(b, c)
	}
	return b, true
}

// utf16Bytes serializes text as UTF-16BE prefixed with the byte-order mark.
func utf16Bytes(s string) []byte {
	u := utf16.Encode([]rune(s))
	b := make([]byte, 0, 2*len(u)+2)
	b = append(b, 0xfe, 0xff)
	for _, v := range u {
		b = append(b, byte(v>>8), byte(v))
	}
	return b
}

// Unescape resolves the escape sequences of a literal string body and
// returns the raw bytes. It is lenient: a trailing backslash is dropped,
// an unknown escape keeps the escaped byte, raw line ends read as LF.
func Unescape(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\r' {
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			out = append(out, '\n')
			continue
		}
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i == len(s) {
			break
		}
		switch s[i] {
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case '\n':
			// line continuation
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v := int(s[i] - '0')
			for n := 0; n < 2 && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '7'; n++ {
				i++
				v = v<<3 | int(s[i]-'0')
			}
			out = append(out, byte(v))
		default:
			out = append(out, s[i])
		}
	}
	return out
}

// Escape renders raw bytes as the body of a literal string: delimiters
// and backslash are escaped, control bytes become named or octal escapes,
// everything else passes through.
func Escape(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		switch c {
		case '(', ')', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&sb, `\%03o`, c)
			} else {
				sb.WriteByte(c)
			}
		}
	}
	return sb.String()
}

// hexBytes decodes the body of a hexadecimal string. PDF whitespace is
// ignored and an odd trailing digit is padded with zero. Any other
// non-hex character is skipped and reported via clean=false.
func hexBytes(s string) ([]byte, bool) {
	clean := true
	compact := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == 0x00 || c == '\t' || c == '\n' || c == '\f' || c == '\r' || c == ' ':
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
			compact = append(compact, c)
		default:
			clean = false
		}
	}
	if len(compact)%2 == 1 {
		compact = append(compact, '0')
	}
	b, err := hex.DecodeString(string(compact))
	if err != nil {
		return b, false
	}
	return b, clean
}
