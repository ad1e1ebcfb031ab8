package document

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// Text renders n as compact JSON. A nil node or nil object renders as null.
func Text(n Node) string {
	return string(AppendJSON(nil, n))
}

// AppendJSON appends the compact JSON form of n to dst.
//
// Strings are escaped as JSON requires; bytes that are not valid UTF-8 are
// copied through unchanged so the rendering shows exactly what was stored.
// Floats that JSON cannot represent (NaN, infinities) render as null.
func AppendJSON(dst []byte, n Node) []byte {
	switch v := n.(type) {
	case nil:
		return append(dst, "null"...)
	case Null:
		return append(dst, "null"...)
	case String:
		return appendString(dst, string(v))
	case Int:
		return strconv.AppendInt(dst, int64(v), 10)
	case Int64:
		return strconv.AppendInt(dst, int64(v), 10)
	case Float:
		return appendFloat(dst, float64(v))
	case Bool:
		return strconv.AppendBool(dst, bool(v))
	case Array:
		dst = append(dst, '[')

		for i, item := range v {
			if i > 0 {
				dst = append(dst, ',')
			}

			dst = AppendJSON(dst, item)
		}

		return append(dst, ']')
	case *Object:
		if v == nil {
			return append(dst, "null"...)
		}

		dst = append(dst, '{')

		for i, key := range v.keys {
			if i > 0 {
				dst = append(dst, ',')
			}

			dst = appendString(dst, key)
			dst = append(dst, ':')
			dst = AppendJSON(dst, v.values[key])
		}

		return append(dst, '}')
	default:
		return append(dst, "null"...)
	}
}

func appendFloat(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}

	start := len(dst)
	dst = strconv.AppendFloat(dst, f, 'g', -1, 64)

	// Keep floats distinguishable from integers once rendered.
	if !strings.ContainsAny(string(dst[start:]), ".eE") {
		dst = append(dst, ".0"...)
	}

	return dst
}

func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')

	for i := 0; i < len(s); {
		c := s[i]

		if c >= utf8.RuneSelf {
			_, size := utf8.DecodeRuneInString(s[i:])
			dst = append(dst, s[i:i+size]...)
			i += size

			continue
		}

		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if c < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			} else {
				dst = append(dst, c)
			}
		}

		i++
	}

	return append(dst, '"')
}
