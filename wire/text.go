package wire

import (
	"github.com/pkg/errors"
)

// The textual sub-codecs below reproduce the exact byte sequences
// Minetest emits for string-embedded substructures, per spec.md §4.2.

const hexDigits = "0123456789abcdef"

func toHex(n byte) byte { return hexDigits[n&0xf] }

func fromHex(ch byte) (byte, error) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', nil
	case ch >= 'a' && ch <= 'f':
		return 10 + (ch - 'a'), nil
	case ch >= 'A' && ch <= 'F':
		return 10 + (ch - 'A'), nil
	default:
		return 0, errors.Wrapf(ErrInvalidValue, "invalid hex digit %q", ch)
	}
}

// needsJSONQuoting reports whether input must be emitted in quoted/escaped
// form. Bare form is only used when every byte is in printable ASCII
// minus space minus double-quote.
func needsJSONQuoting(input []byte) bool {
	if len(input) == 0 {
		return true
	}
	for _, ch := range input {
		if ch <= 0x1f || ch >= 0x7f || ch == ' ' || ch == '"' {
			return true
		}
	}
	return false
}

// SerializeJSONStringIfNeeded emits input unquoted when safe, else in
// quoted/escaped form.
func SerializeJSONStringIfNeeded(input []byte) []byte {
	if !needsJSONQuoting(input) {
		return append([]byte(nil), input...)
	}
	return SerializeJSONString(input)
}

// SerializeJSONString always emits the quoted/escaped form.
func SerializeJSONString(input []byte) []byte {
	out := make([]byte, 0, len(input)+2)
	out = append(out, '"')
	for _, ch := range input {
		switch ch {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case 0x08:
			out = append(out, '\\', 'b')
		case 0x0C:
			out = append(out, '\\', 'f')
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		default:
			if ch >= 32 && ch <= 126 {
				out = append(out, ch)
			} else {
				out = append(out, '\\', 'u', '0', '0', toHex(ch>>4), toHex(ch&0xf))
			}
		}
	}
	out = append(out, '"')
	return out
}

// DeserializeJSONStringIfNeeded parses either a quoted JSON-ish string or
// a bare token up to the next space/newline/eof, returning the decoded
// value and the number of input bytes consumed.
func DeserializeJSONStringIfNeeded(input []byte) ([]byte, int, error) {
	if len(input) == 0 {
		return nil, 0, nil
	}
	if input[0] == '"' {
		return DeserializeJSONString(input)
	}
	end := len(input)
	for i, ch := range input {
		if ch == ' ' || ch == '\n' {
			end = i
			break
		}
	}
	return append([]byte(nil), input[:end]...), end, nil
}

// DeserializeJSONString parses the quoted/escaped form starting at
// input[0] == '"', returning the decoded value and bytes consumed.
func DeserializeJSONString(input []byte) ([]byte, int, error) {
	if len(input) == 0 || input[0] != '"' {
		return nil, 0, errors.Wrap(ErrInvalidValue, "expected opening quote")
	}
	var out []byte
	pos := 1
	take := func() (byte, error) {
		if pos >= len(input) {
			return 0, errors.Wrap(ErrEof, "json string ended prematurely")
		}
		ch := input[pos]
		pos++
		return ch, nil
	}
	for pos < len(input) {
		ch, err := take()
		if err != nil {
			return nil, 0, err
		}
		switch ch {
		case '"':
			return out, pos, nil
		case '\\':
			code, err := take()
			if err != nil {
				return nil, 0, err
			}
			switch code {
			case 'b':
				out = append(out, 0x08)
			case 'f':
				out = append(out, 0x0C)
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case 'u':
				if pos+4 > len(input) {
					return nil, 0, errors.Wrap(ErrEof, "json string ended prematurely")
				}
				cp := input[pos : pos+4]
				pos += 4
				if cp[0] != '0' || cp[1] != '0' {
					return nil, 0, errors.Wrap(ErrInvalidValue, "unsupported unicode escape in json-ish string")
				}
				hi, err := fromHex(cp[2])
				if err != nil {
					return nil, 0, err
				}
				lo, err := fromHex(cp[3])
				if err != nil {
					return nil, 0, err
				}
				out = append(out, (hi<<4)|lo)
			default:
				out = append(out, code)
			}
		default:
			out = append(out, ch)
		}
	}
	return nil, 0, errors.Wrap(ErrEof, "json string ended prematurely")
}
