// Package codec provides an incremental UTF-8 code-point codec: decoding one
// scalar value at a time from a byte stream, and encoding a scalar value back
// to its UTF-8 byte form.
package codec

import (
	"bufio"
	"io"

	"github.com/kelbwah/unihuff/internal/errs"
)

// MaxCodePoint is the exclusive upper bound of a valid Unicode code point.
const MaxCodePoint = 0x110000

// DecodeNext reads the next UTF-8 scalar value from r.
//
// It returns io.EOF when the stream ends cleanly on a code-point boundary.
// A malformed lead byte, a continuation byte that doesn't match 10xxxxxx, or
// a premature end inside a multi-byte sequence is reported as an
// errs.UTF8Invalid error; the caller may resync by calling DecodeNext again,
// since only the bytes already consumed for the failed sequence are lost.
//
// No overlong-form or surrogate-range rejection is performed beyond the
// lead/continuation bit-pattern checks; a structurally valid but
// overlong or surrogate-range sequence decodes without error.
func DecodeNext(r *bufio.Reader) (rune, int, error) {
	first, err := r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, 0, io.EOF
		}
		return 0, 0, errs.New(errs.InputOpen, "codec.DecodeNext", err)
	}

	switch {
	case first < 0x80:
		return rune(first), 1, nil
	case first&0xE0 == 0xC0:
		return decodeContinuation(r, rune(first&0x1F), 1)
	case first&0xF0 == 0xE0:
		return decodeContinuation(r, rune(first&0x0F), 2)
	case first&0xF8 == 0xF0:
		return decodeContinuation(r, rune(first&0x07), 3)
	default:
		return 0, 1, errs.New(errs.UTF8Invalid, "codec.DecodeNext", nil)
	}
}

// decodeContinuation reads n continuation bytes, folding them into the
// accumulator seeded with the lead byte's payload bits.
func decodeContinuation(r *bufio.Reader, acc rune, n int) (rune, int, error) {
	read := 1
	for i := 0; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, read, errs.New(errs.UTF8Invalid, "codec.DecodeNext", err)
		}
		read++
		if b&0xC0 != 0x80 {
			return 0, read, errs.New(errs.UTF8Invalid, "codec.DecodeNext", nil)
		}
		acc = acc<<6 | rune(b&0x3F)
	}
	return acc, read, nil
}

// Encode emits the UTF-8 byte form of cp. The caller must ensure
// 0 <= cp < MaxCodePoint; behavior outside that range is unspecified.
func Encode(cp rune) []byte {
	switch {
	case cp < 0x80:
		return []byte{byte(cp)}
	case cp < 0x800:
		return []byte{
			0xC0 | byte(cp>>6),
			0x80 | byte(cp&0x3F),
		}
	case cp < 0x10000:
		return []byte{
			0xE0 | byte(cp>>12),
			0x80 | byte((cp>>6)&0x3F),
			0x80 | byte(cp&0x3F),
		}
	default:
		return []byte{
			0xF0 | byte(cp>>18),
			0x80 | byte((cp>>12)&0x3F),
			0x80 | byte((cp>>6)&0x3F),
			0x80 | byte(cp&0x3F),
		}
	}
}
