// Package ctenc provides constant-time textual codecs (hexadecimal and
// Base64) for secret data.
//
// Per-character conversions are computed with mask merges, never by
// indexing a table with secret data, so the transcoded bytes do not
// influence timing or memory-access patterns. Control-flow decisions are
// made only on public properties: buffer lengths, character class
// boundaries (digit vs. separator vs. invalid), and flags.
package ctenc

import (
	"github.com/agbru/ctkit/ctbool"
)

// Flags adjust codec behavior. The zero value selects the strict
// defaults.
type Flags uint32

const (
	// HexSkipWS makes the hex decoder skip whitespace (any byte of
	// value 32 or less) between digits.
	HexSkipWS Flags = 1 << iota
	// HexPadOdd makes the hex decoder pad a trailing lone digit into
	// a full byte (digit in the high nibble) instead of reporting an
	// error.
	HexPadOdd
	// HexUppercase makes the hex encoder emit 'A'..'F'.
	HexUppercase
)

// HexVal returns the numerical value (0 to 15) of an hexadecimal digit
// character, or -1 if c is not an hexadecimal digit.
func HexVal(c byte) int32 {
	// At most one of the three clauses yields a non-zero value; each
	// is offset by 1 so that the final subtraction maps invalid
	// characters to -1.
	x := uint32(c) - 0x30
	y := uint32(c) - 0x41
	z := uint32(c) - 0x61
	r := ((x + 1) & -ctbool.U32Lt(x, 10).U32()) |
		((y + 11) & -ctbool.U32Lt(y, 6).U32()) |
		((z + 11) & -ctbool.U32Lt(z, 6).U32())
	return int32(r) - 1
}

// HexDigit returns the hexadecimal digit character for x (0 to 15),
// uppercase or lowercase.
func HexDigit(x int, uppercase bool) byte {
	off := uint32(0x41 - 0x3A)
	if !uppercase {
		off += 0x20
	}
	// For x >= 10 the subtraction clears the mask's upper bits.
	return byte(0x30 + uint32(x) + (off & ^((uint32(x) - 10) >> 8)))
}

// HexScan returns the length of the longest prefix of src consisting of
// hexadecimal digits, optionally with interleaved whitespace.
func HexScan(src []byte, skipWS bool) int {
	var u int
	for u = 0; u < len(src); u++ {
		c := src[u]
		if skipWS && c <= 0x20 {
			continue
		}
		if HexVal(c) < 0 {
			break
		}
	}
	return u
}

// HexToBin decodes hexadecimal characters from src into dst. It returns
// the number of bytes produced and the index in src of the offending
// character, or -1 when the whole source was consumed without error.
//
// Decoding stops at the first character that is not an hexadecimal digit
// (or whitespace, with [HexSkipWS]); a trailing lone digit is an error
// unless [HexPadOdd] is set, in which case it is padded into a full
// byte. A nil dst counts bytes without writing; output-buffer overflow
// is detected on the first digit of the overflowing byte.
func HexToBin(dst, src []byte, flags Flags) (int, int) {
	halfbyte := false
	var acc int32
	v := 0
	for u := 0; u < len(src); u++ {
		c := src[u]
		d := HexVal(c)

		if d < 0 {
			if flags&HexSkipWS != 0 && c <= 32 {
				continue
			}
			if halfbyte && flags&HexPadOdd != 0 {
				if dst != nil {
					dst[v] = byte(acc)
				}
				v++
			}
			return v, u
		}

		// Keep a first digit in the accumulator, or complete the
		// byte with a second one. Capacity is checked on the
		// first digit.
		if halfbyte {
			if dst != nil {
				dst[v] = byte(acc + d)
			}
			v++
		} else {
			if dst != nil && v == len(dst) {
				return v, u
			}
			acc = d << 4
		}
		halfbyte = !halfbyte
	}

	if halfbyte {
		if flags&HexPadOdd == 0 {
			return v, len(src)
		}
		if dst != nil {
			dst[v] = byte(acc)
		}
		v++
	}
	return v, -1
}

// BinToHex encodes src into hexadecimal characters in dst and returns
// the number of characters written. A nil dst returns the required
// length (twice the source length) without writing. A short dst
// truncates the output to the digits that fit.
func BinToHex(dst []byte, src []byte, flags Flags) int {
	if dst == nil {
		return len(src) << 1
	}
	uppercase := flags&HexUppercase != 0
	v := 0
	for u := 0; u < len(src); u++ {
		x := src[u]
		if v == len(dst) {
			break
		}
		dst[v] = HexDigit(int(x>>4), uppercase)
		v++
		if v == len(dst) {
			break
		}
		dst[v] = HexDigit(int(x&15), uppercase)
		v++
	}
	return v
}
