package ctenc

import (
	"github.com/agbru/ctkit/ctbool"
)

const (
	// B64DecNoPad makes the decoder treat '=' padding characters as
	// invalid instead of consuming them at the end of the data.
	B64DecNoPad Flags = 0x0100 << iota
	// B64DecNoWS makes the decoder reject whitespace (any byte of
	// value 32 or less) instead of skipping it.
	B64DecNoWS
	// B64EncNoPad suppresses the final '=' signs in the encoded
	// output.
	B64EncNoPad
	// B64EncNewline inserts a line break after every full line of
	// output, and after the final partial line.
	B64EncNewline
	// B64EncCRLF makes line breaks CR+LF instead of LF. Ignored
	// without [B64EncNewline].
	B64EncCRLF
	// B64EncLine64 makes lines 64 characters long (48 source bytes)
	// instead of 76 (57 source bytes). Ignored without
	// [B64EncNewline].
	B64EncLine64
)

// b64val returns the numerical value (0 to 63) of a Base64 character,
// or -1 if c is not one. The mapping is mask-merged so that the
// character value never selects a memory address.
func b64val(c byte) int32 {
	x := uint32(c) - 0x41
	y := uint32(c) - 0x61
	z := uint32(c) - 0x30
	r := ((x + 1) & -ctbool.U32Lt(x, 26).U32()) |
		((y + 27) & -ctbool.U32Lt(y, 26).U32()) |
		((z + 53) & -ctbool.U32Lt(z, 10).U32()) |
		(63 & -ctbool.U32Eq(uint32(c), 0x2B).U32()) |
		(64 & -ctbool.U32Eq(uint32(c), 0x2F).U32())
	return int32(r) - 1
}

// tob64 returns the Base64 character for the value d (0 to 63).
func tob64(d int32) byte {
	x := uint32(d)
	r := (0x41 + x) & -ctbool.U32Lt(x, 26).U32()
	x -= 26
	r |= (0x61 + x) & -ctbool.U32Lt(x, 26).U32()
	x -= 26
	r |= (0x30 + x) & -ctbool.U32Lt(x, 10).U32()
	r |= 0x2B & -ctbool.U32Eq(x, 10).U32()
	r |= 0x2F & -ctbool.U32Eq(x, 11).U32()
	return byte(r)
}

// b64EncLen returns the encoded length of srcLen bytes under flags.
func b64EncLen(srcLen int, flags Flags) int {
	var n int
	if flags&B64EncNewline != 0 {
		llen := 57
		if flags&B64EncLine64 != 0 {
			llen = 48
		}
		n = (srcLen + llen - 1) / llen
		if flags&B64EncCRLF != 0 {
			n <<= 1
		}
	}
	if flags&B64EncNoPad != 0 {
		n += (srcLen / 3) << 2
		switch srcLen % 3 {
		case 1:
			n += 2
		case 2:
			n += 3
		}
	} else {
		n += ((srcLen + 2) / 3) << 2
	}
	return n
}

// BinToB64 encodes src into Base64 characters in dst and returns the
// number of characters written. A nil dst returns the required length
// without writing; a dst shorter than that length makes the function
// write nothing and return 0.
func BinToB64(dst []byte, src []byte, flags Flags) int {
	need := b64EncLen(len(src), flags)
	if dst == nil {
		return need
	}
	if len(dst) < need {
		return 0
	}

	llen := 0
	if flags&B64EncNewline != 0 {
		llen = 57
		if flags&B64EncLine64 != 0 {
			llen = 48
		}
	}

	v := 0
	emitBreak := func() {
		if flags&B64EncCRLF != 0 {
			dst[v] = '\r'
			v++
		}
		dst[v] = '\n'
		v++
	}

	line := 0
	for u := 0; u < len(src); u += 3 {
		rem := len(src) - u
		var w uint32
		switch {
		case rem >= 3:
			w = uint32(src[u])<<16 | uint32(src[u+1])<<8 | uint32(src[u+2])
			dst[v] = tob64(int32(w >> 18 & 63))
			dst[v+1] = tob64(int32(w >> 12 & 63))
			dst[v+2] = tob64(int32(w >> 6 & 63))
			dst[v+3] = tob64(int32(w & 63))
			v += 4
		case rem == 2:
			w = uint32(src[u])<<16 | uint32(src[u+1])<<8
			dst[v] = tob64(int32(w >> 18 & 63))
			dst[v+1] = tob64(int32(w >> 12 & 63))
			dst[v+2] = tob64(int32(w >> 6 & 63))
			v += 3
			if flags&B64EncNoPad == 0 {
				dst[v] = '='
				v++
			}
		default:
			w = uint32(src[u]) << 16
			dst[v] = tob64(int32(w >> 18 & 63))
			dst[v+1] = tob64(int32(w >> 12 & 63))
			v += 2
			if flags&B64EncNoPad == 0 {
				dst[v] = '='
				dst[v+1] = '='
				v += 2
			}
		}
		if llen > 0 {
			line += 3
			if rem <= 3 || line >= llen {
				emitBreak()
				line = 0
			}
		}
	}
	return v
}

// B64ToBin decodes Base64 characters from src into dst. It returns the
// number of bytes produced and the index in src of the offending
// character, or -1 when the whole source decoded without error.
//
// Whitespace (bytes of value 32 or less) is skipped unless [B64DecNoWS]
// is set. Trailing '=' padding is required to complete the final group
// unless [B64DecNoPad] is set, in which case padding characters are
// errors and a dangling group is flushed as-is. Non-canonical dangling
// bits are errors. A nil dst counts bytes without writing.
//
// When the output buffer fills up, the error may be reported at the
// character following the one whose bits overflowed the buffer: the
// decoder does not branch on decoded bit values, so it only notices the
// condition when the next full byte is due.
func B64ToBin(dst, src []byte, flags Flags) (int, int) {
	var acc uint32
	accBits := uint(0)
	v := 0
	groupLen := 0 // data characters in the current quartet
	pad := 0
	ended := false
	for u := 0; u < len(src); u++ {
		c := src[u]
		if c <= 32 {
			if flags&B64DecNoWS != 0 {
				return v, u
			}
			continue
		}
		if c == '=' {
			// Padding is only meaningful after 2 or 3 data
			// characters of a group, and ends the data.
			if flags&B64DecNoPad != 0 || ended {
				return v, u
			}
			if groupLen != 2 && groupLen != 3 {
				return v, u
			}
			pad++
			if groupLen+pad == 4 {
				ended = true
			}
			continue
		}
		if ended || pad > 0 {
			return v, u
		}
		d := b64val(c)
		if d < 0 {
			return v, u
		}
		acc = acc<<6 | uint32(d)
		accBits += 6
		groupLen = (groupLen + 1) & 3
		if accBits >= 8 {
			accBits -= 8
			if dst != nil && v == len(dst) {
				return v, u
			}
			if dst != nil {
				dst[v] = byte(acc >> accBits)
			}
			v++
		}
	}

	switch {
	case pad > 0 && !ended:
		// Padding did not complete the group.
		return v, len(src)
	case pad == 0 && groupLen == 1:
		// A lone trailing character can never carry a byte.
		return v, len(src)
	case pad == 0 && groupLen != 0 && flags&B64DecNoPad == 0:
		// Dangling group without the required padding.
		return v, len(src)
	case accBits != 0 && acc&(1<<accBits-1) != 0:
		// Non-canonical dangling bits.
		return v, len(src)
	}
	return v, -1
}
