package ctbool

// Integer multiplication opcodes are not data-independent on every CPU
// (older ARM cores, some embedded targets shorten the operation for small
// operands). The functions below therefore default to a shift-and-add
// implementation whose execution profile does not depend on operand values.
// Callers on targets where the native multiplier is known to be
// constant-time may opt into it with SetHardwareMul.

var hardwareMul bool

// SetHardwareMul selects the native multiply operators instead of the
// shift-and-add fallback. The setting is public configuration; it must be
// changed only before any secret values are processed, and only on targets
// where the hardware multiplier is known to be data-independent.
func SetHardwareMul(enabled bool) {
	hardwareMul = enabled
}

// HardwareMul reports whether native multiply operators are in use.
func HardwareMul() bool {
	return hardwareMul
}

// MulU32 returns the low 32 bits of x*y.
func MulU32(x, y uint32) uint32 {
	if hardwareMul {
		return x * y
	}
	var z uint32
	for i := 0; i < 32; i++ {
		z += x & -(y & 1)
		x <<= 1
		y >>= 1
	}
	return z
}

// MulS32 returns the low 32 bits of x*y, reinterpreted as signed.
func MulS32(x, y int32) int32 {
	return int32(MulU32(uint32(x), uint32(y)))
}

// MulU32W returns the full 64-bit product of the 32-bit operands x and y.
func MulU32W(x, y uint32) uint64 {
	if hardwareMul {
		return uint64(x) * uint64(y)
	}
	var z uint64
	xe := uint64(x)
	for i := 0; i < 32; i++ {
		z += xe & -uint64(y&1)
		xe <<= 1
		y >>= 1
	}
	return z
}

// MulS32W returns the full 64-bit signed product of the 32-bit operands
// x and y.
func MulS32W(x, y int32) int64 {
	// Split each operand into its low 31 bits and sign bit; the
	// cross terms are then corrections on the unsigned product.
	xu := uint32(x)
	yu := uint32(y)
	xh := xu >> 31
	yh := yu >> 31
	xu &= 0x7FFFFFFF
	yu &= 0x7FFFFFFF
	z := MulU32W(xu, yu)
	z -= (uint64(xu&-yh) + uint64(yu&-xh)) << 31
	z += uint64(xh&yh) << 62
	return int64(z)
}

// MulU64 returns the low 64 bits of x*y.
func MulU64(x, y uint64) uint64 {
	if hardwareMul {
		return x * y
	}
	var z uint64
	for i := 0; i < 64; i++ {
		z += x & -(y & 1)
		x <<= 1
		y >>= 1
	}
	return z
}

// MulS64 returns the low 64 bits of x*y, reinterpreted as signed.
func MulS64(x, y int64) int64 {
	return int64(MulU64(uint64(x), uint64(y)))
}
