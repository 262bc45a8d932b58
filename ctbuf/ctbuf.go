// Package ctbuf provides oblivious byte-buffer operations: conditional
// copy and swap, array access at a secret index, and content comparisons.
//
// Every function reads and writes a fixed pattern of memory locations that
// depends only on buffer lengths and addresses, never on buffer contents,
// selector values or indexes. Selectors and comparison results travel as
// [ctbool.Bool] controlled booleans.
package ctbuf

import (
	"unsafe"

	"github.com/agbru/ctkit/ctbool"
)

// CondCopy conditionally copies len(dst) bytes from src into dst. If ctl
// is true, dst receives a snapshot of src as it was on entry, with
// memmove semantics if the buffers overlap; if ctl is false, dst is
// unchanged. In both cases every destination byte is read and rewritten,
// so the memory-access pattern does not reveal ctl.
//
// src must hold at least len(dst) bytes.
func CondCopy(ctl ctbool.Bool, dst, src []byte) {
	n := len(dst)
	if n == 0 {
		return
	}
	m := byte(-(ctl.U32() & 1))

	// When the buffers overlap, converting the base addresses to
	// integers preserves ordering; copying in the right direction
	// then yields memmove semantics. The comparison uses addresses,
	// not contents, so it leaks nothing secret.
	if uintptr(unsafe.Pointer(&dst[0])) <= uintptr(unsafe.Pointer(&src[0])) {
		for u := 0; u < n; u++ {
			dst[u] ^= (src[u] ^ dst[u]) & m
		}
	} else {
		for u := n - 1; u >= 0; u-- {
			dst[u] ^= (src[u] ^ dst[u]) & m
		}
	}
}

// CondSwap conditionally exchanges the contents of a and b over len(a)
// bytes. If ctl is true the contents are swapped, otherwise both buffers
// are unmodified; every byte of both buffers is touched either way.
//
// The buffers must not overlap. b must hold at least len(a) bytes.
func CondSwap(ctl ctbool.Bool, a, b []byte) {
	m := byte(-(ctl.U32() & 1))
	for u := range a {
		x := (a[u] ^ b[u]) & m
		a[u] ^= x
		b[u] ^= x
	}
}

// ArrayRead copies into d the element of index idx from the array a,
// which consists of numLen elements of eltLen bytes each. Every element
// of a is visited exactly once, so the access pattern does not reveal
// idx. Both the element values and the index are protected.
//
// d must hold eltLen bytes, and a must hold numLen*eltLen bytes.
func ArrayRead(d, a []byte, eltLen, numLen int, idx uint64) {
	for u := range d {
		d[u] = 0
	}
	for u := 0; u < numLen; u++ {
		CondCopy(ctbool.U64Eq(uint64(u), idx), d, a[u*eltLen:(u+1)*eltLen])
	}
}

// ArrayWrite copies the eltLen bytes of s into the element of index idx
// of the array a. Every element of a is visited exactly once, so the
// access pattern does not reveal idx.
func ArrayWrite(a []byte, eltLen, numLen int, idx uint64, s []byte) {
	for u := 0; u < numLen; u++ {
		CondCopy(ctbool.U64Eq(uint64(u), idx), a[u*eltLen:(u+1)*eltLen], s)
	}
}

// ArrayEq compares the first len(a) bytes of a and b and returns true if
// they are identical. All bytes are examined regardless of where a
// difference occurs. b must hold at least len(a) bytes.
func ArrayEq(a, b []byte) ctbool.Bool {
	var r uint32
	for u := range a {
		r |= uint32(a[u] ^ b[u])
	}
	return ctbool.U32Eq0(r)
}

// ArrayNeq returns the negation of [ArrayEq].
func ArrayNeq(a, b []byte) ctbool.Bool {
	return ArrayEq(a, b).Not()
}

// ArrayCmp lexicographically compares the first len(a) bytes of a and b,
// using unsigned byte values, and returns -1, 0 or 1. All bytes are
// examined, and the position of the first difference does not leak.
// b must hold at least len(a) bytes.
func ArrayCmp(a, b []byte) int32 {
	var r int32
	for u := range a {
		z := ctbool.S32Sign(int32(a[u]) - int32(b[u]))

		// Keep r once it became non-zero. Both -1 and 1 have
		// their low bit set, so it doubles as the "decided" flag.
		m := -(r & 1)
		r = (r & m) | (z &^ m)
	}
	return r
}
