package ctint

// Operations that cannot work in place (aliased multiply, division)
// need transient buffers sized by the operand width. Requirements within
// a fixed byte budget are always granted; larger ones are granted only
// while heap use is enabled, and it can be disabled for tiny-system
// builds. Every buffer is allocated with make at the time of the request. When no scratch can be obtained, the operation
// reports failure and its caller produces NaN. All scratch is dead on
// return from the operation that acquired it.

const defaultScratchBudget = 4096

var (
	scratchBudget = defaultScratchBudget
	heapEnabled   = true
)

// SetScratchBudget sets the byte budget for small scratch buffers. Zero
// or negative restores the default (4096 bytes). The budget is public
// configuration and must not be changed concurrently with operations.
func SetScratchBudget(n int) {
	if n <= 0 {
		n = defaultScratchBudget
	}
	scratchBudget = n
}

// SetHeapEnabled controls whether scratch requirements above the budget
// may be heap-allocated. With the heap disabled, oversized operations
// produce NaN instead.
func SetHeapEnabled(enabled bool) {
	heapEnabled = enabled
}

// scratchWords returns count zeroed buffers of n words each, or ok=false
// when the current policy cannot provide them.
func scratchWords(n, count int) ([][]uint32, bool) {
	if n*count*4 > scratchBudget && !heapEnabled {
		return nil, false
	}
	bufs := make([][]uint32, count)
	for i := range bufs {
		bufs[i] = make([]uint32, n)
	}
	return bufs, true
}
