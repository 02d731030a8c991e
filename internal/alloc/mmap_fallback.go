//go:build !unix

package alloc

import (
	"sync"
	"unsafe"
)

// Without mmap, reservations come from the Go heap. The registry pins
// every backing slice so the collector keeps it alive while raw
// addresses into it circulate; Go's collector does not move heap
// objects, so a pinned address stays valid.
var (
	pinMu sync.Mutex
	pins  = make(map[uintptr][]byte)
)

// reserve obtains n bytes aligned to MinAlign, pinned until release.
func reserve(n int) uintptr {
	buf := make([]byte, n+MinAlign)
	base := uintptr(unsafe.Pointer(&buf[0]))
	p := (base + MinAlign - 1) &^ (MinAlign - 1)
	pinMu.Lock()
	pins[p] = buf
	pinMu.Unlock()
	return p
}

// release unpins the reservation at p, handing it back to the garbage
// collector. Slabs are never released and stay pinned for the process
// lifetime.
func release(p uintptr, _ int) {
	pinMu.Lock()
	delete(pins, p)
	pinMu.Unlock()
}
