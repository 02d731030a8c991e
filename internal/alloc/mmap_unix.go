//go:build unix

package alloc

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// reserve obtains n bytes of anonymous private memory from the kernel.
// The mapping is page-aligned, which satisfies MinAlign.
func reserve(n int) uintptr {
	b, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic("alloc: mmap failed: " + err.Error())
	}
	return uintptr(unsafe.Pointer(&b[0]))
}

// release unmaps a reservation made with the same n. Only dedicated
// large-block reservations are ever released; slabs stay mapped.
func release(p uintptr, n int) {
	if err := unix.Munmap(unsafe.Slice((*byte)(unsafe.Pointer(p)), n)); err != nil {
		panic("alloc: munmap failed: " + err.Error())
	}
}
