package kernel

import "unsafe"

// bufPtr maps a buffer to a sysctl(2) pointer argument. Only a nil slice
// becomes NULL; an empty non-nil slice keeps a valid pointer so the kernel
// sees a zero-length buffer instead of no buffer.
func bufPtr(b []byte) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(b))
}
