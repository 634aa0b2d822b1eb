//go:build openbsd

package kernel

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// System issues real __sysctl(2) calls.
type System struct{}

func (System) Sysctl(addr []int32, old []byte, oldlen *uintptr, new []byte) error {
	oldp, newp := bufPtr(old), bufPtr(new)
	_, _, errno := unix.Syscall6(
		unix.SYS___SYSCTL,
		uintptr(unsafe.Pointer(&addr[0])),
		uintptr(len(addr)),
		uintptr(oldp),
		uintptr(unsafe.Pointer(oldlen)),
		uintptr(newp),
		uintptr(len(new)),
	)
	if errno != 0 {
		return errno
	}
	return nil
}
