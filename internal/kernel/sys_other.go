//go:build !openbsd

package kernel

import "golang.org/x/sys/unix"

// System reports ENOSYS: the schema only describes the OpenBSD MIB.
type System struct{}

func (System) Sysctl([]int32, []byte, *uintptr, []byte) error {
	return unix.ENOSYS
}
