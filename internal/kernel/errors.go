package kernel

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

var (
	ErrKernelRejected = errors.New("kernel: call rejected")
	ErrBadAddress     = errors.New("kernel: invalid address length")
	ErrBufferLength   = errors.New("kernel: length holder exceeds buffer")
)

// Class groups errnos by what a caller can do about them.
type Class uint8

const (
	ClassOther Class = iota
	ClassPermission
	ClassNotFound
	ClassInvalid
	ClassBusy
	ClassNoMemory
	ClassTransient
	ClassUnsupported
)

func (c Class) String() string {
	switch c {
	case ClassPermission:
		return "permission"
	case ClassNotFound:
		return "not_found"
	case ClassInvalid:
		return "invalid"
	case ClassBusy:
		return "busy"
	case ClassNoMemory:
		return "no_memory"
	case ClassTransient:
		return "transient"
	case ClassUnsupported:
		return "unsupported"
	default:
		return "other"
	}
}

// Classify maps an errno returned by sysctl(2) onto a Class.
func Classify(err error) Class {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return ClassOther
	}
	switch errno {
	case unix.EPERM, unix.EACCES:
		return ClassPermission
	case unix.ENOENT, unix.ENOTDIR, unix.EOPNOTSUPP:
		return ClassNotFound
	case unix.EINVAL, unix.EISDIR, unix.EFAULT, unix.ERANGE:
		return ClassInvalid
	case unix.EBUSY:
		return ClassBusy
	case unix.ENOMEM:
		return ClassNoMemory
	case unix.EAGAIN, unix.EINTR:
		return ClassTransient
	case unix.ENOSYS:
		return ClassUnsupported
	default:
		return ClassOther
	}
}

// Error is a failed kernel call. The original errno is preserved in Errno.
type Error struct {
	Phase   Phase
	Address []int32
	Errno   error
	Class   Class
}

func (e *Error) Error() string {
	return fmt.Sprintf("kernel: %s %v: %s (%v)", e.Phase, e.Address, e.Class, e.Errno)
}

func (e *Error) Unwrap() []error {
	return []error{ErrKernelRejected, e.Errno}
}

// Temporary reports whether retrying the same call may succeed.
// ENOMEM is included: the value can grow between probe and fetch.
func (e *Error) Temporary() bool {
	switch e.Class {
	case ClassBusy, ClassTransient, ClassNoMemory:
		return true
	default:
		return false
	}
}
