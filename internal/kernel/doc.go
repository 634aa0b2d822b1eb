// Package kernel owns the boundary to the sysctl(2) system call.
//
// Ownership boundary:
// - the Primitive interface and its OpenBSD implementation
// - the Gate chokepoint that enforces address and buffer invariants
// - errno classification for rejected calls
//
// Nothing above this package touches unsafe pointers or raw errnos.
package kernel
