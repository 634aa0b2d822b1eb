// Package mib turns dotted sysctl names into kernel addresses.
//
// A Schema is an immutable tree of Nodes. Interior nodes route to named
// children or to a parameter (an address family, a routing table id); leaves
// carry a value Shape and an Access annotation. Resolution walks the tree one
// segment at a time and produces a Target: the numeric Address, the Shape
// the value codec must use, and whether writes are allowed.
//
//	path, err := mib.Parse("kern.ostype")
//	target, err := mib.OpenBSD().Resolve(path)
//	// target.Address == mib.Address{1, 1}, target.Shape == mib.ShapeCString
//
// Every failure is reported before any kernel call is possible, as a
// *PathError that unwraps to one of ErrMalformedPath, ErrUnknownName,
// ErrIncompletePath, ErrTrailingSegments or ErrNotWritable.
//
// The Schema returned by OpenBSD is built once and is safe for concurrent
// use by any number of goroutines.
package mib
