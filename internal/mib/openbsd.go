package mib

import "sync"

// Release is the OS family the built-in table describes.
const Release = "OpenBSD 7"

// Top-level CTL_* identifiers.
const (
	CtlKern    int32 = 1
	CtlVM      int32 = 2
	CtlFS      int32 = 3
	CtlNet     int32 = 4
	CtlDebug   int32 = 5
	CtlHW      int32 = 6
	CtlMachdep int32 = 7
	CtlDDB     int32 = 9
	CtlVFS     int32 = 10
)

var openbsd = sync.OnceValue(func() *Schema {
	return MustBuild(Release,
		kernTree(),
		vmTree(),
		fsTree(),
		netTree(),
		debugTree(),
		hwTree(),
		machdepTree(),
		ddbTree(),
		vfsTree(),
	)
})

// OpenBSD returns the process-wide built-in schema.
func OpenBSD() *Schema {
	return openbsd()
}
