package mib

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedPath    = errors.New("mib: malformed path")
	ErrUnknownName      = errors.New("mib: unknown name")
	ErrIncompletePath   = errors.New("mib: incomplete path")
	ErrTrailingSegments = errors.New("mib: trailing segments")
	ErrNotWritable      = errors.New("mib: not writable")
)

// PathError reports a name that cannot be turned into a usable Target.
type PathError struct {
	Kind  error
	Input string
	// Depth is the index of the offending segment, or -1 when the error is
	// not tied to one segment.
	Depth   int
	Segment string
	// Prefix is the part of the name that resolved before the failure.
	Prefix string
	Reason string
}

func (e *PathError) Error() string {
	msg := fmt.Sprintf("%v: %q", e.Kind, e.Input)
	if e.Depth >= 0 {
		msg += fmt.Sprintf(" at depth %d", e.Depth)
		if e.Segment != "" {
			msg += fmt.Sprintf(" (segment %q", e.Segment)
			if e.Prefix != "" {
				msg += fmt.Sprintf(" after %q", e.Prefix)
			}
			msg += ")"
		}
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *PathError) Unwrap() error {
	return e.Kind
}

// KindName returns a short label for err's kind, or "" when err is not one
// of the package sentinels.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrMalformedPath):
		return "malformed_path"
	case errors.Is(err, ErrUnknownName):
		return "unknown_name"
	case errors.Is(err, ErrIncompletePath):
		return "incomplete_path"
	case errors.Is(err, ErrTrailingSegments):
		return "trailing_segments"
	case errors.Is(err, ErrNotWritable):
		return "not_writable"
	default:
		return ""
	}
}
