// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sgl

// ErrorKind enumerates the OpenGL-style error codes the Context's
// latched error field can hold.
type ErrorKind uint32

const (
	NoError ErrorKind = iota
	InvalidValue
	InvalidEnum
	InvalidOperation
	OutOfResources
	InternalError
	StackOverflow
	StackUnderflow
	OutOfMemory
)

var errorStrings = map[ErrorKind]string{
	NoError:          "no error",
	InvalidValue:     "numeric or bitmask argument out of range",
	InvalidEnum:      "enum argument not in the accepted set",
	InvalidOperation: "begin/end interlock violated, no active context, or scene/primitive nesting violated",
	OutOfResources:   "context pool exhausted",
	InternalError:    "internal error",
	StackOverflow:    "push exceeded the matrix stack capacity",
	StackUnderflow:   "pop on a single-entry matrix stack",
	OutOfMemory:      "allocation failure",
}

// GetErrorString returns the static message for an ErrorKind.
func GetErrorString(k ErrorKind) string {
	if s, ok := errorStrings[k]; ok {
		return s
	}
	return "unknown error"
}

func (k ErrorKind) String() string { return GetErrorString(k) }

// APIError wraps an ErrorKind as a Go error, returned by the
// registry-level entry points that have no Context to latch onto
// (CreateContext, Destroy, SetActive, ColorBuffer before an id is
// resolved).
type APIError struct{ Kind ErrorKind }

func (e *APIError) Error() string { return e.Kind.String() }

// errorLatch holds the first error set since the last read; later
// sets are ignored until GetError is called.
type errorLatch struct {
	kind ErrorKind
	set  bool
}

func (l *errorLatch) setError(k ErrorKind) {
	if !l.set {
		l.kind = k
		l.set = true
	}
}

// GetError returns the first error since the last call to GetError
// and resets the latch to NoError.
func (c *Context) GetError() ErrorKind {
	if !c.err.set {
		return NoError
	}
	k := c.err.kind
	c.err.kind = NoError
	c.err.set = false
	return k
}
