// Package invariant gives the core a single place to draw the line between
// "caller supplied bad data" (returned as an error) and "caller already broke
// a documented precondition" (a programmer error, which panics).
package invariant

import "fmt"

// Assert panics with a formatted message if cond is false. Reserved for
// conditions that can only be false if a caller ignored a returned error or a
// documented precondition (e.g. applying a force to a static body).
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
