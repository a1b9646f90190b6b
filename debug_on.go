//go:build dlxdebug

package dlx

import "fmt"

// debugAssert panics with msg when cond is false. Only compiled with the
// dlxdebug build tag, per spec.md §7 ("runtime invariant violations ...
// detected only by debug-mode assertions").
func debugAssert(cond bool, msg string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("dlx: invariant violated: "+msg, args...))
	}
}
