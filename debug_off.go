//go:build !dlxdebug

package dlx

// debugAssert is a no-op in production builds; see debug_on.go.
func debugAssert(cond bool, msg string, args ...any) {}
