package dlx

import "fmt"

// debugError formats an invariant-violation error for checkInvariants.
// Always compiled in (checkInvariants is test-only code, not a
// production hot path), unlike debugAssert in debug_on.go/debug_off.go.
func debugError(format string, args ...any) error {
	return fmt.Errorf("dlx: invariant violated: "+format, args...)
}
