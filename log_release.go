//go:build !debug

package planarsweep

// logDebugf is a no-op unless the build is tagged "debug".
func logDebugf(string, ...interface{}) {}
