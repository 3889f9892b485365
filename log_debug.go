//go:build debug

package planarsweep

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[planarsweep DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages in builds tagged "debug".
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
