//go:build debug

package trace

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[geomkernel DEBUG] ", log.LstdFlags)

// Tracef writes a formatted trace line to stderr. Only linked in when
// built with "-tags debug"; see sweep.Operation.Next for its call sites.
func Tracef(format string, args ...interface{}) {
	logger.Printf(format, args...)
}
