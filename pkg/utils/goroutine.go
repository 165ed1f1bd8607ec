package utils

import (
	"context"
	"log"
	"runtime/debug"

	pkglogger "golang-equity-advisor/pkg/logger"
)

// GoSafe runs fn in a goroutine and recovers panics so a single misbehaving
// task cannot take down the process.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("recovered from panic: %v\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}

// ShouldContinue reports whether the context is still live, logging when it
// is not so loops can bail out quietly.
func ShouldContinue(ctx context.Context, logger *pkglogger.Logger) bool {
	select {
	case <-ctx.Done():
		logger.Info("context done, stopping work", pkglogger.ErrorField(ctx.Err()))
		return false
	default:
		return true
	}
}
