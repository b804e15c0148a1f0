package try

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var pkgLogger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	pkgLogger.Store(&nop)
}

// SetLogger replaces the logger used to report callback failures swallowed by
// Each, OnSuccess and OnFailure. The default discards everything.
func SetLogger(l zerolog.Logger) {
	pkgLogger.Store(&l)
}

func logger() *zerolog.Logger {
	return pkgLogger.Load()
}

// swallowed logs a callback failure that is not allowed to propagate.
func swallowed(op string, owner Try, outcome Try) {
	if err := outcome.Err(); err != nil {
		logger().Debug().
			Str("op", op).
			Str("id", owner.ID().String()).
			Err(err).
			Msg("callback failed")
	}
}
