package results

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger sets the logger that recovered panics are reported to at debug level.
// Passing nil restores the default, which discards everything.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

func logPanic(p any) {
	logger.Load().Debug("recovered panic",
		zap.Any("panic", p),
		zap.Stack("stack"),
	)
}
