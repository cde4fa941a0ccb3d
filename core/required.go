package core

import (
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"
)

var diagLogger atomic.Pointer[zap.Logger]

func init() {
	diagLogger.Store(zap.NewNop())
}

// SetLogger sets the logger used for development diagnostics. nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	diagLogger.Store(l)
}

// RequiredProp reports a missing required property. It only logs; the caller keeps running.
func RequiredProp(fnName, propName string) {
	diagLogger.Load().Error(
		`The property "`+propName+`" is required in "`+fnName+`"`,
		zap.String("function", fnName),
		zap.String("property", propName),
	)
}

// IndexOutOfRange reports an index outside [0, count). Like RequiredProp it only logs.
func IndexOutOfRange(fnName string, index, count int) {
	diagLogger.Load().Error(
		`Index `+strconv.Itoa(index)+` is out of range in "`+fnName+`"`,
		zap.String("function", fnName),
		zap.Int("index", index),
		zap.Int("count", count),
	)
}
