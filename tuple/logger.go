package tuple

import (
	"sync"

	"go.uber.org/zap"
)

// The subset of [*zap.SugaredLogger] this package writes to.
type ILogger interface {
	Debugf(template string, args ...any)
}

var (
	logger   ILogger = newDefaultLogger()
	debugLog         = false
	logMutex sync.RWMutex
)

func newDefaultLogger() ILogger {
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Named("tuple").Sugar()
}

// Replace the logger debug output is written to. A nil [l] discards output.
func SetLogger(l ILogger) {
	defer logMutex.Unlock()
	logMutex.Lock()

	if l == nil {
		l = zap.NewNop().Sugar()
	}
	logger = l
}

func DebugLogEnabled() bool {
	defer logMutex.RUnlock()
	logMutex.RLock()
	return debugLog
}

func SetDebugLog(v bool) {
	defer logMutex.Unlock()
	logMutex.Lock()

	debugLog = v
}

func DebugPrintf(format string, v ...any) {
	logMutex.RLock()
	l, enabled := logger, debugLog
	logMutex.RUnlock()

	if enabled {
		l.Debugf(format, v...)
	}
}
