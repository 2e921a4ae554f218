package expr

import "go.uber.org/zap"

// Observer receives non-fatal diagnostics emitted during evaluation.
// Evaluation never fails; anything worth surfacing goes through here
// instead of a process-wide logger.
type Observer interface {
	Warn(msg string)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(msg string)

func (f ObserverFunc) Warn(msg string) { f(msg) }

type zapObserver struct {
	log *zap.Logger
}

func (o zapObserver) Warn(msg string) { o.log.Warn(msg) }

// NewZapObserver routes diagnostics to a zap logger.
func NewZapObserver(log *zap.Logger) Observer {
	return zapObserver{log: log}
}
