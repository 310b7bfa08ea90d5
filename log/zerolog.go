package log

import "github.com/rs/zerolog"

// zerologAdapter wraps a zerolog.Logger so it can back the runtime's Logger
// interface.
type zerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter adapts a configured zerolog.Logger for use with
// SetLogger.
//
//	zlog := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	log.SetLogger(log.NewZerologAdapter(zlog))
func NewZerologAdapter(logger zerolog.Logger) Logger {
	return &zerologAdapter{logger: logger}
}

func (a *zerologAdapter) Debug(msg string, fields ...Field) { a.emit(a.logger.Debug(), msg, fields) }
func (a *zerologAdapter) Info(msg string, fields ...Field)  { a.emit(a.logger.Info(), msg, fields) }
func (a *zerologAdapter) Warn(msg string, fields ...Field)  { a.emit(a.logger.Warn(), msg, fields) }
func (a *zerologAdapter) Error(msg string, fields ...Field) { a.emit(a.logger.Error(), msg, fields) }

func (a *zerologAdapter) emit(event *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		event = event.Interface(f.Key, f.Value)
	}
	event.Msg(msg)
}
