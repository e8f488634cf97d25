package worker

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

// slogCronLogger adapts slog to cron.Logger. cron's own scheduling chatter is
// logged at debug.
type slogCronLogger struct {
	log *slog.Logger
}

var _ cron.Logger = slogCronLogger{}

func (l slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(LogMsgCronEvent, append([]interface{}{"cron_msg", msg}, keysAndValues...)...)
}

func (l slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(LogMsgCronError, append([]interface{}{"cron_msg", msg, "error", err}, keysAndValues...)...)
}
