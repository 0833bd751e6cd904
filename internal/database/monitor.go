package database

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
)

// NewCommandMonitor logs every MongoDB command through zerolog.
//
// Started commands are logged at trace level with the statement and
// target database. Completed commands log their duration and show up
// as warnings once they exceed slowThreshold (zero disables the warning).
// Failures are logged as errors.
func NewCommandMonitor(logger *zerolog.Logger, slowThreshold time.Duration) *event.CommandMonitor {
	cmdLogger := logger.With().Str("component", "mongo").Logger()

	return &event.CommandMonitor{
		Started: func(_ context.Context, evt *event.CommandStartedEvent) {
			cmdLogger.Trace().
				Int64("request_id", evt.RequestID).
				Str("command", evt.CommandName).
				Str("database", evt.DatabaseName).
				Str("statement", evt.Command.String()).
				Msg("mongo command started")
		},
		Succeeded: func(_ context.Context, evt *event.CommandSucceededEvent) {
			e := cmdLogger.Debug()
			if slowThreshold > 0 && evt.Duration >= slowThreshold {
				e = cmdLogger.Warn().Bool("slow", true)
			}
			e.Int64("request_id", evt.RequestID).
				Str("command", evt.CommandName).
				Dur("duration", evt.Duration).
				Msg("mongo command succeeded")
		},
		Failed: func(_ context.Context, evt *event.CommandFailedEvent) {
			cmdLogger.Error().
				Int64("request_id", evt.RequestID).
				Str("command", evt.CommandName).
				Dur("duration", evt.Duration).
				Str("failure", evt.Failure).
				Msg("mongo command failed")
		},
	}
}
