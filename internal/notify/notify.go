// Package notify carries transient user-facing messages (toasts) out of the
// core units. Sinks are fire-and-forget; nothing reads them for control flow.
package notify

import (
	"context"
	"log"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

type Notification struct {
	Kind     Kind          `json:"kind"`
	Message  string        `json:"message"`
	Icon     string        `json:"icon,omitempty"`
	Duration time.Duration `json:"-"`
	// DurationMs mirrors Duration for JSON clients.
	DurationMs int64 `json:"duration_ms,omitempty"`
}

func Success(msg string) Notification { return Notification{Kind: KindSuccess, Message: msg} }
func Error(msg string) Notification   { return Notification{Kind: KindError, Message: msg} }
func Info(msg string) Notification    { return Notification{Kind: KindInfo, Message: msg} }

func (n Notification) WithIcon(icon string) Notification {
	n.Icon = icon
	return n
}

func (n Notification) WithDuration(d time.Duration) Notification {
	n.Duration = d
	n.DurationMs = d.Milliseconds()
	return n
}

type Sink interface {
	Notify(ctx context.Context, n Notification)
}

// LogSink writes notifications to a logger.
type LogSink struct {
	logger *log.Logger
}

func NewLogSink(logger *log.Logger) *LogSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Notify(_ context.Context, n Notification) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Printf("[Notify] kind=%s message=%q", n.Kind, n.Message)
}
