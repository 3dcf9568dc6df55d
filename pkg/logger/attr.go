package logger

import (
	"log/slog"
	"time"
)

// Group creates a group attribute.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error returns an "error" attribute, or an empty one when err is nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Provider names the generation model backend.
func Provider(name string) slog.Attr {
	return slog.String("provider", name)
}

func Model(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("model", name)
}

func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
