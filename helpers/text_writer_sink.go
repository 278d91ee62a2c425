package helpers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

type textWriterSink struct {
	logger   *slog.Logger
	minLevel lager.LogLevel
}

var _ lager.Sink = &textWriterSink{}

func NewTextWriterSink(writer io.Writer, logLevel lager.LogLevel) lager.Sink {
	opts := &slog.HandlerOptions{
		Level: toSlogLevel(logLevel),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String("time", a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	return &textWriterSink{
		logger:   slog.New(slog.NewTextHandler(writer, opts)),
		minLevel: logLevel,
	}
}

func toSlogLevel(l lager.LogLevel) slog.Level {
	switch l {
	case lager.DEBUG:
		return slog.LevelDebug
	case lager.ERROR, lager.FATAL:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (sink *textWriterSink) Log(log lager.LogFormat) {
	if log.LogLevel < sink.minLevel {
		return
	}
	attrs := sink.convertDataToAttrs(log)
	sink.logger.LogAttrs(context.Background(), toSlogLevel(log.LogLevel), log.Message, attrs...)
}

func (sink *textWriterSink) convertDataToAttrs(log lager.LogFormat) []slog.Attr {
	var attrs []slog.Attr

	if log.Source != "" {
		attrs = append(attrs, slog.String("source", log.Source))
	}
	if log.Error != nil {
		attrs = append(attrs, slog.String("error", log.Error.Error()))
	}
	for key, value := range log.Data {
		if key == "error" && log.Error != nil {
			continue
		}
		attrs = append(attrs, slog.Any(key, value))
	}

	return attrs
}
