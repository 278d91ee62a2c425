package helpers

import (
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/lager/v3"
)

var redactedKeyPatterns = []string{"[Pp]wd", "[Pp]ass", "[Ss]ecret", "[Tt]oken"}

type LoggingConfig struct {
	Level         string `yaml:"level" json:"level"`
	PlainTextSink bool   `yaml:"plaintext_sink" json:"plaintext_sink"`
}

func InitLoggerFromConfig(conf *LoggingConfig, name string) lager.Logger {
	return NewLogger(os.Stdout, conf, name)
}

func NewLogger(writer io.Writer, conf *LoggingConfig, name string) lager.Logger {
	logLevel, err := ParseLogLevel(conf.Level)
	if err != nil {
		handleError("failed to initialize logger", err)
	}

	logger := lager.NewLogger(name)

	if conf.PlainTextSink {
		logger.RegisterSink(NewTextWriterSink(writer, logLevel))
	} else {
		logger.RegisterSink(createRedactedSink(writer, logLevel))
	}

	return logger
}

func ParseLogLevel(level string) (lager.LogLevel, error) {
	switch level {
	case "debug":
		return lager.DEBUG, nil
	case "info":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return -1, fmt.Errorf("unsupported log level: %s", level)
	}
}

func createRedactedSink(writer io.Writer, logLevel lager.LogLevel) lager.Sink {
	redactedSink, err := NewRedactingWriterWithURLCredSink(writer, logLevel, redactedKeyPatterns, nil)
	if err != nil {
		handleError("failed to create redacted sink", err)
	}
	return redactedSink
}

func handleError(message string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "%s: %s\n", message, err.Error())
	os.Exit(1)
}
