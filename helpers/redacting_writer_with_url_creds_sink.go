package helpers

import (
	"io"
	"sync"

	"code.cloudfoundry.org/lager/v3"
)

// redactingWriterWithURLCredSink writes JSON log lines with secrets removed from
// both sensitive keys and credentials embedded in connection URLs.
type redactingWriterWithURLCredSink struct {
	writer      io.Writer
	minLogLevel lager.LogLevel
	writeL      sync.Mutex
	redacter    *JSONRedacterWithURLCred
}

func NewRedactingWriterWithURLCredSink(writer io.Writer, minLogLevel lager.LogLevel, keyPatterns []string, valuePatterns []string) (lager.Sink, error) {
	redacter, err := NewJSONRedacterWithURLCred(keyPatterns, valuePatterns)
	if err != nil {
		return nil, err
	}
	return &redactingWriterWithURLCredSink{
		writer:      writer,
		minLogLevel: minLogLevel,
		redacter:    redacter,
	}, nil
}

func (sink *redactingWriterWithURLCredSink) Log(log lager.LogFormat) {
	if log.LogLevel < sink.minLogLevel {
		return
	}
	line := sink.redacter.Redact(NewTimeLogFormat(log).ToJSON())

	sink.writeL.Lock()
	defer sink.writeL.Unlock()
	_, _ = sink.writer.Write(append(line, '\n'))
}
