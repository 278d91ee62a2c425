package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

const logTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// TimeLogFormat adds a human readable log_time next to lager's epoch timestamp.
type TimeLogFormat struct {
	lager.LogFormat
	LogTime string `json:"log_time"`
}

func NewTimeLogFormat(log lager.LogFormat) TimeLogFormat {
	return TimeLogFormat{
		LogTime:   parseEpoch(log.Timestamp).UTC().Format(logTimeLayout),
		LogFormat: log,
	}
}

func parseEpoch(timestamp string) time.Time {
	floatTime, err := strconv.ParseFloat(timestamp, 64)
	if err != nil {
		return time.Unix(0, 0)
	}
	sec := int64(floatTime)
	millis := int64(math.Round((floatTime - float64(sec)) * 1e3))
	return time.Unix(sec, millis*int64(time.Millisecond))
}

func (tlf TimeLogFormat) ToJSON() []byte {
	content, err := json.Marshal(tlf)
	var unSupportedErr *json.UnsupportedTypeError
	var marshalErr *json.MarshalerError
	if err != nil {
		if errors.As(err, &unSupportedErr) || errors.As(err, &marshalErr) {
			tlf.Data = map[string]interface{}{"lager serialisation error": err.Error(), "data_dump": fmt.Sprintf("%#v", tlf.Data)}
			content, err = json.Marshal(tlf)
		}
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%s", err.Error())
			content = []byte("{}")
		}
	}
	return content
}
