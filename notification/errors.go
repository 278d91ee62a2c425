package notification

import "errors"

var ErrQueueFull = errors.New("notification queue is full")
