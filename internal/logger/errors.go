package logger

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrAppNameIsEmpty is returned if Log.AppName was not defined.
	ErrAppNameIsEmpty = errors.New("config Log.AppName can not be empty")

	// ErrServiceNameIsEmpty is returned if Log.ServiceName was not defined.
	ErrServiceNameIsEmpty = errors.New("config Log.ServiceName can not be empty")

	// ErrLogDirectory is returned when Log.File.Path can not be created.
	ErrLogDirectory = errors.New("can't create log directory")
)

// ErrorHandler reports events zerolog failed to write. It is installed by Init.
func ErrorHandler(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "go-wowonder-admin: could not write log event: %v\n", err)
}
