package logging

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileWriter returns a size-rotated log file at path for use with Setup.
// The caller closes it when done.
func FileWriter(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    8, // MB
		MaxBackups: 3,
	}
}
