package log

import (
	stdlog "log"
	"strings"
)

// RedirectStdLog routes the standard library's default log output through l
// at info level, dropping the std logger's own prefixes and timestamps.
func RedirectStdLog(l Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(stdLogWriter{l: l})
}

type stdLogWriter struct {
	l Logger
}

func (w stdLogWriter) Write(p []byte) (int, error) {
	w.l.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
