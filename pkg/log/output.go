package log

import (
	"io"
	"os"
	"sync"
)

// ConsoleOutput writes formatted entries to standard error (errors and
// above) or standard out.
type ConsoleOutput struct {
	mu sync.Mutex
}

// NewConsoleOutput creates a console output.
func NewConsoleOutput() *ConsoleOutput { return &ConsoleOutput{} }

// Write implements Output.
func (o *ConsoleOutput) Write(entry *Entry, formatted []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	w := os.Stdout
	if entry.Level >= ErrorLevel {
		w = os.Stderr
	}
	_, err := w.Write(formatted)
	return err
}

// Close implements Output. Console streams are not closed.
func (o *ConsoleOutput) Close() error { return nil }

// WriterOutput writes formatted entries to an arbitrary io.Writer. Useful
// for tests and for capturing logs in-process.
type WriterOutput struct {
	mu sync.Mutex
	W  io.Writer
}

// NewWriterOutput creates an output over w.
func NewWriterOutput(w io.Writer) *WriterOutput { return &WriterOutput{W: w} }

// Write implements Output.
func (o *WriterOutput) Write(_ *Entry, formatted []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := o.W.Write(formatted)
	return err
}

// Close implements Output.
func (o *WriterOutput) Close() error {
	if c, ok := o.W.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
