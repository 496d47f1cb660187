package capture

import (
	"bytes"

	"go.trai.ch/probe/internal/core/ports"
)

// logWriter forwards complete lines of command output to the debug log.
type logWriter struct {
	logger ports.Logger
	source string
	stream string
	buf    bytes.Buffer
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Incomplete line: keep it for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			return len(p), nil
		}
		w.emit(line[:len(line)-1])
	}
}

// Flush logs a trailing line that was not newline-terminated.
func (w *logWriter) Flush() {
	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *logWriter) emit(line string) {
	w.logger.Debug(line, "source", w.source, "stream", w.stream)
}
