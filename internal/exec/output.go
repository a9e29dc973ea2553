package exec

import (
	"bytes"
	"io"
)

// PrefixWriter adds a prefix to each line of output. Incomplete lines are
// held until a newline arrives or Flush is called.
type PrefixWriter struct {
	prefix string
	writer io.Writer
	buffer []byte
}

// NewPrefixWriter creates a writer that prefixes each line
func NewPrefixWriter(writer io.Writer, prefix string) *PrefixWriter {
	return &PrefixWriter{
		prefix: prefix,
		writer: writer,
		buffer: make([]byte, 0),
	}
}

// Write adds prefix to each complete line
func (p *PrefixWriter) Write(data []byte) (n int, err error) {
	n = len(data)
	p.buffer = append(p.buffer, data...)

	for {
		i := bytes.IndexByte(p.buffer, '\n')
		if i < 0 {
			break
		}
		line := p.buffer[:i+1]
		if _, err := p.writer.Write(append([]byte(p.prefix), line...)); err != nil {
			return 0, err
		}
		p.buffer = p.buffer[i+1:]
	}

	return n, nil
}

// Flush writes any remaining buffered content as a final line
func (p *PrefixWriter) Flush() error {
	if len(p.buffer) == 0 {
		return nil
	}
	line := append([]byte(p.prefix), p.buffer...)
	p.buffer = p.buffer[:0]
	_, err := p.writer.Write(append(line, '\n'))
	return err
}
