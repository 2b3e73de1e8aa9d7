package main

import (
	"bufio"
	"io"
)

// stdoutSink is the pipeline.LineSink the render command writes
// through: every WriteLine call is one terminal row, flushed
// immediately so output interleaves correctly with any progress
// messages printed to stderr.
type stdoutSink struct {
	w     *bufio.Writer
	width int
}

func newStdoutSink(w io.Writer, width int) *stdoutSink {
	return &stdoutSink{w: bufio.NewWriter(w), width: width}
}

func (s *stdoutSink) WriteLine(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return err
	}
	return s.w.Flush()
}

func (s *stdoutSink) DisplayCells() int { return s.width }
