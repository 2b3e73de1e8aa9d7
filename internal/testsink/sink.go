// Package testsink provides a recording pipeline.LineSink for tests,
// modeled on the teacher's own call-recording mock terminal: every
// write is captured in order instead of going anywhere real.
package testsink

// Sink records every line written to it, in order, and reports a fixed
// terminal width.
type Sink struct {
	Lines []string
	Width int
}

// New returns a Sink that reports width display cells.
func New(width int) *Sink {
	return &Sink{Width: width}
}

// WriteLine implements pipeline.LineSink.
func (s *Sink) WriteLine(line string) error {
	s.Lines = append(s.Lines, line)
	return nil
}

// DisplayCells implements pipeline.LineSink.
func (s *Sink) DisplayCells() int {
	return s.Width
}

// Reset clears all recorded lines, keeping the configured width.
func (s *Sink) Reset() {
	s.Lines = nil
}
