package strwrap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridform/termfmt/strwrap"
)

func TestTruncateAtNewlineNoNewline(t *testing.T) {
	assert.Equal(t, "hello", strwrap.TruncateAtNewline("hello"))
}

func TestTruncateAtNewlineCutsAtFirstBreak(t *testing.T) {
	assert.Equal(t, "hello…", strwrap.TruncateAtNewline("hello\nworld"))
	assert.Equal(t, "hello…", strwrap.TruncateAtNewline("hello\rworld"))
}
