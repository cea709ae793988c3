package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerbosityFiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetVerbosity(int(Info))

	SetVerbosity(int(Info))
	Infof("priced %d scenarios", 2)
	Debugf("hidden at info")

	out := buf.String()
	assert.Contains(t, out, "priced 2 scenarios")
	assert.NotContains(t, out, "hidden at info")

	buf.Reset()
	SetVerbosity(int(Trace))
	Tracef("d1=%.2f", 0.35)
	assert.Contains(t, buf.String(), "d1=0.35")
}

func TestSetVerbosityClamps(t *testing.T) {
	defer SetVerbosity(int(Info))

	SetVerbosity(-4)
	assert.Equal(t, Error, Verbosity())

	SetVerbosity(2)
	assert.Equal(t, Debug, Verbosity())

	SetVerbosity(99)
	assert.Equal(t, Trace, Verbosity())
}
