package logs

import (
	"io"
	"os"
	"testing"
)

// Writer receives text logs. Tests log through the running test, so output
// of passing tests stays quiet unless -v is given.
type Writer io.Writer

func (Module) Writer(
	t *testing.T,
) Writer {
	if t != nil {
		return t.Output()
	}
	return os.Stderr
}
