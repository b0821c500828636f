package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForProduction is used by the binaries. Its mode defaults to
// ModeProduction and may be switched by ModeEnv.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return modeFromEnv()
}

// ModuleForTest provides the running test to every package that logs or
// reads config.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
