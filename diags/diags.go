// Package diags runs the thermal environment supervision terminal diagnostic.
package diags

import (
	"errors"
	"fmt"

	"github.com/reusee/intcode/icvm"
)

const (
	// AirConditionerUnit is the system id that runs only the basic tests.
	AirConditionerUnit = 1
	// ThermalRadiatorController is the system id that exercises jumps and comparisons.
	ThermalRadiatorController = 5
)

var ErrNoOutput = errors.New("no diagnostic output")

// TestFailure reports a non-zero test output.
type TestFailure struct {
	Index int
	Value int
}

func (t *TestFailure) Error() string {
	return fmt.Sprintf("test %d failed: %d", t.Index, t.Value)
}

// Diagnose runs program with systemID as the only input. Every output before
// the last one is a test result that must be zero; the last one is the
// diagnostic code.
func Diagnose(program []int, systemID int) (int, error) {
	outputs, err := icvm.NewVM(program).Exec(systemID)
	if err != nil {
		return 0, err
	}
	if len(outputs) == 0 {
		return 0, ErrNoOutput
	}
	last := len(outputs) - 1
	for i, value := range outputs[:last] {
		if value != 0 {
			return 0, &TestFailure{
				Index: i,
				Value: value,
			}
		}
	}
	return outputs[last], nil
}
