package amps

import "fmt"

// Policy selects how many passes a network runs. It is chosen by the caller,
// never inferred from phase setting values.
type Policy uint8

const (
	// PolicySinglePass runs every amplifier once, in chain order.
	PolicySinglePass Policy = iota
	// PolicyFeedback loops the terminal output back to the first amplifier
	// until the terminal amplifier halts.
	PolicyFeedback
)

func (p Policy) String() string {
	switch p {
	case PolicySinglePass:
		return "single-pass"
	case PolicyFeedback:
		return "feedback"
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// DefaultCandidates returns the phase setting candidates conventionally
// used with the policy.
func (p Policy) DefaultCandidates() []int {
	if p == PolicyFeedback {
		return []int{5, 6, 7, 8, 9}
	}
	return []int{0, 1, 2, 3, 4}
}

// Model selects the scheduling model.
type Model uint8

const (
	// ModelCooperative steps every VM from a single driver goroutine.
	ModelCooperative Model = iota
	// ModelThreaded runs every VM in its own goroutine connected by channels.
	ModelThreaded
)

func (m Model) String() string {
	switch m {
	case ModelCooperative:
		return "cooperative"
	case ModelThreaded:
		return "threaded"
	}
	return fmt.Sprintf("model(%d)", uint8(m))
}
