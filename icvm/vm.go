package icvm

import "fmt"

type State uint8

const (
	StateReady State = iota
	StateRunning
	StateAwaitingInput
	StateHalted
	StateFaulted
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateAwaitingInput:
		return "awaiting-input"
	case StateHalted:
		return "halted"
	case StateFaulted:
		return "faulted"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

type VM struct {
	Memory Memory
	IP     int
	State  State
	Input  *Queue
	Output *Queue
	Set    InstructionSet
	// Steps counts executed instructions.
	Steps int
	err   error
}

type Option func(*VM)

func WithInstructionSet(set InstructionSet) Option {
	return func(v *VM) {
		v.Set = set
	}
}

func WithInput(q *Queue) Option {
	return func(v *VM) {
		v.Input = q
	}
}

func WithOutput(q *Queue) Option {
	return func(v *VM) {
		v.Output = q
	}
}

// NewVM returns a VM running on its own copy of program.
func NewVM(program []int, options ...Option) *VM {
	v := &VM{
		Memory: NewMemory(program),
		Set:    FullSet,
	}
	for _, option := range options {
		option(v)
	}
	if v.Input == nil {
		v.Input = new(Queue)
	}
	if v.Output == nil {
		v.Output = new(Queue)
	}
	return v
}

func (v *VM) Halted() bool {
	return v.State == StateHalted
}

// Err returns the fault that terminated the VM, if any.
func (v *VM) Err() error {
	return v.err
}

func (v *VM) fault(err error) error {
	v.State = StateFaulted
	v.err = err
	return err
}

// Clone returns an independent copy. Queues are copied too, so a clone is
// never wired to the endpoints of the original.
func (v *VM) Clone() *VM {
	ret := *v
	ret.Memory = NewMemory(v.Memory)
	ret.Input = v.Input.clone()
	ret.Output = v.Output.clone()
	return &ret
}

// Resume runs until the VM halts or suspends on an empty input queue.
func (v *VM) Resume() error {
	for intr, err := range v.Run {
		if err != nil {
			return err
		}
		if intr == InterruptInput {
			break
		}
	}
	return nil
}

// Exec feeds inputs and runs to halt, returning everything written to the
// output queue. Suspending on input reports ErrInputStarved.
func (v *VM) Exec(inputs ...int) ([]int, error) {
	v.Input.Push(inputs...)
	for _, err := range v.Run {
		if err != nil {
			return v.Output.Drain(), err
		}
	}
	return v.Output.Drain(), nil
}
