package amps

import (
	"context"
	"fmt"

	"github.com/reusee/intcode/icvm"
	"github.com/samber/lo"
)

// Network is a set of amplifiers driven cooperatively from one goroutine.
// Each amplifier owns its memory; endpoints are shared only along Topology links.
type Network struct {
	Amplifiers []*icvm.VM
	Topology   Topology
	Policy     Policy
	// Passes counts completed rounds through all amplifiers.
	Passes int
	// Signals holds the latest output of each amplifier.
	Signals []int
}

func validatePhases(phases []int) error {
	if len(phases) == 0 {
		return ErrNoAmplifiers
	}
	if dups := lo.FindDuplicates(phases); len(dups) > 0 {
		return fmt.Errorf("%w: %v", ErrDuplicatePhase, dups)
	}
	return nil
}

func NewNetwork(program []int, phases []int, policy Policy, options ...icvm.Option) (*Network, error) {
	return NewNetworkWithTopology(program, phases, TopologyFor(policy, len(phases)), policy, options...)
}

func NewNetworkWithTopology(
	program []int,
	phases []int,
	topology Topology,
	policy Policy,
	options ...icvm.Option,
) (*Network, error) {
	if err := validatePhases(phases); err != nil {
		return nil, err
	}

	vms := make([]*icvm.VM, len(phases))
	for i := range phases {
		vms[i] = icvm.NewVM(program, options...)
	}
	if err := topology.Wire(vms); err != nil {
		return nil, err
	}

	// the phase setting is the first value each amplifier consumes
	for i, phase := range phases {
		vms[i].Input.Push(phase)
	}

	return &Network{
		Amplifiers: vms,
		Topology:   topology,
		Policy:     policy,
		Signals:    make([]int, len(vms)),
	}, nil
}

// Run feeds the initial signal 0 to the first amplifier and drives passes until
// the policy is satisfied. It returns the latest signal of the last amplifier.
func (n *Network) Run(ctx context.Context) (int, error) {
	last := len(n.Amplifiers) - 1
	n.Amplifiers[0].Input.Push(0)

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		for i := range n.Amplifiers {
			if err := n.step(i); err != nil {
				return 0, fmt.Errorf("pass %d: %w", n.Passes, &AmplifierError{
					Index: i,
					Err:   err,
				})
			}
		}
		n.Passes++

		// an open topology has nothing to feed back
		if n.Policy != PolicyFeedback || !n.Topology.Closed() || n.Amplifiers[last].Halted() {
			return n.Signals[last], nil
		}
	}
}

// step resumes amplifier i until it halts or waits for input. It must emit
// at least one signal, otherwise its consumer would starve.
func (n *Network) step(i int) error {
	vm := n.Amplifiers[i]
	outputs := 0
	for intr, err := range vm.Run {
		if err != nil {
			return err
		}
		if intr == icvm.InterruptInput {
			break
		}
		if intr == icvm.InterruptOutput {
			outputs++
			n.Signals[i], _ = vm.Output.Last()
		}
	}
	if outputs == 0 {
		return fmt.Errorf("%w: no signal emitted (%v)", icvm.ErrInputStarved, vm.State)
	}
	return nil
}

// Steps sums the instructions executed by all amplifiers.
func (n *Network) Steps() int {
	ret := 0
	for _, vm := range n.Amplifiers {
		ret += vm.Steps
	}
	return ret
}

// Run is the cooperative run_network: it builds a network over its own copies
// of program and returns the final signal.
func Run(ctx context.Context, program []int, phases []int, policy Policy) (int, error) {
	network, err := NewNetwork(program, phases, policy)
	if err != nil {
		return 0, err
	}
	return network.Run(ctx)
}
