package amps

import (
	"fmt"

	"github.com/reusee/intcode/icvm"
)

// Link connects the output endpoint of From to the input endpoint of To.
type Link struct {
	From int
	To   int
}

type Topology []Link

// Chain links amplifier i to i+1.
func Chain(n int) Topology {
	var ret Topology
	for i := 0; i+1 < n; i++ {
		ret = append(ret, Link{From: i, To: i + 1})
	}
	return ret
}

// Ring is a Chain closed by linking the last amplifier to the first.
func Ring(n int) Topology {
	if n <= 0 {
		return nil
	}
	return append(Chain(n), Link{From: n - 1, To: 0})
}

func TopologyFor(policy Policy, n int) Topology {
	if policy == PolicyFeedback {
		return Ring(n)
	}
	return Chain(n)
}

// Validate checks that every link is in range and that no endpoint is shared.
func (t Topology) Validate(n int) error {
	producers := make(map[int]bool)
	consumers := make(map[int]bool)
	for _, link := range t {
		if link.From < 0 || link.From >= n || link.To < 0 || link.To >= n {
			return fmt.Errorf("link %d -> %d out of range [0, %d)", link.From, link.To, n)
		}
		if producers[link.From] {
			return fmt.Errorf("amplifier %d has more than one consumer", link.From)
		}
		producers[link.From] = true
		if consumers[link.To] {
			return fmt.Errorf("amplifier %d has more than one producer", link.To)
		}
		consumers[link.To] = true
	}
	return nil
}

// Wire points the input endpoint of each consumer at the output endpoint of
// its producer.
func (t Topology) Wire(vms []*icvm.VM) error {
	if err := t.Validate(len(vms)); err != nil {
		return err
	}
	for _, link := range t {
		vms[link.To].Input = vms[link.From].Output
	}
	return nil
}

// Closed reports whether some link feeds amplifier 0.
func (t Topology) Closed() bool {
	for _, link := range t {
		if link.To == 0 {
			return true
		}
	}
	return false
}
