package amps

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reusee/intcode/icvm"
)

func TestRunThreaded(t *testing.T) {
	for _, c := range networkCases {
		t.Run(c.name, func(t *testing.T) {
			signal, err := RunThreaded(context.Background(), c.program, c.phases, c.policy)
			if err != nil {
				t.Fatal(err)
			}
			if signal != c.signal {
				t.Fatalf("got %d", signal)
			}
		})
	}
}

func TestRunThreadedMatchesCooperative(t *testing.T) {
	for _, c := range networkCases {
		threaded, err := RunThreaded(context.Background(), c.program, c.phases, c.policy)
		if err != nil {
			t.Fatal(err)
		}
		cooperative, err := Run(context.Background(), c.program, c.phases, c.policy)
		if err != nil {
			t.Fatal(err)
		}
		if threaded != cooperative {
			t.Fatalf("%s: %d != %d", c.name, threaded, cooperative)
		}
	}
}

func TestRunThreadedFault(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	program := []int{3, 5, 3, 5, 98, 0}
	_, err := RunThreaded(ctx, program, []int{5, 6, 7}, PolicyFeedback)
	var invalid *icvm.InvalidInstructionError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v", err)
	}
	var ampErr *AmplifierError
	if !errors.As(err, &ampErr) || ampErr.Index != 0 {
		t.Fatalf("got %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("deadlocked")
	}
}

func TestRunThreadedNoOutput(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	program := []int{3, 5, 3, 5, 99, 0}
	_, err := RunThreaded(ctx, program, []int{0, 1}, PolicySinglePass)
	if !errors.Is(err, icvm.ErrInputStarved) {
		t.Fatalf("got %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("deadlocked")
	}
}

func TestRunThreadedStarved(t *testing.T) {
	cases := []struct {
		name    string
		program []int
		phases  []int
		policy  Policy
	}{
		// reads phase, signal, then a third value nobody sends
		{"single pass", []int{3, 9, 3, 9, 3, 9, 4, 9, 99, 0}, []int{0, 1}, PolicySinglePass},
		// reads two signals per pass
		{"feedback", []int{3, 12, 3, 12, 3, 12, 4, 12, 1105, 1, 2, 99, 0}, []int{5, 6}, PolicyFeedback},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := RunThreaded(context.Background(), c.program, c.phases, c.policy)
			if !errors.Is(err, icvm.ErrInputStarved) {
				t.Fatalf("got %v", err)
			}
			var ampErr *AmplifierError
			if !errors.As(err, &ampErr) || ampErr.Index != 0 {
				t.Fatalf("got %v", err)
			}

			// the cooperative model reports the same amplifier
			_, err = Run(context.Background(), c.program, c.phases, c.policy)
			if !errors.Is(err, icvm.ErrInputStarved) {
				t.Fatalf("got %v", err)
			}
			if !errors.As(err, &ampErr) || ampErr.Index != 0 {
				t.Fatalf("got %v", err)
			}
		})
	}
}

func TestMonitor(t *testing.T) {
	m := newMonitor(2)
	m.await(0)
	if _, starved := m.starved(0); starved {
		t.Fatal("amplifier 1 still running")
	}
	m.sending()
	m.await(1)
	if _, starved := m.starved(0); starved {
		t.Fatal("a signal is in flight")
	}
	m.received(1, true)
	m.await(1)
	if _, starved := m.starved(1); starved {
		t.Fatal("driver holds a signal")
	}
	i, starved := m.starved(0)
	if !starved || i != 0 {
		t.Fatalf("got %d %v", i, starved)
	}
	m.exit(0)
	i, starved = m.starved(0)
	if !starved || i != 1 {
		t.Fatalf("got %d %v", i, starved)
	}
	m.exit(1)
	if _, starved := m.starved(0); starved {
		t.Fatal("no live amplifier")
	}
}

func TestRunThreadedCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// waits for input forever unless canceled
	program := []int{3, 7, 3, 7, 3, 7, 99, 0}
	_, err := RunThreaded(ctx, program, []int{0, 1}, PolicySinglePass)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
}

func BenchmarkRunThreaded(b *testing.B) {
	ctx := context.Background()
	for b.Loop() {
		if _, err := RunThreaded(ctx, loopProgram1, []int{9, 8, 7, 6, 5}, PolicyFeedback); err != nil {
			b.Fatal(err)
		}
	}
}
