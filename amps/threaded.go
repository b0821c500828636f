package amps

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/reusee/intcode/icvm"
	"golang.org/x/sync/errgroup"
)

// RunThreaded runs each amplifier in its own goroutine. Amplifiers are
// connected by unbuffered channels along a chain; the driver owns the link
// from the last amplifier back to the first and records every terminal signal.
// A fault in any amplifier cancels the others. A network where every
// amplifier waits for input that will never come fails with ErrInputStarved.
func RunThreaded(ctx context.Context, program []int, phases []int, policy Policy) (int, error) {
	if err := validatePhases(phases); err != nil {
		return 0, err
	}
	n := len(phases)

	// pipes[i] feeds amplifier i, out carries the last amplifier's outputs
	pipes := make([]chan int, n)
	for i := range pipes {
		pipes[i] = make(chan int)
	}
	out := make(chan int)
	exited := make([]chan struct{}, n)
	for i := range exited {
		exited[i] = make(chan struct{})
	}
	done := make(chan struct{})
	var finished atomic.Bool
	mon := newMonitor(n)

	group, ctx := errgroup.WithContext(ctx)

	for i, phase := range phases {
		vm := icvm.NewVM(program)
		vm.Input.Push(phase)
		recv := pipes[i]
		send := out
		if i+1 < n {
			send = pipes[i+1]
		}

		group.Go(func() (err error) {
			defer close(exited[i])
			defer mon.exit(i)
			// a faulted amplifier leaves send open so that the fault, not
			// the starvation it causes downstream, cancels the group
			defer func() {
				if err == nil {
					close(send)
				}
			}()

			for intr, err := range vm.Run {
				if err != nil {
					return &AmplifierError{
						Index: i,
						Err:   err,
					}
				}

				switch intr {

				case icvm.InterruptInput:
					mon.await(i)
					select {
					case v, ok := <-recv:
						mon.received(i, ok)
						if !ok {
							if finished.Load() {
								return nil
							}
							return &AmplifierError{
								Index: i,
								Err:   icvm.ErrInputStarved,
							}
						}
						vm.Input.Push(v)
					case <-done:
						return nil
					case <-ctx.Done():
						return ctx.Err()
					}

				case icvm.InterruptOutput:
					v, _ := vm.Output.Pop()
					mon.sending()
					select {
					case send <- v:
					case <-done:
						return nil
					case <-ctx.Done():
						return ctx.Err()
					}

				}
			}
			return nil
		})
	}

	signal, ok, err := drive(ctx, policy, mon, pipes[0], exited[0], out)
	finished.Store(true)
	close(done)
	if werr := group.Wait(); werr != nil {
		return 0, werr
	}
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &AmplifierError{
			Index: n - 1,
			Err:   icvm.ErrInputStarved,
		}
	}
	return signal, nil
}

// drive feeds the initial signal, forwards terminal outputs to the first
// amplifier under PolicyFeedback, and returns the latest terminal signal.
func drive(
	ctx context.Context,
	policy Policy,
	mon *monitor,
	first chan<- int,
	firstExited <-chan struct{},
	out <-chan int,
) (signal int, ok bool, err error) {
	pending := []int{0}
	for {
		var sendCh chan<- int
		var next int
		if len(pending) > 0 {
			sendCh = first
			next = pending[0]
		}

		select {

		case v, more := <-out:
			mon.received(-1, more)
			if !more {
				return
			}
			signal, ok = v, true
			if policy != PolicyFeedback {
				return
			}
			pending = append(pending, v)

		case sendCh <- next:
			// the receiver may have counted the signal already, the sum
			// is right before the next check
			mon.sending()
			pending = pending[1:]

		case <-firstExited:
			// nothing consumes forwarded signals anymore
			first = nil
			firstExited = nil
			pending = nil

		case <-mon.wake:
			if i, starved := mon.starved(len(pending)); starved {
				err = &AmplifierError{
					Index: i,
					Err:   fmt.Errorf("%w: every amplifier waits for input", icvm.ErrInputStarved),
				}
				return
			}

		case <-ctx.Done():
			err = ctx.Err()
			return

		}
	}
}
