package amps

import (
	"context"
	"iter"
	"slices"
	"sync"

	"github.com/reusee/intcode/syncs"
	"golang.org/x/sync/errgroup"
)

// Runner runs one network over program with the given phase settings.
// Implementations must not modify program.
type Runner func(ctx context.Context, program []int, phases []int) (int, error)

// Runner returns the cooperative runner for the policy.
func (p Policy) Runner() Runner {
	return func(ctx context.Context, program []int, phases []int) (int, error) {
		return Run(ctx, program, phases, p)
	}
}

// ThreadedRunner returns the goroutine-per-amplifier runner for the policy.
func (p Policy) ThreadedRunner() Runner {
	return func(ctx context.Context, program []int, phases []int) (int, error) {
		return RunThreaded(ctx, program, phases, p)
	}
}

type Result struct {
	Signal    int
	Phases    []int
	Evaluated int
}

// BestSignal evaluates each permutation in order and returns the maximum signal.
func BestSignal(ctx context.Context, program []int, permutations iter.Seq[[]int], run Runner) (Result, error) {
	return Search(ctx, program, permutations, run, 1)
}

// Search is BestSignal with up to parallel candidates evaluated at once.
// The first failing candidate aborts the search. On equal signals the
// candidate earlier in the sequence wins.
func Search(
	parent context.Context,
	program []int,
	permutations iter.Seq[[]int],
	run Runner,
	parallel int,
) (Result, error) {
	sem := syncs.NewSemaphore(parallel)
	group, ctx := errgroup.WithContext(parent)

	var (
		mu        sync.Mutex
		best      Result
		bestIndex = -1
		evaluated int
	)

	index := 0
	for phases := range permutations {
		if err := sem.AcquireContext(ctx); err != nil {
			break
		}
		i := index
		index++
		phases := slices.Clone(phases)

		group.Go(func() error {
			defer sem.Release()
			signal, err := run(ctx, program, phases)
			if err != nil {
				return &CandidateError{
					Phases: phases,
					Err:    err,
				}
			}
			mu.Lock()
			defer mu.Unlock()
			evaluated++
			if bestIndex < 0 ||
				signal > best.Signal ||
				signal == best.Signal && i < bestIndex {
				best.Signal = signal
				best.Phases = phases
				bestIndex = i
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Result{}, err
	}
	if err := parent.Err(); err != nil {
		return Result{}, err
	}
	if bestIndex < 0 {
		return Result{}, ErrNoCandidates
	}
	best.Evaluated = evaluated
	return best, nil
}
