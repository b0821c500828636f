package amps

import (
	"context"
	"errors"
	"iter"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/reusee/intcode/perms"
)

func TestBestSignal(t *testing.T) {
	cases := []struct {
		program []int
		policy  Policy
		signal  int
		phases  []int
	}{
		{chainProgram1, PolicySinglePass, 43210, []int{4, 3, 2, 1, 0}},
		{chainProgram2, PolicySinglePass, 54321, []int{0, 1, 2, 3, 4}},
		{chainProgram3, PolicySinglePass, 65210, []int{1, 0, 4, 3, 2}},
		{loopProgram1, PolicyFeedback, 139629729, []int{9, 8, 7, 6, 5}},
		{loopProgram2, PolicyFeedback, 18216, []int{9, 7, 8, 5, 6}},
	}
	for _, c := range cases {
		candidates := c.policy.DefaultCandidates()
		for _, run := range []Runner{c.policy.Runner(), c.policy.ThreadedRunner()} {
			result, err := BestSignal(context.Background(), c.program, perms.Permutations(candidates), run)
			if err != nil {
				t.Fatal(err)
			}
			if result.Signal != c.signal {
				t.Fatalf("got %d", result.Signal)
			}
			if !slices.Equal(result.Phases, c.phases) {
				t.Fatalf("got %v", result.Phases)
			}
			if result.Evaluated != 120 {
				t.Fatalf("got %d", result.Evaluated)
			}
		}
	}
}

func TestSearchParallel(t *testing.T) {
	for _, parallel := range []int{0, 1, 2, 8, 200} {
		result, err := Search(
			context.Background(),
			loopProgram1,
			perms.Permutations([]int{5, 6, 7, 8, 9}),
			PolicyFeedback.Runner(),
			parallel,
		)
		if err != nil {
			t.Fatal(err)
		}
		if result.Signal != 139629729 {
			t.Fatalf("got %d", result.Signal)
		}
		if result.Evaluated != 120 {
			t.Fatalf("got %d", result.Evaluated)
		}
	}
}

func TestSearchTie(t *testing.T) {
	// every candidate yields the same signal
	constant := func(ctx context.Context, program []int, phases []int) (int, error) {
		return 42, nil
	}
	result, err := Search(
		context.Background(),
		nil,
		perms.Permutations([]int{0, 1, 2}),
		constant,
		4,
	)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(result.Phases, []int{0, 1, 2}) {
		t.Fatalf("got %v", result.Phases)
	}
}

func TestSearchError(t *testing.T) {
	errFoo := errors.New("foo")
	var calls atomic.Int64
	run := func(ctx context.Context, program []int, phases []int) (int, error) {
		calls.Add(1)
		if phases[0] == 2 {
			return 0, errFoo
		}
		return phases[0], nil
	}
	_, err := BestSignal(context.Background(), nil, perms.Permutations([]int{0, 1, 2, 3}), run)
	if !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
	var candidateErr *CandidateError
	if !errors.As(err, &candidateErr) {
		t.Fatalf("got %v", err)
	}
	if candidateErr.Phases[0] != 2 {
		t.Fatalf("got %v", candidateErr.Phases)
	}
	// sequential search stops at the failing candidate
	if n := calls.Load(); n >= int64(perms.Count(4)) {
		t.Fatalf("got %d calls", n)
	}
}

func TestSearchFaultingProgram(t *testing.T) {
	_, err := BestSignal(
		context.Background(),
		[]int{3, 5, 3, 5, 98, 0},
		perms.Permutations([]int{0, 1}),
		PolicySinglePass.Runner(),
	)
	var ampErr *AmplifierError
	if !errors.As(err, &ampErr) {
		t.Fatalf("got %v", err)
	}
}

func TestSearchNoCandidates(t *testing.T) {
	var empty iter.Seq[[]int] = func(yield func([]int) bool) {}
	_, err := BestSignal(context.Background(), chainProgram1, empty, PolicySinglePass.Runner())
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("got %v", err)
	}
}

func TestSearchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Search(ctx, chainProgram1, perms.Permutations([]int{0, 1, 2, 3, 4}), PolicySinglePass.Runner(), 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
}

func TestSearchCandidatesNotShared(t *testing.T) {
	var seen [][]int
	run := func(ctx context.Context, program []int, phases []int) (int, error) {
		seen = append(seen, phases)
		phases[0] = -1
		return 0, nil
	}
	if _, err := BestSignal(context.Background(), nil, perms.Permutations([]int{0, 1, 2}), run); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 6 {
		t.Fatalf("got %v", seen)
	}
}

func BenchmarkSearch(b *testing.B) {
	ctx := context.Background()
	for b.Loop() {
		_, err := Search(ctx, loopProgram2, perms.Permutations([]int{5, 6, 7, 8, 9}), PolicyFeedback.Runner(), 4)
		if err != nil {
			b.Fatal(err)
		}
	}
}
