// Package patches restores gravity assist programs by patching their noun
// and verb operands.
package patches

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/intcode/icvm"
)

var ErrNotFound = errors.New("noun and verb not found")

// Restore runs a copy of program with address 1 set to noun and address 2 set
// to verb, and returns the value left at address 0.
func Restore(program []int, noun, verb int) (int, error) {
	vm := icvm.NewVM(program, icvm.WithInstructionSet(icvm.BasicSet))
	if err := vm.Memory.Store(1, noun); err != nil {
		return 0, err
	}
	if err := vm.Memory.Store(2, verb); err != nil {
		return 0, err
	}
	if _, err := vm.Exec(); err != nil {
		return 0, err
	}
	return vm.Memory.Load(0)
}

type Pair struct {
	Noun int
	Verb int
}

func (p Pair) Answer() int {
	return Answer(p.Noun, p.Verb)
}

func Answer(noun, verb int) int {
	return 100*noun + verb
}

// FindNounVerb tries nouns and verbs in [0, limit), noun major, and returns
// the first pair producing target. Pairs that make the program fault are skipped.
func FindNounVerb(ctx context.Context, program []int, target int, limit int) (Pair, error) {
	for noun := range limit {
		if err := ctx.Err(); err != nil {
			return Pair{}, err
		}
		for verb := range limit {
			result, err := Restore(program, noun, verb)
			if icvm.IsFault(err) {
				continue
			} else if err != nil {
				return Pair{}, fmt.Errorf("noun %d verb %d: %w", noun, verb, err)
			}
			if result == target {
				return Pair{
					Noun: noun,
					Verb: verb,
				}, nil
			}
		}
	}
	return Pair{}, fmt.Errorf("%w: target %d", ErrNotFound, target)
}
