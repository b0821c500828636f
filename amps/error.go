package amps

import (
	"errors"
	"fmt"
)

var (
	ErrNoAmplifiers   = errors.New("no amplifiers")
	ErrNoCandidates   = errors.New("no phase candidates")
	ErrDuplicatePhase = errors.New("duplicated phase setting")
)

type AmplifierError struct {
	Index int
	Err   error
}

func (e *AmplifierError) Error() string {
	return fmt.Sprintf("amplifier %d: %v", e.Index, e.Err)
}

func (e *AmplifierError) Unwrap() error {
	return e.Err
}

type CandidateError struct {
	Phases []int
	Err    error
}

func (e *CandidateError) Error() string {
	return fmt.Sprintf("phases %v: %v", e.Phases, e.Err)
}

func (e *CandidateError) Unwrap() error {
	return e.Err
}
