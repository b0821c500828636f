package icvm

import "fmt"

func (v *VM) Run(yield func(*Interrupt, error) bool) {
	switch v.State {
	case StateHalted:
		return
	case StateFaulted:
		yield(nil, v.err)
		return
	}
	v.State = StateRunning

	for {
		word, err := v.Memory.Load(v.IP)
		if err != nil {
			yield(nil, v.fault(err))
			return
		}
		inst := Decode(word)
		if !inst.Valid(v.Set) {
			yield(nil, v.fault(&InvalidInstructionError{
				Address: v.IP,
				Word:    word,
			}))
			return
		}

		switch inst.Op {

		case OpAdd, OpMul, OpLessThan, OpEquals:
			a, err := v.param(inst, 0)
			if err != nil {
				yield(nil, v.fault(err))
				return
			}
			b, err := v.param(inst, 1)
			if err != nil {
				yield(nil, v.fault(err))
				return
			}
			target, err := v.target(2)
			if err != nil {
				yield(nil, v.fault(err))
				return
			}
			var result int
			switch inst.Op {
			case OpAdd:
				result = a + b
			case OpMul:
				result = a * b
			case OpLessThan:
				if a < b {
					result = 1
				}
			case OpEquals:
				if a == b {
					result = 1
				}
			}
			if err := v.Memory.Store(target, result); err != nil {
				yield(nil, v.fault(err))
				return
			}
			v.IP += inst.Op.Stride()

		case OpInput:
			target, err := v.target(0)
			if err != nil {
				yield(nil, v.fault(err))
				return
			}
			value, ok := v.Input.Pop()
			if !ok {
				v.State = StateAwaitingInput
				if !yield(InterruptInput, nil) {
					return
				}
				value, ok = v.Input.Pop()
				if !ok {
					yield(nil, fmt.Errorf("input at %d: %w", v.IP, ErrInputStarved))
					return
				}
				v.State = StateRunning
			}
			if err := v.Memory.Store(target, value); err != nil {
				yield(nil, v.fault(err))
				return
			}
			v.IP += inst.Op.Stride()

		case OpOutput:
			a, err := v.param(inst, 0)
			if err != nil {
				yield(nil, v.fault(err))
				return
			}
			v.Output.Push(a)
			v.IP += inst.Op.Stride()
			v.Steps++
			if !yield(InterruptOutput, nil) {
				return
			}
			continue

		case OpJumpTrue, OpJumpFalse:
			a, err := v.param(inst, 0)
			if err != nil {
				yield(nil, v.fault(err))
				return
			}
			b, err := v.param(inst, 1)
			if err != nil {
				yield(nil, v.fault(err))
				return
			}
			if (a != 0) == (inst.Op == OpJumpTrue) {
				v.IP = b
			} else {
				v.IP += inst.Op.Stride()
			}

		case OpHalt:
			v.State = StateHalted
			v.Steps++
			return

		}

		v.Steps++
	}
}

// param fetches the value of parameter k according to its mode.
func (v *VM) param(inst Instruction, k int) (int, error) {
	operand, err := v.Memory.Load(v.IP + 1 + k)
	if err != nil {
		return 0, err
	}
	if inst.Modes[k] == ModeImmediate {
		return operand, nil
	}
	return v.Memory.Load(operand)
}

// target fetches parameter k as a write address. The declared mode is ignored.
func (v *VM) target(k int) (int, error) {
	return v.Memory.Load(v.IP + 1 + k)
}
