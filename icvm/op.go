package icvm

import "fmt"

type OpCode int

const (
	OpAdd       OpCode = 1
	OpMul       OpCode = 2
	OpInput     OpCode = 3
	OpOutput    OpCode = 4
	OpJumpTrue  OpCode = 5
	OpJumpFalse OpCode = 6
	OpLessThan  OpCode = 7
	OpEquals    OpCode = 8
	OpHalt      OpCode = 99
)

var opNames = map[OpCode]string{
	OpAdd:       "add",
	OpMul:       "mul",
	OpInput:     "in",
	OpOutput:    "out",
	OpJumpTrue:  "jt",
	OpJumpFalse: "jf",
	OpLessThan:  "lt",
	OpEquals:    "eq",
	OpHalt:      "halt",
}

func (o OpCode) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// NumParams returns the number of parameter words following the instruction word.
func (o OpCode) NumParams() int {
	switch o {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		return 3
	case OpJumpTrue, OpJumpFalse:
		return 2
	case OpInput, OpOutput:
		return 1
	}
	return 0
}

// Stride is the default IP advance, taken when the instruction does not jump.
func (o OpCode) Stride() int {
	return o.NumParams() + 1
}

// InstructionSet is a bitmask of accepted opcodes.
type InstructionSet uint64

// bit 63 stands for OpHalt, which does not fit the mask directly.
const haltBit InstructionSet = 1 << 63

const (
	BasicSet InstructionSet = 1<<OpAdd | 1<<OpMul | haltBit
	FullSet  InstructionSet = BasicSet |
		1<<OpInput | 1<<OpOutput |
		1<<OpJumpTrue | 1<<OpJumpFalse |
		1<<OpLessThan | 1<<OpEquals
)

func opBit(op OpCode) InstructionSet {
	switch {
	case op == OpHalt:
		return haltBit
	case op > 0 && op < 63:
		return 1 << op
	}
	return 0
}

func (s InstructionSet) Has(op OpCode) bool {
	bit := opBit(op)
	return bit != 0 && s&bit != 0
}
