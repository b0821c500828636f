package icvm

type Mode int

const (
	ModePosition  Mode = 0
	ModeImmediate Mode = 1
)

func (m Mode) Valid() bool {
	return m == ModePosition || m == ModeImmediate
}

func (m Mode) String() string {
	switch m {
	case ModePosition:
		return "position"
	case ModeImmediate:
		return "immediate"
	}
	return "invalid"
}

const maxParams = 3

// Instruction is a decoded instruction word.
type Instruction struct {
	Op    OpCode
	Modes [maxParams]Mode
}

var modeDivisors = [maxParams]int{100, 1000, 10000}

// Decode splits an instruction word into its opcode and parameter modes.
// It does not validate either; the VM rejects unknown values.
func Decode(word int) Instruction {
	inst := Instruction{
		Op: OpCode(word % 100),
	}
	for k, div := range modeDivisors {
		inst.Modes[k] = Mode(word / div % 10)
	}
	return inst
}

func (i Instruction) Mode(k int) Mode {
	if k < 0 || k >= maxParams {
		return ModePosition
	}
	return i.Modes[k]
}

// Valid reports whether the opcode is in the set and every mode of a used
// parameter is known.
func (i Instruction) Valid(set InstructionSet) bool {
	if !set.Has(i.Op) {
		return false
	}
	for k := range i.Op.NumParams() {
		if !i.Modes[k].Valid() {
			return false
		}
	}
	return true
}
