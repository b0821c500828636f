package debugs

import (
	"fmt"
	"strings"

	"github.com/reusee/intcode/icvm"
)

// disassemble formats the instruction at addr, like "add [9] #10 -> [3]",
// and returns the address of the next instruction. Words that do not decode
// to a known instruction are formatted as data.
func disassemble(memory icvm.Memory, addr int) (string, int, error) {
	word, err := memory.Load(addr)
	if err != nil {
		return "", 0, err
	}
	inst := icvm.Decode(word)
	if !inst.Valid(icvm.FullSet) {
		return fmt.Sprintf("data %d", word), addr + 1, nil
	}

	var b strings.Builder
	b.WriteString(inst.Op.String())
	n := inst.Op.NumParams()
	for k := range n {
		param, err := memory.Load(addr + 1 + k)
		if err != nil {
			return "", 0, err
		}
		writes := k == n-1 && writesLast(inst.Op)
		if writes && n > 1 {
			b.WriteString(" ->")
		}
		if inst.Mode(k) == icvm.ModeImmediate && !writes {
			fmt.Fprintf(&b, " #%d", param)
		} else {
			fmt.Fprintf(&b, " [%d]", param)
		}
	}
	return b.String(), addr + inst.Op.Stride(), nil
}

func writesLast(op icvm.OpCode) bool {
	switch op {
	case icvm.OpAdd, icvm.OpMul, icvm.OpLessThan, icvm.OpEquals, icvm.OpInput:
		return true
	}
	return false
}
