package icvm

import "testing"

func TestDecode(t *testing.T) {
	cases := []struct {
		word  int
		op    OpCode
		modes [3]Mode
	}{
		{1, OpAdd, [3]Mode{0, 0, 0}},
		{1002, OpMul, [3]Mode{0, 1, 0}},
		{1105, OpJumpTrue, [3]Mode{1, 1, 0}},
		{11108, OpEquals, [3]Mode{1, 1, 1}},
		{104, OpOutput, [3]Mode{1, 0, 0}},
		{99, OpHalt, [3]Mode{0, 0, 0}},
		{20001, OpAdd, [3]Mode{0, 0, 2}},
	}
	for _, c := range cases {
		inst := Decode(c.word)
		if inst.Op != c.op {
			t.Fatalf("%d: got op %v", c.word, inst.Op)
		}
		if inst.Modes != c.modes {
			t.Fatalf("%d: got modes %v", c.word, inst.Modes)
		}
		if again := Decode(c.word); again != inst {
			t.Fatalf("%d: not deterministic: %v %v", c.word, inst, again)
		}
	}
}

func TestInstructionValid(t *testing.T) {
	if !Decode(1002).Valid(FullSet) {
		t.Fatal()
	}
	if !Decode(1002).Valid(BasicSet) {
		t.Fatal()
	}
	if Decode(5).Valid(BasicSet) {
		t.Fatal("jump must not be accepted by the basic set")
	}
	if !Decode(5).Valid(FullSet) {
		t.Fatal()
	}
	// mode 2 on a used parameter
	if Decode(201).Valid(FullSet) {
		t.Fatal()
	}
	// mode digits beyond the parameter count are not inspected
	if !Decode(2104).Valid(FullSet) {
		t.Fatal()
	}
	if Decode(42).Valid(FullSet) {
		t.Fatal()
	}
	if Decode(-1).Valid(FullSet) {
		t.Fatal()
	}
	if !Decode(99).Valid(BasicSet) {
		t.Fatal()
	}
}

func TestOpCodeStride(t *testing.T) {
	for op, stride := range map[OpCode]int{
		OpAdd:       4,
		OpMul:       4,
		OpInput:     2,
		OpOutput:    2,
		OpJumpTrue:  3,
		OpJumpFalse: 3,
		OpLessThan:  4,
		OpEquals:    4,
	} {
		if op.Stride() != stride {
			t.Fatalf("%v: got %d", op, op.Stride())
		}
	}
	if OpCode(42).String() != "op(42)" {
		t.Fatalf("got %v", OpCode(42))
	}
}
