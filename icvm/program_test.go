package icvm

import (
	"slices"
	"strings"
	"testing"
)

func TestParseProgram(t *testing.T) {
	program, err := ParseProgram(strings.NewReader("3,0, 4,0,\n-99\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(program, []int{3, 0, 4, 0, -99}) {
		t.Fatalf("got %v", program)
	}
	if str := FormatProgram(program); str != "3,0,4,0,-99" {
		t.Fatalf("got %s", str)
	}

	_, err = ParseProgram(strings.NewReader("1,x,3"))
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.Contains(err.Error(), "field 1") {
		t.Fatalf("got %v", err)
	}

	program, err = ParseProgram(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(program) != 0 {
		t.Fatalf("got %v", program)
	}
}
