package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/debugs"
	"github.com/reusee/intcode/diags"
	"github.com/reusee/intcode/icvm"
	"github.com/reusee/intcode/inputs"
	"github.com/reusee/intcode/modes"
	"github.com/reusee/intcode/patches"
	"github.com/reusee/intcode/vars"
	"golang.org/x/term"
)

var (
	inputFlag = cmds.Collect[int]("-input")
	evalFlag  = cmds.Collect[string]("-eval")
	tapFlag   = cmds.Switch("-tap")
	basicFlag = cmds.Switch("-basic")
	limitFlag = cmds.Var[int]("-limit")
)

type action func(ctx context.Context, program []int) error

var do action = run

func init() {
	cmds.Define("run", cmds.Func(func() {
		do = run
	}).Desc("run the program with -input values, print outputs"))

	cmds.Define("diagnose", cmds.Func(func(systemID int) {
		do = func(ctx context.Context, program []int) error {
			code, err := diags.Diagnose(program, systemID)
			if err != nil {
				return err
			}
			fmt.Println(code)
			return nil
		}
	}).Desc("run the diagnostic for a system id, print the diagnostic code").Args("system-id"))

	cmds.Define("restore", cmds.Func(func(noun int, verb int) {
		do = func(ctx context.Context, program []int) error {
			result, err := patches.Restore(program, noun, verb)
			if err != nil {
				return err
			}
			fmt.Println(result)
			return nil
		}
	}).Desc("patch noun and verb, print address 0 after halt").Args("noun", "verb"))

	cmds.Define("nounverb", cmds.Func(func(target int) {
		do = func(ctx context.Context, program []int) error {
			pair, err := patches.FindNounVerb(ctx, program, target, vars.FirstNonZero(*limitFlag, 100))
			if err != nil {
				return err
			}
			fmt.Println(pair.Answer())
			return nil
		}
	}).Desc("search noun and verb producing target, print 100*noun+verb").Args("target"))

	cmds.Define("format", cmds.Func(func() {
		do = func(ctx context.Context, program []int) error {
			fmt.Println(icvm.FormatProgram(program))
			return nil
		}
	}).Desc("print the program normalized"))
}

var tap debugs.Tap

func run(ctx context.Context, program []int) error {
	var options []icvm.Option
	if *basicFlag {
		options = append(options, icvm.WithInstructionSet(icvm.BasicSet))
	}
	vm := icvm.NewVM(program, options...)
	outputs, runErr := vm.Exec(*inputFlag...)
	for _, output := range outputs {
		fmt.Println(output)
	}

	globals := debugs.VMGlobals(vm)
	for _, expr := range *evalFlag {
		value, err := debugs.Eval(globals, expr)
		if err != nil {
			return err
		}
		fmt.Printf("%s = %v\n", expr, value)
	}
	if *tapFlag {
		tap(ctx, "vm", globals)
	}

	return runErr
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		source inputs.Source,
		load inputs.LoadProgram,
		t debugs.Tap,
	) {
		tap = t

		if source == "-" && term.IsTerminal(int(os.Stdin.Fd())) {
			ce(errors.New("no program: use -program <path or url>, or pipe one to stdin"))
		}
		program, err := load(ctx, source)
		ce(err)

		ce(do(ctx, program))
	})
}
