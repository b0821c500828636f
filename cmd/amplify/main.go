package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/amps"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/icconfigs"
	"github.com/reusee/intcode/inputs"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/modes"
	"golang.org/x/term"
)

var (
	runPhases []int
	listKeys  bool
)

func init() {
	cmds.Define("run", cmds.Func(func(phases []int) {
		runPhases = phases
	}).Desc("run one network with phase settings like 9,8,7,6,5, print the signal").Args("phases"))
	cmds.Define("keys", cmds.Func(func() {
		listKeys = true
	}).Desc("list config file keys with the value set by each file"))
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	if listKeys {
		scope.Call(func(
			loader configs.Loader,
		) {
			keys, err := icconfigs.Keys(scope, loader)
			ce(err)
			for _, key := range keys {
				fmt.Printf("%s\t%v\t%v\n", key.Path, key.Type, key.Values)
			}
		})
		return
	}

	scope.Call(func(
		logger logs.Logger,
		source inputs.Source,
		load inputs.LoadProgram,
		runNetwork amps.RunNetwork,
		findBest amps.FindBest,
	) {
		if source == "-" && term.IsTerminal(int(os.Stdin.Fd())) {
			ce(errors.New("no program: use -program <path or url>, or pipe one to stdin"))
		}
		program, err := load(ctx, source)
		ce(err)

		if len(runPhases) > 0 {
			signal, err := runNetwork(ctx, program, runPhases)
			ce(err)
			fmt.Println(signal)
			return
		}

		result, err := findBest(ctx, program)
		ce(err)
		fmt.Println(result.Signal)
		logger.Info("best phases",
			"phases", result.Phases,
		)
	})
}
