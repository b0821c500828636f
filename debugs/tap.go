package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/intcode/icvm"
	"github.com/reusee/intcode/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap opens a starlark REPL on stdin with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}

// Eval evaluates a starlark expression against globals.
func Eval(globals map[string]any, expr string) (starlark.Value, error) {
	thread := &starlark.Thread{
		Name: "eval",
	}
	return starlark.EvalOptions(fileOptions, thread, "<expr>", expr, toStringDict(globals))
}

func toStringDict(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}

// VMGlobals exposes the state of vm for inspection. Values are snapshots,
// except for the functions which read the live memory.
func VMGlobals(vm *icvm.VM) map[string]any {
	globals := map[string]any{
		"memory":  slices.Clone([]int(vm.Memory)),
		"ip":      vm.IP,
		"state":   vm.State,
		"steps":   vm.Steps,
		"pending": vm.Input.Len(),
		"outputs": vm.Output.Pushed(),
		"err":     vm.Err(),

		"peek": func(addr int) int {
			if addr < 0 || addr >= len(vm.Memory) {
				return 0
			}
			return vm.Memory[addr]
		},

		"dis": func(addr int, count int) []string {
			var lines []string
			for range count {
				line, next, err := disassemble(vm.Memory, addr)
				if err != nil {
					break
				}
				lines = append(lines, line)
				addr = next
			}
			return lines
		},
	}
	if last, ok := vm.Output.Last(); ok {
		globals["last"] = last
	}
	return globals
}
