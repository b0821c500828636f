package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.printCommands(p.output, p.commands, 0)
}

func (p *Executor) printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command pointer, print each command once
	names := make(map[*Command][]string)
	var order []*Command
	for name, command := range commands {
		if _, ok := names[command]; !ok {
			order = append(order, command)
		}
		names[command] = append(names[command], name)
	}
	for _, command := range order {
		slices.Sort(names[command])
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	indent := strings.Repeat("  ", depth)
	for _, command := range order {
		if command == nil {
			continue
		}
		fmt.Fprintf(w, "%s%s", indent, strings.Join(names[command], ", "))
		if command.Func.IsValid() {
			for i := range command.Func.Type().NumIn() {
				fmt.Fprintf(w, " <%s>", command.paramName(i))
			}
		}
		if command.Description != "" {
			fmt.Fprintf(w, "\t%s", command.Description)
		}
		fmt.Fprintln(w)
		if len(command.Subs) > 0 {
			p.printCommands(w, command.Subs, depth+1)
		}
	}
}
