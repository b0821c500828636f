package cmds

import (
	"fmt"
	"reflect"
)

// Command is either a function taking its arguments from the command line,
// or a set of sub commands, or both.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	// Params names the arguments of Func in usage
	Params []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func (c *Command) Args(names ...string) *Command {
	if !c.Func.IsValid() {
		panic(fmt.Errorf("args without function"))
	}
	if len(names) != c.Func.Type().NumIn() {
		panic(fmt.Errorf("function takes %d arguments, got %d names", c.Func.Type().NumIn(), len(names)))
	}
	c.Params = names
	return c
}

func (c *Command) paramName(i int) string {
	if i < len(c.Params) {
		return c.Params[i]
	}
	return c.Func.Type().In(i).String()
}

// Func wraps fn, which returns nothing or an error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	fnType := fnValue.Type()
	switch {
	case fnType.NumOut() > 1:
		panic(fmt.Errorf("must return 0 or 1 value"))
	case fnType.NumOut() == 1 && fnType.Out(0) != errorType:
		panic(fmt.Errorf("must return error"))
	case fnType.IsVariadic():
		panic(fmt.Errorf("variadic function not supported"))
	}
	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
