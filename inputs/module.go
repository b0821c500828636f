// Package inputs loads intcode programs from files, stdin or HTTP(S) URLs.
package inputs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/nets"
	"github.com/reusee/intcode/vars"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
	Nets    nets.Module
}

// Source is where the program is read from: a file path, "-" for stdin, or
// an http(s) URL.
type Source string

var _ configs.Configurable = Source("")

func (Source) ConfigExpr() string {
	return "program"
}

var programFlag = cmds.Var[string]("-program")

func (Module) Source(
	loader configs.Loader,
) Source {
	return vars.FirstNonZero(
		Source(*programFlag),
		configs.First[Source](loader, "program"),
		"-",
	)
}

// Session is the cookie value sent with URL requests.
type Session string

var _ configs.Configurable = Session("")

func (Session) ConfigExpr() string {
	return "session"
}

var sessionFlag = cmds.Var[string]("-session")

func (Module) Session(
	loader configs.Loader,
) Session {
	return vars.FirstNonZero(
		Session(*sessionFlag),
		configs.First[Session](loader, "session"),
		Session(os.Getenv("AOC_SESSION")),
	)
}

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}
