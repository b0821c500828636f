package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/intcode/debugs"
	"github.com/reusee/intcode/icconfigs"
	"github.com/reusee/intcode/inputs"
)

type Module struct {
	dscope.Module
	Inputs  inputs.Module
	Debugs  debugs.Module
	Configs icconfigs.Module
}
