package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/intcode/amps"
	"github.com/reusee/intcode/icconfigs"
	"github.com/reusee/intcode/inputs"
)

type Module struct {
	dscope.Module
	Amps    amps.Module
	Inputs  inputs.Module
	Configs icconfigs.Module
}
