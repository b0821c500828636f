package amps

import (
	"context"
	"runtime"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/perms"
	"github.com/reusee/intcode/vars"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

var (
	feedbackFlag = cmds.Switch("-feedback")
	threadedFlag = cmds.Switch("-threaded")
	parallelFlag = cmds.Var[int]("-parallel")
	phasesFlag   = cmds.Var[[]int]("-phases")
)

var _ configs.Configurable = Policy(0)

func (Policy) ConfigExpr() string {
	return "feedback"
}

func (Module) Policy(
	loader configs.Loader,
) Policy {
	if vars.FirstNonZero(
		*feedbackFlag,
		configs.First[bool](loader, "feedback"),
	) {
		return PolicyFeedback
	}
	return PolicySinglePass
}

var _ configs.Configurable = Model(0)

func (Model) ConfigExpr() string {
	return "threaded"
}

func (Module) Model(
	loader configs.Loader,
) Model {
	if vars.FirstNonZero(
		*threadedFlag,
		configs.First[bool](loader, "threaded"),
	) {
		return ModelThreaded
	}
	return ModelCooperative
}

// Parallelism bounds the number of networks evaluated at once by FindBest.
type Parallelism int

var _ configs.Configurable = Parallelism(0)

func (Parallelism) ConfigExpr() string {
	return "parallel"
}

func (Module) Parallelism(
	loader configs.Loader,
) Parallelism {
	return Parallelism(vars.FirstNonZero(
		*parallelFlag,
		configs.First[int](loader, "parallel"),
		runtime.NumCPU(),
	))
}

// Candidates is the phase setting set permuted by FindBest.
type Candidates []int

func (Candidates) ConfigExpr() string {
	return "phases"
}

func (Module) Candidates(
	loader configs.Loader,
	policy Policy,
) Candidates {
	if len(*phasesFlag) > 0 {
		return *phasesFlag
	}
	if phases := configs.First[[]int](loader, "phases"); len(phases) > 0 {
		return phases
	}
	return policy.DefaultCandidates()
}

type RunNetwork func(ctx context.Context, program []int, phases []int) (int, error)

func (Module) RunNetwork(
	policy Policy,
	model Model,
	logger logs.Logger,
	newSpan logs.NewSpan,
) RunNetwork {
	return func(ctx context.Context, program []int, phases []int) (int, error) {
		ctx, _ = newSpan(ctx, "", "network")

		if model == ModelThreaded {
			signal, err := RunThreaded(ctx, program, phases, policy)
			if err != nil {
				return 0, logs.WrapSpan(ctx, err)
			}
			logger.DebugContext(ctx, "network done",
				"model", model,
				"policy", policy,
				"phases", phases,
				"signal", signal,
			)
			return signal, nil
		}

		network, err := NewNetwork(program, phases, policy)
		if err != nil {
			return 0, logs.WrapSpan(ctx, err)
		}
		signal, err := network.Run(ctx)
		if err != nil {
			return 0, logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "network done",
			"model", model,
			"policy", policy,
			"phases", phases,
			"signal", signal,
			"passes", network.Passes,
			"steps", network.Steps(),
		)
		return signal, nil
	}
}

type FindBest func(ctx context.Context, program []int) (Result, error)

func (Module) FindBest(
	runNetwork RunNetwork,
	candidates Candidates,
	parallel Parallelism,
	logger logs.Logger,
	newSpan logs.NewSpan,
) FindBest {
	return func(ctx context.Context, program []int) (Result, error) {
		ctx, _ = newSpan(ctx, "", "search")
		logger.InfoContext(ctx, "search phase settings",
			"candidates", []int(candidates),
			"permutations", perms.Count(len(candidates)),
			"parallel", int(parallel),
		)
		result, err := Search(
			ctx,
			program,
			perms.Permutations(candidates),
			Runner(runNetwork),
			int(parallel),
		)
		if err != nil {
			return result, logs.WrapSpan(ctx, err)
		}
		logger.InfoContext(ctx, "best signal",
			"signal", result.Signal,
			"phases", result.Phases,
			"evaluated", result.Evaluated,
		)
		return result, nil
	}
}
