// Package planner dispatches a plan request to the by-amount or by-count
// computation.
package planner

import (
	"github.com/iwvelando/loan-revolver/pkg/constants"
	"github.com/iwvelando/loan-revolver/pkg/revolver"
	"go.uber.org/zap"
)

// Planner runs plan requests.
type Planner struct {
	logger    *zap.Logger
	generator *revolver.Generator
}

// New constructs a Planner.
func New(logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{logger: logger, generator: revolver.NewGenerator(logger)}
}

// Plan computes the repayment plan for req. By-amount plans that would run
// past the period limit are rejected by the generator as invalid input.
func (p *Planner) Plan(req revolver.Request) (*revolver.Plan, error) {
	const op = "planner.Plan"

	var (
		plan *revolver.Plan
		err  error
	)
	switch req.Mode {
	case revolver.ModeByAmount:
		plan, err = p.generator.Generate(req.TotalDebt, req.AnnualRate, req.Value)
	case revolver.ModeByCount:
		if req.Value > constants.MaxPeriodCount {
			return nil, revolver.InvalidInput(op, "period count %d exceeds %d", req.Value, constants.MaxPeriodCount)
		}
		plan, err = p.generator.ByTimes(req.TotalDebt, req.AnnualRate, int(req.Value))
	default:
		return nil, revolver.UnsupportedMode(op, string(req.Mode))
	}
	if err != nil {
		p.logger.Info("plan request rejected",
			zap.String("op", op),
			zap.String("mode", string(req.Mode)),
			zap.String("kind", revolver.KindOf(err).String()),
			zap.Error(err),
		)
		return nil, err
	}

	p.logger.Info("plan computed",
		zap.String("op", op),
		zap.String("mode", string(req.Mode)),
		zap.Int64("totalDebt", req.TotalDebt),
		zap.Float64("annualRate", req.AnnualRate),
		zap.Int64("value", req.Value),
		zap.Int("periods", plan.PeriodCount),
	)
	return plan, nil
}
