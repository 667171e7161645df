package service

import (
	"context"
	"errors"
	"fmt"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/Gthulhu/priosim/domain"
	"github.com/Gthulhu/priosim/errs"
	"github.com/Gthulhu/priosim/pkg/logger"
	"github.com/Gthulhu/priosim/pkg/util"
	"github.com/Gthulhu/priosim/simulator"
)

// Fingerprint identifies a process set. Leaves keep the input order because the order of
// equal-arrival processes in a result follows it. The set size is hashed with the root.
func Fingerprint(processes []simulator.Process) string {
	leaves := make([]string, len(processes))
	for i, p := range processes {
		leaves[i] = util.HashFields(p.ID, p.ArrivalTime, p.BurstTime, p.Priority)
	}
	return util.HashStringSHA256Hex(fmt.Sprintf("%d|%s", len(processes), util.MerkleRoot(leaves)))
}

func (svc *Service) checkLimits(processes []simulator.Process) error {
	if limit := svc.limits.MaxProcesses; limit > 0 && len(processes) > limit {
		return errs.BadRequest(fmt.Sprintf("at most %d processes are accepted, got %d", limit, len(processes)), domain.ErrTooLarge)
	}
	if limit := svc.limits.MaxArrival; limit > 0 {
		for _, p := range processes {
			if p.ArrivalTime > limit {
				return errs.BadRequest(fmt.Sprintf("process %d: arrival time must be <= %d, got %d", p.ID, limit, p.ArrivalTime), domain.ErrTooLarge)
			}
		}
	}
	if limit := svc.limits.MaxBurst; limit > 0 {
		for _, p := range processes {
			if p.BurstTime > limit {
				return errs.BadRequest(fmt.Sprintf("process %d: burst time must be <= %d, got %d", p.ID, limit, p.BurstTime), domain.ErrTooLarge)
			}
		}
	}
	return nil
}

// simulate answers from the result cache when the same process set was seen before.
// Validation runs first so a rejected set never reaches the cache.
func (svc *Service) simulate(fingerprint string, processes []simulator.Process) (*simulator.Result, bool, error) {
	if err := simulator.Validate(processes); err != nil {
		return nil, false, err
	}
	if res, ok := svc.resultCache.Get(fingerprint); ok {
		return res, true, nil
	}
	res, err := simulator.Simulate(processes)
	if err != nil {
		return nil, false, err
	}
	if svc.resultCacheTTL > 0 {
		svc.resultCache.Set(fingerprint, res, cache.WithExpiration(svc.resultCacheTTL))
	} else {
		svc.resultCache.Set(fingerprint, res)
	}
	return res, false, nil
}

func (svc *Service) RunSimulation(ctx context.Context, name string, processes []simulator.Process) (*domain.SimulationRun, error) {
	if err := svc.checkLimits(processes); err != nil {
		svc.metricCollector.ObserveOutcome(outcomeRejected)
		return nil, err
	}

	fingerprint := Fingerprint(processes)
	res, cached, err := svc.simulate(fingerprint, processes)
	if err != nil {
		if errors.Is(err, simulator.ErrInvalidInput) {
			svc.metricCollector.ObserveOutcome(outcomeInvalid)
			return nil, errs.BadRequest("invalid process set", err)
		}
		svc.metricCollector.ObserveOutcome(outcomeError)
		return nil, err
	}

	run := &domain.SimulationRun{
		Fingerprint: fingerprint,
		Name:        name,
		Processes:   append([]simulator.Process(nil), processes...),
		Result:      res,
	}
	if err := svc.Repo.InsertRun(ctx, run); err != nil {
		svc.metricCollector.ObserveOutcome(outcomeError)
		return nil, fmt.Errorf("store simulation run: %w", err)
	}
	svc.metricCollector.ObserveResult(res, cached)

	logger.Logger(ctx).Info().
		Str("run_id", run.ID).
		Str("fingerprint", fingerprint).
		Int("processes", len(processes)).
		Int("total_time", res.TotalTime).
		Bool("cached", cached).
		Msg("simulation completed")
	return run, nil
}

func (svc *Service) GetRun(ctx context.Context, id string) (*domain.SimulationRun, error) {
	opt := &domain.QueryRunOptions{IDs: []string{id}, Limit: 1}
	if err := svc.Repo.QueryRuns(ctx, opt); err != nil {
		return nil, fmt.Errorf("query simulation run %s: %w", id, err)
	}
	if len(opt.Result) == 0 {
		return nil, errs.NotFound("simulation run not found", domain.ErrNotFound)
	}
	return opt.Result[0], nil
}

func (svc *Service) ListRuns(ctx context.Context, opt *domain.QueryRunOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	return svc.Repo.QueryRuns(ctx, opt)
}

func (svc *Service) DeleteRun(ctx context.Context, id string) error {
	err := svc.Repo.DeleteRun(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return errs.NotFound("simulation run not found", err)
	}
	return err
}

func (svc *Service) ListPresets(ctx context.Context) []string {
	return simulator.PresetNames()
}

func (svc *Service) GetPreset(ctx context.Context, name string) ([]simulator.Process, error) {
	procs, err := simulator.Preset(name)
	if err != nil {
		return nil, errs.NotFound("preset not found", err)
	}
	return procs, nil
}
