package repository

import (
	"context"
	"slices"
	"sort"

	"github.com/Gthulhu/priosim/domain"
	"github.com/Gthulhu/priosim/pkg/util"
)

// MemoryRepository keeps runs for the lifetime of the process. Stored and returned runs are
// copies, so callers cannot change what is kept.
type MemoryRepository struct {
	runs *util.GenericMap[string, *domain.SimulationRun]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		runs: util.NewGenericMap[string, *domain.SimulationRun](),
	}
}

func cloneRun(run *domain.SimulationRun) *domain.SimulationRun {
	out := *run
	out.Processes = slices.Clone(run.Processes)
	out.Result = run.Result.Clone()
	return &out
}

func (m *MemoryRepository) InsertRun(ctx context.Context, run *domain.SimulationRun) error {
	if run == nil {
		return domain.ErrNilQueryInput
	}
	prepareRun(run)
	m.runs.Store(run.ID, cloneRun(run))
	return nil
}

func (m *MemoryRepository) QueryRuns(ctx context.Context, opt *domain.QueryRunOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	var matched []*domain.SimulationRun
	m.runs.Range(func(id string, run *domain.SimulationRun) bool {
		if len(opt.IDs) > 0 && !slices.Contains(opt.IDs, id) {
			return true
		}
		if len(opt.Fingerprints) > 0 && !slices.Contains(opt.Fingerprints, run.Fingerprint) {
			return true
		}
		matched = append(matched, run)
		return true
	})

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedTime != matched[j].CreatedTime {
			return matched[i].CreatedTime > matched[j].CreatedTime
		}
		return matched[i].ID > matched[j].ID
	})
	if opt.Limit > 0 && int64(len(matched)) > opt.Limit {
		matched = matched[:opt.Limit]
	}
	for _, run := range matched {
		opt.Result = append(opt.Result, cloneRun(run))
	}
	return nil
}

func (m *MemoryRepository) DeleteRun(ctx context.Context, id string) error {
	if _, ok := m.runs.LoadAndDelete(id); !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Len reports how many runs are stored.
func (m *MemoryRepository) Len() int {
	return m.runs.Len()
}
