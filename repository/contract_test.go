package repository

import (
	"context"
	"testing"

	"github.com/Gthulhu/priosim/domain"
	"github.com/Gthulhu/priosim/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRun(t *testing.T, name, fingerprint string, createdTime int64, procs []simulator.Process) *domain.SimulationRun {
	t.Helper()
	res, err := simulator.Simulate(procs)
	require.NoError(t, err)
	return &domain.SimulationRun{
		Name:        name,
		Fingerprint: fingerprint,
		Processes:   procs,
		Result:      res,
		CreatedTime: createdTime,
	}
}

// checkRepositoryContract exercises behavior every domain.Repository must share.
// The repository must be empty on entry.
func checkRepositoryContract(t *testing.T, repo domain.Repository) {
	ctx := context.Background()
	gapped := []simulator.Process{
		{ID: 1, ArrivalTime: 0, BurstTime: 2, Priority: 1},
		{ID: 2, ArrivalTime: 5, BurstTime: 2, Priority: 1},
	}
	preset, err := simulator.Preset("sample")
	require.NoError(t, err)

	first := newTestRun(t, "gapped", "fp-a", 1000, gapped)
	second := newTestRun(t, "sample", "fp-b", 2000, preset)
	third := newTestRun(t, "gapped-again", "fp-a", 3000, gapped)
	for _, run := range []*domain.SimulationRun{first, second, third} {
		require.NoError(t, repo.InsertRun(ctx, run))
		require.NotEmpty(t, run.ID, "insert assigns an id")
	}

	all := &domain.QueryRunOptions{}
	require.NoError(t, repo.QueryRuns(ctx, all))
	require.Len(t, all.Result, 3)
	assert.Equal(t, []string{third.ID, second.ID, first.ID},
		[]string{all.Result[0].ID, all.Result[1].ID, all.Result[2].ID}, "newest first")

	byID := &domain.QueryRunOptions{IDs: []string{second.ID}}
	require.NoError(t, repo.QueryRuns(ctx, byID))
	require.Len(t, byID.Result, 1)
	got := byID.Result[0]
	assert.Equal(t, second.Processes, got.Processes)
	assert.Equal(t, second.Result, got.Result, "stored result comes back unchanged")
	assert.Equal(t, "sample", got.Name)

	byFingerprint := &domain.QueryRunOptions{Fingerprints: []string{"fp-a"}, Limit: 1}
	require.NoError(t, repo.QueryRuns(ctx, byFingerprint))
	require.Len(t, byFingerprint.Result, 1)
	assert.Equal(t, third.ID, byFingerprint.Result[0].ID)
	assert.True(t, byFingerprint.Result[0].Result.Segments[1].Occupant.IsIdle(), "idle segment survives storage")

	require.NoError(t, repo.DeleteRun(ctx, first.ID))
	assert.ErrorIs(t, repo.DeleteRun(ctx, first.ID), domain.ErrNotFound)

	after := &domain.QueryRunOptions{IDs: []string{first.ID}}
	require.NoError(t, repo.QueryRuns(ctx, after))
	assert.Empty(t, after.Result)

	assert.ErrorIs(t, repo.QueryRuns(ctx, nil), domain.ErrNilQueryInput)
	assert.ErrorIs(t, repo.InsertRun(ctx, nil), domain.ErrNilQueryInput)
}
