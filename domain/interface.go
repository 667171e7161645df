package domain

import (
	"context"

	"github.com/Gthulhu/priosim/simulator"
)

type QueryRunOptions struct {
	IDs          []string
	Fingerprints []string
	// Limit caps the number of results; zero means no cap. Results are newest first.
	Limit  int64
	Result []*SimulationRun
}

type Repository interface {
	InsertRun(ctx context.Context, run *SimulationRun) error
	QueryRuns(ctx context.Context, opt *QueryRunOptions) error
	DeleteRun(ctx context.Context, id string) error
}

type Service interface {
	RunSimulation(ctx context.Context, name string, processes []simulator.Process) (*SimulationRun, error)
	GetRun(ctx context.Context, id string) (*SimulationRun, error)
	ListRuns(ctx context.Context, opt *QueryRunOptions) error
	DeleteRun(ctx context.Context, id string) error

	ListPresets(ctx context.Context) []string
	GetPreset(ctx context.Context, name string) ([]simulator.Process, error)

	AuthEnabled() bool
	VerifyAndGenerateToken(ctx context.Context, clientID string, publicKey string) (token string, expiredAt int64, err error)
	VerifyJWTToken(ctx context.Context, tokenString string) (Claims, error)
}
