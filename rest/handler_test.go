package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/Gthulhu/priosim/app"
	"github.com/Gthulhu/priosim/config"
	"github.com/Gthulhu/priosim/domain"
	"github.com/Gthulhu/priosim/rest"
	"github.com/Gthulhu/priosim/simulator"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	Handler   *rest.Handler
	Ctx       context.Context
	Engine    *echo.Echo
	App       *fx.App
	PublicKey string
	Token     string
}

func (suite *HandlerTestSuite) SetupSuite() {
	suite.Ctx = context.Background()
	handlerModule, err := app.HandlerModule("sim_config.test", config.GetAbsPath("config"))
	suite.Require().NoError(err, "Failed to create handler module")
	opt := fx.Options(
		handlerModule,
		fx.Populate(&suite.Handler),
	)

	suite.App = fx.New(opt)
	err = suite.App.Start(suite.Ctx)
	suite.Require().NoError(err, "Failed to start Fx app")
	suite.Require().NotNil(suite.Handler, "Handler should not be nil")
	suite.Engine = app.NewEngine(suite.Handler)

	publicKey, err := os.ReadFile(config.GetAbsPath("config", "testdata", "public_key.pem"))
	suite.Require().NoError(err)
	suite.PublicKey = string(publicKey)

	rec := suite.Do(http.MethodPost, "/api/v1/auth/token", rest.TokenRequest{ClientID: "suite", PublicKey: suite.PublicKey}, "")
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var resp rest.SuccessResponse[rest.TokenResponse]
	suite.JSONDecode(rec, &resp)
	suite.Require().NotEmpty(resp.Data.Token)
	suite.Token = resp.Data.Token
}

func (suite *HandlerTestSuite) TearDownSuite() {
	suite.NoError(suite.App.Stop(suite.Ctx))
}

// Do sends body as JSON (or verbatim when it is a string) with an optional bearer token.
func (suite *HandlerTestSuite) Do(method, target string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		suite.Require().NoError(err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	suite.Engine.ServeHTTP(rec, req)
	return rec
}

func (suite *HandlerTestSuite) JSONDecode(r *httptest.ResponseRecorder, dst any) {
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(dst)
	suite.Require().NoError(err, "Failed to decode JSON response")
}

func (suite *HandlerTestSuite) ErrorMessage(r *httptest.ResponseRecorder) string {
	var resp rest.ErrorResponse
	suite.JSONDecode(r, &resp)
	suite.False(resp.Success)
	return resp.Error
}

func (suite *HandlerTestSuite) TestHealthCheck() {
	rec := suite.Do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, rec.Code, "Expected status OK")
	var resp map[string]any
	suite.JSONDecode(rec, &resp)
	suite.Equal("healthy", resp["status"].(string), "Expected status to be healthy")
}

func (suite *HandlerTestSuite) TestVersion() {
	rec := suite.Do(http.MethodGet, "/version", nil, "")
	suite.Equal(http.StatusOK, rec.Code)
	var resp rest.VersionResponse
	suite.JSONDecode(rec, &resp)
	suite.Equal(rest.Version, resp.Version)
	suite.True(resp.Auth)
}

func (suite *HandlerTestSuite) TestGenToken() {
	rec := suite.Do(http.MethodPost, "/api/v1/auth/token", "{not json", "")
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.Do(http.MethodPost, "/api/v1/auth/token", rest.TokenRequest{ClientID: "x"}, "")
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.Do(http.MethodPost, "/api/v1/auth/token", rest.TokenRequest{ClientID: "x", PublicKey: "garbage"}, "")
	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.Contains(suite.ErrorMessage(rec), "public key verification failed")
}

func (suite *HandlerTestSuite) TestAuthRequired() {
	rec := suite.Do(http.MethodGet, "/api/v1/presets", nil, "")
	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.Equal("Missing Authorization header", suite.ErrorMessage(rec))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/presets", nil)
	req.Header.Set("Authorization", "Token abc")
	rec = httptest.NewRecorder()
	suite.Engine.ServeHTTP(rec, req)
	suite.Equal(http.StatusUnauthorized, rec.Code)

	rec = suite.Do(http.MethodGet, "/api/v1/presets", nil, "not-a-jwt")
	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.Contains(suite.ErrorMessage(rec), "invalid or expired token")
}

func (suite *HandlerTestSuite) TestPresets() {
	rec := suite.Do(http.MethodGet, "/api/v1/presets", nil, suite.Token)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var list rest.SuccessResponse[rest.ListPresetsResponse]
	suite.JSONDecode(rec, &list)
	suite.True(list.Success)
	suite.Equal([]string{"default", "sample"}, list.Data.Presets)

	rec = suite.Do(http.MethodGet, "/api/v1/presets/sample", nil, suite.Token)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var preset rest.SuccessResponse[rest.PresetResponse]
	suite.JSONDecode(rec, &preset)
	suite.Equal("sample", preset.Data.Name)
	suite.Len(preset.Data.Processes, 5)

	rec = suite.Do(http.MethodGet, "/api/v1/presets/nope", nil, suite.Token)
	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Contains(suite.ErrorMessage(rec), "preset not found")
}

func (suite *HandlerTestSuite) TestSimulationLifecycle() {
	procs, err := simulator.Preset("default")
	suite.Require().NoError(err)

	rec := suite.Do(http.MethodPost, "/api/v1/simulations", rest.CreateSimulationRequest{Name: "lifecycle", Processes: procs}, suite.Token)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var created rest.SuccessResponse[domain.SimulationRun]
	suite.JSONDecode(rec, &created)
	run := created.Data
	suite.Require().NotNil(run)
	suite.NotEmpty(run.ID)
	suite.Equal("lifecycle", run.Name)

	suite.Equal(22, run.Result.TotalTime)
	suite.InDelta(5.0, run.Result.AverageWaitingTime, 1e-9)
	suite.InDelta(10.5, run.Result.AverageTurnaroundTime, 1e-9)
	wantSegments := []simulator.Segment{
		{Occupant: simulator.Running(1), Start: 0, End: 1},
		{Occupant: simulator.Running(2), Start: 1, End: 4},
		{Occupant: simulator.Running(1), Start: 4, End: 8},
		{Occupant: simulator.Running(4), Start: 8, End: 14},
		{Occupant: simulator.Running(3), Start: 14, End: 22},
	}
	suite.Equal(wantSegments, run.Result.Segments)

	rec = suite.Do(http.MethodGet, "/api/v1/simulations/"+run.ID, nil, suite.Token)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var fetched rest.SuccessResponse[domain.SimulationRun]
	suite.JSONDecode(rec, &fetched)
	suite.Equal(run.Fingerprint, fetched.Data.Fingerprint)
	suite.Equal(procs, fetched.Data.Processes)

	rec = suite.Do(http.MethodGet, "/api/v1/simulations?limit=5&fingerprint="+run.Fingerprint, nil, suite.Token)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var list rest.SuccessResponse[rest.ListSimulationsResponse]
	suite.JSONDecode(rec, &list)
	suite.NotEmpty(list.Data.Runs)
	suite.Equal(run.Fingerprint, list.Data.Runs[0].Fingerprint)

	rec = suite.Do(http.MethodDelete, "/api/v1/simulations/"+run.ID, nil, suite.Token)
	suite.Equal(http.StatusOK, rec.Code)

	rec = suite.Do(http.MethodGet, "/api/v1/simulations/"+run.ID, nil, suite.Token)
	suite.Equal(http.StatusNotFound, rec.Code)
	rec = suite.Do(http.MethodDelete, "/api/v1/simulations/"+run.ID, nil, suite.Token)
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *HandlerTestSuite) TestCreateSimulationRejectsBadInput() {
	rec := suite.Do(http.MethodPost, "/api/v1/simulations", `{"processes":[{"id":1,"burst":3}]}`, suite.Token)
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Equal("Invalid request body", suite.ErrorMessage(rec))

	dup := rest.CreateSimulationRequest{Processes: []simulator.Process{
		{ID: 3, BurstTime: 1},
		{ID: 3, ArrivalTime: 2, BurstTime: 1},
	}}
	rec = suite.Do(http.MethodPost, "/api/v1/simulations", dup, suite.Token)
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(suite.ErrorMessage(rec), "process id 3")

	rec = suite.Do(http.MethodPost, "/api/v1/simulations", rest.CreateSimulationRequest{
		Processes: []simulator.Process{{ID: 7, BurstTime: 0}},
	}, suite.Token)
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(suite.ErrorMessage(rec), "process 7: burst time must be > 0")

	rec = suite.Do(http.MethodPost, "/api/v1/simulations", rest.CreateSimulationRequest{}, suite.Token)
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(suite.ErrorMessage(rec), "no processes")

	tooMany := make([]simulator.Process, 51)
	for i := range tooMany {
		tooMany[i] = simulator.Process{ID: i + 1, BurstTime: 1}
	}
	rec = suite.Do(http.MethodPost, "/api/v1/simulations", rest.CreateSimulationRequest{Processes: tooMany}, suite.Token)
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(suite.ErrorMessage(rec), "at most 50 processes")
}

func (suite *HandlerTestSuite) TestListSimulationsLimit() {
	for _, limit := range []string{"0", "-1", "abc", "501"} {
		rec := suite.Do(http.MethodGet, "/api/v1/simulations?limit="+limit, nil, suite.Token)
		suite.Equal(http.StatusBadRequest, rec.Code, "limit=%s", limit)
	}
}

func (suite *HandlerTestSuite) TestMetricsEndpoint() {
	rec := suite.Do(http.MethodPost, "/api/v1/simulations", rest.CreateSimulationRequest{
		Processes: []simulator.Process{{ID: 1, BurstTime: 2}},
	}, suite.Token)
	suite.Require().Equal(http.StatusOK, rec.Code)

	rec = suite.Do(http.MethodGet, "/metrics", nil, "")
	suite.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	suite.Contains(body, "priosim_simulation_runs_total{")
	suite.Contains(body, `outcome="ok"`)
}

func (suite *HandlerTestSuite) TestRequestIDHeader() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/presets", nil)
	req.Header.Set("Authorization", "Bearer "+suite.Token)
	req.Header.Set("X-Request-ID", "trace-1")
	rec := httptest.NewRecorder()
	suite.Engine.ServeHTTP(rec, req)
	suite.Equal("trace-1", rec.Header().Get("X-Request-ID"))
}
