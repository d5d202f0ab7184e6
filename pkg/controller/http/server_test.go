package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/prometheus/client_golang/prometheus"
	httpctrl "github.com/secmon-lab/controltower/pkg/controller/http"
	"github.com/secmon-lab/controltower/pkg/domain/types"
	"github.com/secmon-lab/controltower/pkg/repository/memory"
	"github.com/secmon-lab/controltower/pkg/service/executor"
	"github.com/secmon-lab/controltower/pkg/usecase"
)

var testNow = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newServer(t *testing.T, decider executor.Decider) (*httpctrl.Server, *memory.Memory) {
	t.Helper()

	clock := func() time.Time { return testNow }
	repo, err := memory.NewWithSeed(t.Context(), memory.DefaultSeed(types.DateOf(testNow)))
	gt.NoError(t, err).Required()

	reg := prometheus.NewRegistry()
	uc := usecase.New(repo,
		usecase.WithClock(clock),
		usecase.WithLatency(0),
		usecase.WithMetrics(usecase.NewMetrics(reg)),
		usecase.WithExecutor(executor.New(
			executor.WithDelay(0),
			executor.WithClock(clock),
			executor.WithDecider(decider),
		)),
	)

	return httpctrl.New(uc,
		httpctrl.WithBaseURL("https://tower.example.com"),
		httpctrl.WithMetrics(reg),
		httpctrl.WithClock(clock),
	), repo
}

func do(t *testing.T, srv http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(target, "/api/") && target != "/api/config" {
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env)).Required()
	}
	return rec, env
}

type riskView struct {
	ID                 string `json:"id"`
	RiskScore          int    `json:"riskScore"`
	MitigationStatus   string `json:"mitigationStatus"`
	ActiveMitigationID string `json:"activeMitigationId"`
	DisruptionStart    string `json:"disruptionStartDate"`
}

func TestServer_ListRisks(t *testing.T) {
	srv, _ := newServer(t, executor.AlwaysSucceed())

	testCases := []struct {
		name   string
		target string
		status int
		ids    []string
	}{
		{
			name:   "no filters",
			target: "/api/risks",
			status: http.StatusOK,
			ids:    []string{"RISK009", "RISK001", "RISK002", "RISK007", "RISK003", "RISK004", "RISK005", "RISK006", "RISK008", "RISK010"},
		},
		{
			name:   "critical only",
			target: "/api/risks?onlyCritical=true",
			status: http.StatusOK,
			ids:    []string{"RISK009", "RISK001", "RISK002"},
		},
		{
			name:   "severity and plant",
			target: "/api/risks?severity=HIGH&plantId=PLT001",
			status: http.StatusOK,
			ids:    []string{"RISK007", "RISK004"},
		},
		{
			name:   "ALL is the same as no filter",
			target: "/api/risks?severity=ALL&rootCause=ALL&supplierId=ALL&plantId=ALL",
			status: http.StatusOK,
			ids:    []string{"RISK009", "RISK001", "RISK002", "RISK007", "RISK003", "RISK004", "RISK005", "RISK006", "RISK008", "RISK010"},
		},
		{
			name:   "search",
			target: "/api/risks?search=connector",
			status: http.StatusOK,
			ids:    []string{"RISK006"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, env := do(t, srv, http.MethodGet, tc.target, "")
			gt.V(t, rec.Code).Equal(tc.status)
			gt.V(t, rec.Header().Get("Content-Type")).Equal("application/json")
			gt.B(t, env.Success).True()

			var risks []riskView
			gt.NoError(t, json.Unmarshal(env.Data, &risks)).Required()
			ids := make([]string, len(risks))
			for i, r := range risks {
				ids[i] = r.ID
			}
			gt.V(t, ids).Equal(tc.ids)
		})
	}
}

func TestServer_InvalidFilters(t *testing.T) {
	srv, _ := newServer(t, executor.AlwaysSucceed())

	for _, target := range []string{
		"/api/risks?onlyCritical=maybe",
		"/api/risks?timeHorizon=soon",
		"/api/risks?timeHorizon=9",
		"/api/risks?severity=EXTREME",
		"/api/timeline?rootCause=ALIENS",
	} {
		t.Run(target, func(t *testing.T) {
			rec, env := do(t, srv, http.MethodGet, target, "")
			gt.V(t, rec.Code).Equal(http.StatusBadRequest)
			gt.B(t, env.Success).False()
			gt.S(t, env.Message).NotEqual("")
		})
	}
}

func TestServer_GetRisk(t *testing.T) {
	srv, _ := newServer(t, executor.AlwaysSucceed())

	t.Run("found", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodGet, "/api/risks/RISK001", "")
		gt.V(t, rec.Code).Equal(http.StatusOK)

		var risk riskView
		gt.NoError(t, json.Unmarshal(env.Data, &risk)).Required()
		gt.V(t, risk.ID).Equal("RISK001")
		gt.V(t, risk.DisruptionStart).Equal("2026-10-21")
	})

	t.Run("not found", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodGet, "/api/risks/RISK404", "")
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
		gt.B(t, env.Success).False()
		gt.V(t, env.Message).Equal("Component risk not found")
		gt.V(t, string(env.Data)).Equal("null")
	})
}

func TestServer_PatchRisk(t *testing.T) {
	srv, repo := newServer(t, executor.AlwaysSucceed())

	t.Run("applies the patch", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodPatch, "/api/risks/RISK005", `{"riskScore": 61, "trend": "WORSENING"}`)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.B(t, env.Success).True()

		stored, err := repo.Risk().Get(t.Context(), "RISK005")
		gt.NoError(t, err).Required()
		gt.V(t, stored.RiskScore).Equal(61)
		gt.V(t, stored.Trend).Equal(types.TrendWorsening)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodPatch, "/api/risks/RISK005", `{"riskScore": "high"}`)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.B(t, env.Success).False()
	})

	t.Run("unknown field", func(t *testing.T) {
		rec, _ := do(t, srv, http.MethodPatch, "/api/risks/RISK005", `{"componentName": "renamed"}`)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("out of range", func(t *testing.T) {
		rec, _ := do(t, srv, http.MethodPatch, "/api/risks/RISK005", `{"riskScore": 101}`)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("unknown risk", func(t *testing.T) {
		rec, _ := do(t, srv, http.MethodPatch, "/api/risks/RISK404", `{"riskScore": 10}`)
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestServer_Timeline(t *testing.T) {
	srv, _ := newServer(t, executor.AlwaysSucceed())

	rec, env := do(t, srv, http.MethodGet, "/api/timeline?timeHorizon=1&selected=RISK004", "")
	gt.V(t, rec.Code).Equal(http.StatusOK)

	var tl struct {
		SelectedID string `json:"selectedId"`
		TotalDays  int    `json:"totalDays"`
		Entries    []struct {
			Risk     riskView `json:"risk"`
			Selected bool     `json:"selected"`
		} `json:"entries"`
	}
	gt.NoError(t, json.Unmarshal(env.Data, &tl)).Required()
	gt.V(t, tl.SelectedID).Equal("RISK004")
	gt.V(t, tl.TotalDays).Equal(8)
	gt.A(t, tl.Entries).Length(6)
	gt.V(t, tl.Entries[0].Risk.ID).Equal("RISK004")
	gt.B(t, tl.Entries[0].Selected).True()
}

func TestServer_Coach(t *testing.T) {
	srv, _ := newServer(t, executor.AlwaysSucceed())

	t.Run("found", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodGet, "/api/coach/RISK002", "")
		gt.V(t, rec.Code).Equal(http.StatusOK)

		var data struct {
			RootCauseNarrative string `json:"rootCauseNarrative"`
			MitigationOptions  []struct {
				ID string `json:"id"`
			} `json:"mitigationOptions"`
		}
		gt.NoError(t, json.Unmarshal(env.Data, &data)).Required()
		gt.S(t, data.RootCauseNarrative).Contains("Multilayer Ceramic Capacitor")
		gt.V(t, data.MitigationOptions[0].ID).Equal("MIT-RISK002-1")
	})

	t.Run("not found", func(t *testing.T) {
		rec, _ := do(t, srv, http.MethodGet, "/api/coach/RISK404", "")
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestServer_ListMitigations(t *testing.T) {
	srv, _ := newServer(t, executor.AlwaysSucceed())

	rec, env := do(t, srv, http.MethodGet, "/api/mitigations?componentRiskId=RISK404", "")
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.B(t, env.Success).True()
	gt.V(t, string(env.Data)).Equal("[]")
}

type resultView struct {
	Success         bool   `json:"success"`
	MitigationID    string `json:"mitigationId"`
	ComponentRiskID string `json:"componentRiskId"`
	ReferenceNumber string `json:"referenceNumber"`
}

func TestServer_Execute(t *testing.T) {
	t.Run("success records the mitigation", func(t *testing.T) {
		srv, repo := newServer(t, executor.AlwaysSucceed())

		rec, env := do(t, srv, http.MethodPost, "/api/mitigations/MIT-RISK002-1/execute", `{"componentRiskId": "RISK002"}`)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.B(t, env.Success).True()

		var result resultView
		gt.NoError(t, json.Unmarshal(env.Data, &result)).Required()
		gt.B(t, result.Success).True()
		gt.S(t, result.ReferenceNumber).Contains("MIT-")

		stored, err := repo.Risk().Get(t.Context(), "RISK002")
		gt.NoError(t, err).Required()
		gt.V(t, stored.MitigationStatus).Equal(types.MitigationStatusExecuting)
		gt.V(t, stored.ActiveMitigationID).Equal("MIT-RISK002-1")
	})

	t.Run("failure is a regular response", func(t *testing.T) {
		srv, repo := newServer(t, executor.AlwaysFail())

		rec, env := do(t, srv, http.MethodPost, "/api/mitigations/MIT-RISK002-1/execute", `{"componentRiskId": "RISK002"}`)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.B(t, env.Success).False()

		var result resultView
		gt.NoError(t, json.Unmarshal(env.Data, &result)).Required()
		gt.B(t, result.Success).False()

		stored, err := repo.Risk().Get(t.Context(), "RISK002")
		gt.NoError(t, err).Required()
		gt.V(t, stored.MitigationStatus).Equal(types.MitigationStatusNone)
	})

	t.Run("unknown risk", func(t *testing.T) {
		srv, _ := newServer(t, executor.AlwaysSucceed())

		rec, env := do(t, srv, http.MethodPost, "/api/mitigations/MIT-RISK999-1/execute", `{"componentRiskId": "RISK999"}`)
		gt.V(t, rec.Code).Equal(http.StatusNotFound)

		var result resultView
		gt.NoError(t, json.Unmarshal(env.Data, &result)).Required()
		gt.B(t, result.Success).False()
		gt.V(t, result.ComponentRiskID).Equal("RISK999")
	})

	t.Run("missing risk ID", func(t *testing.T) {
		srv, _ := newServer(t, executor.AlwaysSucceed())

		rec, env := do(t, srv, http.MethodPost, "/api/mitigations/MIT-RISK002-1/execute", `{}`)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, env.Message).Equal("componentRiskId is required")
	})
}

func TestServer_ReferenceData(t *testing.T) {
	srv, _ := newServer(t, executor.AlwaysSucceed())

	rec, env := do(t, srv, http.MethodGet, "/api/suppliers", "")
	gt.V(t, rec.Code).Equal(http.StatusOK)
	var suppliers []map[string]any
	gt.NoError(t, json.Unmarshal(env.Data, &suppliers)).Required()
	gt.A(t, suppliers).Length(6)

	rec, env = do(t, srv, http.MethodGet, "/api/plants", "")
	gt.V(t, rec.Code).Equal(http.StatusOK)
	var plants []map[string]any
	gt.NoError(t, json.Unmarshal(env.Data, &plants)).Required()
	gt.A(t, plants).Length(4)
}

func TestServer_ConfigHealthMetrics(t *testing.T) {
	srv, _ := newServer(t, executor.AlwaysSucceed())

	rec, _ := do(t, srv, http.MethodGet, "/api/config", "")
	gt.V(t, rec.Code).Equal(http.StatusOK)
	var cfg map[string]string
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg)).Required()
	gt.V(t, cfg["baseUrl"]).Equal("https://tower.example.com")

	rec, _ = do(t, srv, http.MethodGet, "/health", "")
	gt.V(t, rec.Code).Equal(http.StatusOK)

	do(t, srv, http.MethodGet, "/api/risks", "")
	rec, _ = do(t, srv, http.MethodGet, "/metrics", "")
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.S(t, rec.Body.String()).Contains(`controltower_requests_total{operation="list_risks",result="success"} 1`)
}
