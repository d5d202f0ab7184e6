package slack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/domain/types"
	"github.com/secmon-lab/controltower/pkg/service/slack"
)

func TestNew(t *testing.T) {
	t.Run("returns error when token is empty", func(t *testing.T) {
		_, err := slack.New("")
		gt.Value(t, err).NotNil()
	})

	t.Run("creates service when token is provided", func(t *testing.T) {
		svc, err := slack.New("test-token")
		gt.NoError(t, err).Required()
		gt.Value(t, svc).NotNil()
	})
}

type postedMessage struct {
	channel string
	text    string
	blocks  string
}

func newSlackServer(t *testing.T, ok bool) (*httptest.Server, *[]postedMessage) {
	t.Helper()

	var (
		mu     sync.Mutex
		posted []postedMessage
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, r.ParseForm()).Required()
		gt.B(t, strings.HasSuffix(r.URL.Path, "chat.postMessage")).True()

		mu.Lock()
		posted = append(posted, postedMessage{
			channel: r.FormValue("channel"),
			text:    r.FormValue("text"),
			blocks:  r.FormValue("blocks"),
		})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if ok {
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "channel": "C123", "ts": "1700000000.000100"})
		} else {
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "channel_not_found"})
		}
	}))
	t.Cleanup(srv.Close)

	return srv, &posted
}

func sampleRisk() *model.ComponentRisk {
	return &model.ComponentRisk{
		ID:               "RISK001",
		ComponentID:      "IC-78201-A",
		ComponentName:    "Power Management IC",
		SupplierName:     "Acme Electronics",
		PlantName:        "Austin Assembly",
		Severity:         types.SeverityCritical,
		RootCauseSummary: "Labor dispute at main production facility.",
	}
}

func sampleResult() *model.MitigationExecutionResult {
	completion := time.Date(2026, time.October, 24, 9, 30, 0, 0, time.UTC)
	return &model.MitigationExecutionResult{
		Success:                 true,
		MitigationID:            "MIT-RISK001-1",
		ComponentRiskID:         "RISK001",
		ReferenceNumber:         "MIT-0123456789AB",
		EstimatedCompletionDate: &completion,
	}
}

func TestPostMessage(t *testing.T) {
	srv, posted := newSlackServer(t, true)

	svc, err := slack.New("xoxb-test", slack.WithAPIURL(srv.URL+"/"))
	gt.NoError(t, err).Required()

	notifier := slack.NewNotifier(svc, "C123", "https://tower.example.com/")
	option := &model.MitigationOption{ID: "MIT-RISK001-1", Title: "Switch to Alternate Supplier"}

	err = notifier.NotifyMitigation(context.Background(), sampleRisk(), option, sampleResult())
	gt.NoError(t, err).Required()

	gt.A(t, *posted).Length(1)
	msg := (*posted)[0]
	gt.V(t, msg.channel).Equal("C123")
	gt.S(t, msg.text).Contains("Power Management IC (RISK001): Switch to Alternate Supplier")
	gt.S(t, msg.blocks).Contains("MIT-0123456789AB")
	gt.S(t, msg.blocks).Contains("Oct 24, 2026")
	gt.S(t, msg.blocks).Contains("https://tower.example.com/?selected=RISK001")
}

func TestPostMessage_Error(t *testing.T) {
	srv, _ := newSlackServer(t, false)

	svc, err := slack.New("xoxb-test", slack.WithAPIURL(srv.URL+"/"))
	gt.NoError(t, err).Required()

	notifier := slack.NewNotifier(svc, "C404", "")
	err = notifier.NotifyMitigation(context.Background(), sampleRisk(), nil, sampleResult())
	gt.Value(t, err).NotNil()
}

func TestMitigationBlocks(t *testing.T) {
	t.Run("without option or base URL", func(t *testing.T) {
		result := sampleResult()
		result.EstimatedCompletionDate = nil

		blocks, text := slack.MitigationBlocks(sampleRisk(), nil, result, "")
		gt.A(t, blocks).Length(3)
		gt.S(t, text).Contains("MIT-RISK001-1")
	})

	t.Run("with base URL adds a link", func(t *testing.T) {
		blocks, _ := slack.MitigationBlocks(sampleRisk(), nil, sampleResult(), "https://tower.example.com")
		gt.A(t, blocks).Length(4)
	})
}

func TestTruncate(t *testing.T) {
	gt.V(t, slack.Truncate("short", 10)).Equal("short")
	gt.V(t, slack.Truncate("abcdefghij", 5)).Equal("abcd…")
	gt.V(t, slack.Truncate("日本語のテキスト", 4)).Equal("日本語…")
}

func TestRiskLink(t *testing.T) {
	gt.V(t, slack.RiskLink("", "RISK001")).Equal("")
	gt.V(t, slack.RiskLink("http://localhost:8080/", "RISK 1")).Equal("http://localhost:8080/?selected=RISK+1")
}
