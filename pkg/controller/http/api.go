package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/utils/safe"
)

// maxBodySize bounds JSON request bodies
const maxBodySize = 64 * 1024

// statusOf maps a failed envelope to an HTTP status. Execution failures are
// regular outcomes of an accepted request.
func statusOf(reason model.FailureReason) int {
	switch reason {
	case model.ReasonNotFound:
		return http.StatusNotFound
	case model.ReasonInvalidArgument:
		return http.StatusBadRequest
	case model.ReasonTransient:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}

func writeEnvelope[T any](w http.ResponseWriter, r *http.Request, resp *model.Envelope[T]) {
	status := http.StatusOK
	if !resp.Success {
		status = statusOf(resp.Reason)
	}
	writeJSON(w, r, status, resp)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.EncodeJSON(r.Context(), w, v)
}

// badRequest answers with a failed envelope for input the facade never saw
func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeEnvelope(w, r, model.Fail[any](model.ReasonInvalidArgument, err.Error(), s.now()))
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"baseUrl": s.baseURL})
}

func (s *Server) handleListRisks(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r.URL.Query())
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	writeEnvelope(w, r, s.uc.Risk.ListRisks(r.Context(), filters))
}

func (s *Server) handleGetRisk(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, r, s.uc.Risk.GetRisk(r.Context(), chi.URLParam(r, "id")))
}

func (s *Server) handlePatchRisk(w http.ResponseWriter, r *http.Request) {
	var patch model.RiskPatch
	if err := decodeBody(w, r, &patch); err != nil {
		s.badRequest(w, r, err)
		return
	}
	writeEnvelope(w, r, s.uc.Risk.UpdateRiskStatus(r.Context(), chi.URLParam(r, "id"), patch))
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r.URL.Query())
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	writeEnvelope(w, r, s.uc.Risk.GetTimeline(r.Context(), filters, r.URL.Query().Get("selected")))
}

func (s *Server) handleCoach(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, r, s.uc.Coach.GetCoachData(r.Context(), chi.URLParam(r, "componentRiskId")))
}

func (s *Server) handleListMitigations(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, r, s.uc.Mitigation.ListOptions(r.Context(), r.URL.Query().Get("componentRiskId")))
}

type executeRequest struct {
	ComponentRiskID string `json:"componentRiskId"`
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}
	if req.ComponentRiskID == "" {
		writeEnvelope(w, r, model.Fail[any](model.ReasonInvalidArgument, "componentRiskId is required", s.now()))
		return
	}

	writeEnvelope(w, r, s.uc.Mitigation.Execute(r.Context(), chi.URLParam(r, "mitigationId"), req.ComponentRiskID))
}

func (s *Server) handleListSuppliers(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, r, s.uc.Reference.ListSuppliers(r.Context()))
}

func (s *Server) handleListPlants(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, r, s.uc.Reference.ListPlants(r.Context()))
}
