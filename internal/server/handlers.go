package server

import (
	"encoding/json"
	"net/http"
)

// QueryRequest is the body of both query endpoints.
type QueryRequest struct {
	Query string `json:"query" validate:"required"`
}

const missingQueryDetail = "Missing 'query' in request body."

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	query, ok := s.decodeQuery(w, r)
	if !ok {
		return
	}
	s.logger.Info("query received", "endpoint", "/query", "query", query)

	res, err := s.openai.Execute(r.Context(), query)
	if err != nil {
		s.logger.Error("query failed", "endpoint", "/query", "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if len(res.ToolCalls) == 0 {
		s.writeJSON(w, http.StatusOK, map[string]any{
			"response":           res.Response,
			"tokens_used":        res.TokensUsed,
			"estimated_cost_usd": res.EstimatedCostUSD,
		})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"tool_calls":         res.ToolCalls,
		"summary":            res.Summary,
		"tokens_used":        res.TokensUsed,
		"estimated_cost_usd": res.EstimatedCostUSD,
	})
}

func (s *Server) handleQueryGemini(w http.ResponseWriter, r *http.Request) {
	query, ok := s.decodeQuery(w, r)
	if !ok {
		return
	}
	s.logger.Info("query received", "endpoint", "/query-gemini", "query", query)

	res, err := s.gemini.Execute(r.Context(), query)
	if err != nil {
		s.logger.Error("query failed", "endpoint", "/query-gemini", "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if len(res.ToolCalls) == 0 {
		s.writeJSON(w, http.StatusOK, map[string]any{"response": res.Response})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"gemini_tool_calls": res.ToolCalls,
		"summary":           res.Summary,
	})
}

// decodeQuery parses and validates the request body. Anything short of a
// non-empty query is a 400 before any model call is made.
func (s *Server) decodeQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, missingQueryDetail)
		return "", false
	}
	if err := s.validate.Struct(req); err != nil {
		s.writeError(w, http.StatusBadRequest, missingQueryDetail)
		return "", false
	}
	return req.Query, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("writing response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, map[string]any{"detail": detail})
}
