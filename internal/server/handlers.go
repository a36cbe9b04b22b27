package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/doclens/doclens/apimodels"
	"github.com/doclens/doclens/internal/ingest"
	"github.com/doclens/doclens/internal/llm"
	"github.com/doclens/doclens/internal/source"
)

const (
	historyLimit   = 50
	maxSuggestions = 5
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	slog.Debug("Received analysis request", "title", req.Title)
	s.analyzeAndRespond(w, req)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid upload: %v", err), http.StatusBadRequest)
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid upload: %v", err), http.StatusBadRequest)
		return
	}

	doc, err := ingest.Extract(header.Filename, raw)
	if err != nil {
		slog.Warn("Upload extraction failed", "filename", header.Filename, "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.analyzeAndRespond(w, apimodels.AnalysisRequest{Title: doc.Title, Content: doc.Text})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.folder.List()
	if err != nil {
		slog.Error("Document listing failed", "error", err)
		http.Error(w, "failed to list documents", http.StatusInternalServerError)
		return
	}
	writeJSON(w, docs)
}

func (s *Server) handleAnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	doc, err := s.folder.Load(name)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}
		slog.Error("Document load failed", "name", name, "error", err)
		http.Error(w, "failed to load document", http.StatusInternalServerError)
		return
	}

	s.analyzeAndRespond(w, apimodels.AnalysisRequest{Title: doc.Title, Content: doc.Text})
}

// analyzeAndRespond runs the analyzer, records the result, and writes
// the response. History writes are best effort: a store failure is
// logged but never fails the request.
func (s *Server) analyzeAndRespond(w http.ResponseWriter, req apimodels.AnalysisRequest) {
	result := s.analyzer.Analyze(req)

	if s.store != nil {
		if _, err := s.store.Save(result); err != nil {
			slog.Warn("Failed to record analysis", "title", result.DocumentTitle, "error", err)
		}
	}

	writeJSON(w, apimodels.AnalyzeResponse{Results: []apimodels.AnalysisResult{result}})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "history is not configured", http.StatusServiceUnavailable)
		return
	}
	records, err := s.store.Recent(historyLimit)
	if err != nil {
		slog.Error("History query failed", "error", err)
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}
	writeJSON(w, records)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req apimodels.SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Word == "" {
		http.Error(w, "word is required", http.StatusBadRequest)
		return
	}

	writeJSON(w, apimodels.SuggestResponse{
		Word:        req.Word,
		Suggestions: s.suggest.Suggest(req.Word, maxSuggestions),
	})
}

func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	if s.llm == nil {
		http.Error(w, "AI enhancement is not configured", http.StatusServiceUnavailable)
		return
	}

	var req apimodels.EnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	startTime := time.Now()
	resp, err := s.llm.Rewrite(r.Context(), req.Title, req.Content, llm.Option(func(o *llm.Options) {
		if req.Options.Model != "" {
			o.Model = req.Options.Model
		}
		if req.Options.MaxTokens != 0 {
			o.MaxTokens = req.Options.MaxTokens
		}
		if req.Options.Temperature != 0 {
			o.Temperature = req.Options.Temperature
		}
	}))
	if err != nil {
		slog.Error("Enhance request failed", "error", err)
		http.Error(w, "AI enhancement failed", http.StatusBadGateway)
		return
	}

	writeJSON(w, apimodels.EnhanceResponse{
		Result: resp.Content,
		Metadata: apimodels.EnhanceMetadata{
			Duration:   time.Since(startTime).String(),
			Model:      resp.Model,
			TokensUsed: resp.Usage.TotalTokens,
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
