package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"unicode/utf8"

	"github.com/jonathan/candidate-screener/internal/analysis"
	"github.com/jonathan/candidate-screener/internal/decode"
	"github.com/jonathan/candidate-screener/internal/logger"
	"github.com/jonathan/candidate-screener/internal/ranking"
	"go.uber.org/zap"
)

// ExtractRequest is the JSON form of a /extract request. A text/plain body
// is also accepted.
type ExtractRequest struct {
	Text string `json:"text"`
}

// ScoreRequest represents the request body for /score. Both documents are
// validated against their schemas before scoring.
type ScoreRequest struct {
	Candidate      map[string]any `json:"candidate"`
	JobRequirement map[string]any `json:"job_requirement"`
}

// AnalysesResponse represents the response for GET /analyses
type AnalysesResponse struct {
	Analyses []*analysis.Analysis `json:"analyses"`
	Count    int                  `json:"count"`
}

// handleExtract builds a profile from résumé text.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	s.limitBody(w, r, 0)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		s.fail(w, err)
		return
	}

	var text string
	if isJSON(r) {
		var req ExtractRequest
		if err := json.Unmarshal(data, &req); err != nil {
			s.fail(w, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
			return
		}
		text = req.Text
	} else {
		if !utf8.Valid(data) {
			s.fail(w, &ErrValidation{Field: "body", Message: "must be UTF-8 text"})
			return
		}
		text = string(data)
	}

	s.jsonResponse(w, http.StatusOK, s.service.Extract(text))
}

// handleScore scores a candidate document against a requirement document.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	s.limitBody(w, r, 0)
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			s.fail(w, err)
			return
		}
		s.fail(w, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}
	if req.Candidate == nil {
		s.fail(w, &ErrValidation{Field: "candidate", Message: "is required"})
		return
	}
	if req.JobRequirement == nil {
		s.fail(w, &ErrValidation{Field: "job_requirement", Message: "is required"})
		return
	}

	candidate, err := decode.CandidateFromMap(req.Candidate)
	if err != nil {
		s.fail(w, err)
		return
	}
	job, err := decode.JobRequirementFromMap(req.JobRequirement)
	if err != nil {
		s.fail(w, err)
		return
	}

	score, err := s.service.Score(candidate, job)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, score)
}

// handleAnalyze runs the full document pipeline on a multipart upload with
// fields file, job_requirement (optional JSON) and assessment (optional JSON).
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	s.limitBody(w, r, multipartOverhead)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			s.fail(w, err)
			return
		}
		s.fail(w, &ErrValidation{Field: "body", Message: "expected multipart form: " + err.Error()})
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.fail(w, &ErrValidation{Field: "file", Message: "is required"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.fail(w, err)
		return
	}

	var opts analysis.AnalyzeOptions
	if raw := r.FormValue("job_requirement"); raw != "" {
		m, err := parseJSONField("job_requirement", raw)
		if err != nil {
			s.fail(w, err)
			return
		}
		job, err := decode.JobRequirementFromMap(m)
		if err != nil {
			s.fail(w, err)
			return
		}
		opts.Job = &job
	}
	if raw := r.FormValue("assessment"); raw != "" {
		m, err := parseJSONField("assessment", raw)
		if err != nil {
			s.fail(w, err)
			return
		}
		assessment, err := decode.CandidateFromMap(m)
		if err != nil {
			s.fail(w, err)
			return
		}
		opts.Assessment = &assessment
	}

	doc := analysis.Document{
		Filename:    header.Filename,
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
	}
	result, err := s.service.Analyze(r.Context(), doc, opts)
	if err != nil {
		s.logger.Warn("analysis rejected", zap.String(logger.FieldFilename, header.Filename), zap.Error(err))
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleListAnalyses returns recent analyses, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, _ *http.Request) {
	list := s.service.History().List()
	s.jsonResponse(w, http.StatusOK, AnalysesResponse{Analyses: list, Count: len(list)})
}

// handleLatestAnalysis returns the most recent analysis.
func (s *Server) handleLatestAnalysis(w http.ResponseWriter, _ *http.Request) {
	latest, ok := s.service.History().Latest()
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "no analysis available")
		return
	}
	s.jsonResponse(w, http.StatusOK, latest)
}

// handleGetAnalysis returns one analysis from history.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	a, ok := s.service.History().Get(id)
	if !ok {
		s.fail(w, &analysis.NotFoundError{ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, a)
}

// RankingResponse represents the response for GET /ranking
type RankingResponse struct {
	Candidates []ranking.RankedCandidate `json:"candidates"`
}

// handleRanking ranks the scored analyses in history.
func (s *Server) handleRanking(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, RankingResponse{Candidates: ranking.Rank(s.service.History().List())})
}

// handleDeleteResume removes an uploaded document from the blob store.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if err := s.service.DeleteResume(r.Context(), key); err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "success", "key": key})
}

// limitBody caps the request body at the document limit plus extra bytes.
func (s *Server) limitBody(w http.ResponseWriter, r *http.Request, extra int) {
	if limit := s.service.MaxInputBytes(); limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, int64(limit+extra))
	}
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

func parseJSONField(field, raw string) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, &ErrValidation{Field: field, Message: "invalid JSON: " + err.Error()}
	}
	if m == nil {
		return nil, &ErrValidation{Field: field, Message: "must be a JSON object"}
	}
	return m, nil
}

