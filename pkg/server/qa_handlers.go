package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// maxUploadBytes bounds transcription uploads (25 MB, the provider's own
// file size limit).
const maxUploadBytes = 25 << 20

// askRequest is the body of POST /v1/ask.
type askRequest struct {
	Question string `json:"question"`
}

// handleAsk serves the question-answering path. The handler starts a ledger
// entry, passes the correlation id explicitly to the answer service, and
// finishes the entry on every exit path.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "question cannot be empty")
		return
	}
	if s.answers == nil {
		writeError(w, http.StatusServiceUnavailable, "answer service is not available")
		return
	}

	requestID := s.ledger.Start(r.URL.Path, clientIP(r))
	started := time.Now()

	success := true
	var errMessage string
	defer func() {
		s.finishRequest(requestID, success, errMessage, time.Since(started))
	}()

	answer, err := s.answers.Answer(r.Context(), requestID, req.Question)
	if err != nil {
		success = false
		errMessage = err.Error()
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("error processing request: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, answer)
}

// transcribeResponse is the body of a successful POST /v1/transcribe.
type transcribeResponse struct {
	Text string `json:"text"`
}

// handleTranscribe serves the audio transcription path.
func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	if s.transcriber == nil {
		writeError(w, http.StatusServiceUnavailable, "transcription service is not available")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing audio file upload")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "audio/") {
		writeError(w, http.StatusBadRequest, "invalid file type, please upload an audio file")
		return
	}

	requestID := s.ledger.Start(r.URL.Path, clientIP(r))
	started := time.Now()

	success := true
	var errMessage string
	defer func() {
		s.finishRequest(requestID, success, errMessage, time.Since(started))
	}()

	text, err := s.transcriber.Transcribe(r.Context(), requestID, file, header.Filename, contentType)
	if err != nil {
		success = false
		errMessage = err.Error()
		writeError(w, http.StatusBadGateway, fmt.Sprintf("error transcribing audio: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, transcribeResponse{Text: text})
}

// finishRequest closes the ledger entry and logs the request cost summary.
func (s *Server) finishRequest(requestID string, success bool, errMessage string, elapsed time.Duration) {
	summary := s.ledger.Finish(requestID, success, errMessage)
	if summary == nil {
		return
	}

	s.logger.Info("request cost summary",
		"request_id", summary.RequestID,
		"endpoint", summary.Endpoint,
		"duration_ms", elapsed.Milliseconds(),
		"total_cost_usd", summary.TotalCost,
		"input_tokens", summary.TotalInputTokens,
		"output_tokens", summary.TotalOutputTokens,
		"api_calls", len(summary.Calls),
		"success", summary.Success,
	)
}
