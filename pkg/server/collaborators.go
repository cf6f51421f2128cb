package server

import (
	"context"
	"io"
)

// AnswerService produces a grounded answer for a legal question. The
// implementation owns retrieval, prompt construction, and the completion
// call; it receives the ledger correlation id as an explicit parameter and
// is expected to track every billable call it makes against that id.
type AnswerService interface {
	Answer(ctx context.Context, requestID, question string) (*Answer, error)
}

// Answer is the result of a question-answering call.
type Answer struct {
	// Answer is the generated answer text.
	Answer string `json:"answer"`

	// Sources lists the document passages the answer is grounded in.
	Sources []string `json:"sources"`
}

// Transcriber converts uploaded audio to text. Like AnswerService, it
// receives the correlation id explicitly and tracks its own billable calls.
type Transcriber interface {
	Transcribe(ctx context.Context, requestID string, audio io.Reader, filename, contentType string) (string, error)
}
