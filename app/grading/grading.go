// Package grading implements the AI grading workflow: build the prompt,
// send it with the submitted image to the grader, and extract a numeric
// score from the response. Grading is a pure request/response operation;
// persisting the result is the caller's job.
package grading

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/darksoultig/stuwork/app/apperr"
)

const (
	DefaultSubject   = "General"
	DefaultFullScore = 100
	DefaultMimeType  = "image/jpeg"
)

// Sentinel errors for grading failures that callers may want to tell apart.
var (
	ErrNotConfigured = errors.New("AI service not configured")
	ErrNoImage       = errors.New("no image provided")
)

// Grader is the boundary to the external generative model. It gets the
// prompt and image, and returns whatever text the model produced.
type Grader interface {
	Grade(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

type GradeInput struct {
	ImageBase64 string
	Subject     string
	FullScore   int
	MimeType    string
}

type GradeResult struct {
	Score     int
	FullScore int
	Feedback  string
}

// Service runs grading calls against an injected Grader. Each call is
// stateless and independent; concurrent calls do not interfere.
type Service struct {
	grader Grader
}

func NewService(grader Grader) *Service {
	return &Service{grader: grader}
}

// Configured reports whether a grader is available. When false, every
// Grade call fails with ErrNotConfigured; the health endpoint exposes
// the same flag.
func (s *Service) Configured() bool {
	return s != nil && s.grader != nil
}

func (s *Service) Grade(ctx context.Context, in GradeInput) (*GradeResult, error) {
	if !s.Configured() {
		return nil, apperr.Wrap(apperr.Unavailable, ErrNotConfigured)
	}
	if in.ImageBase64 == "" {
		return nil, apperr.Wrap(apperr.InvalidInput, ErrNoImage)
	}

	subject := in.Subject
	if subject == "" {
		subject = DefaultSubject
	}
	fullScore := in.FullScore
	if fullScore <= 0 {
		fullScore = DefaultFullScore
	}
	mimeType := in.MimeType
	if mimeType == "" {
		mimeType = DefaultMimeType
	}

	image, err := base64.StdEncoding.DecodeString(in.ImageBase64)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, fmt.Errorf("decode image: %w", err))
	}

	prompt := BuildPrompt(subject, fullScore)

	feedback, err := s.grader.Grade(ctx, prompt, image, mimeType)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, fmt.Errorf("generate feedback: %w", err))
	}

	return &GradeResult{
		Score:     ExtractScore(feedback, fullScore),
		FullScore: fullScore,
		Feedback:  feedback,
	}, nil
}
