package grading

import (
	"context"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash"

// GeminiGrader sends prompt + image to the Gemini API and returns the
// raw response text. It imposes no timeout or retry of its own; callers
// control the lifetime through ctx.
type GeminiGrader struct {
	client *genai.Client
}

func NewGeminiGrader(ctx context.Context, apiKey string) (*GeminiGrader, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiGrader{client: client}, nil
}

func (g *GeminiGrader) Grade(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(image, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, geminiModel, contents, nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
