package textgen

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// Generator turns a prompt into text. It is the only boundary to the remote model.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator calls the Gemini API through the GenAI SDK.
type GeminiGenerator struct {
	model     string
	apiKeyEnv string
}

func NewGeminiGenerator(model, apiKeyEnv string) *GeminiGenerator {
	return &GeminiGenerator{
		model:     model,
		apiKeyEnv: apiKeyEnv,
	}
}

// GenerateText performs one request/response round trip. The API key is read
// from the environment on every call; a missing key only shows up as a
// request failure.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  os.Getenv(g.apiKeyEnv),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create GenAI client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	return resp.Text(), nil
}

func (g *GeminiGenerator) Model() string {
	return g.model
}
