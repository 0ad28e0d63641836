package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type geminiCompleter struct {
	apiKey string
	model  string
}

func newGeminiCompleter(apiKey, model string) *geminiCompleter {
	return &geminiCompleter{apiKey: apiKey, model: model}
}

func (g *geminiCompleter) complete(ctx context.Context, system, user string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](completionTemperature),
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(user), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from %s", g.model)
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(text.String()), nil
}
