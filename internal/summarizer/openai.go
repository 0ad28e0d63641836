package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// completionTemperature is fixed for every request; summaries should be
// stable across runs.
const completionTemperature = 0.3

type openaiCompleter struct {
	client openai.Client
	model  string
}

func newOpenAICompleter(apiKey, model string) *openaiCompleter {
	return &openaiCompleter{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (o *openaiCompleter) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(o.model),
		Temperature: openai.Float(completionTemperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from %s", o.model)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
