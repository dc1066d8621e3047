package translator

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"urmonov-web/pkg/locale"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// Gemini translates with Google Gemini instead of an OpenAI-compatible API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini translator. No request is made here.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{client: client, model: model}, nil
}

// Translate works like Client.Translate.
func (g *Gemini) Translate(ctx context.Context, from locale.Locale, text string) (locale.Text, error) {
	from, _ = locale.Parse(from.String())

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(userPrompt(from, text)), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		Temperature: genai.Ptr[float32](0.3),
	})
	if err != nil {
		return locale.Text{}, fmt.Errorf("gemini generate: %w", err)
	}

	responseText := result.Text()
	if responseText == "" {
		return locale.Text{}, ErrEmptyResponse
	}
	return parseTranslation(from, text, responseText)
}
