package translator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"urmonov-web/pkg/locale"
	"urmonov-web/pkg/logger"
)

// DeepSeek API configuration (OpenAI-compatible)
const (
	DefaultBaseURL = "https://api.deepseek.com"
	DefaultModel   = "deepseek-chat" // DeepSeek-V3
)

// ErrEmptyResponse is returned when the model sends no choices
var ErrEmptyResponse = errors.New("no response from translation model")

var languageNames = map[locale.Locale]string{
	locale.Uzbek:   "Uzbek",
	locale.Russian: "Russian",
	locale.English: "English",
}

const systemPrompt = `You are a professional medical translator for a clinic website.
Output ONLY valid JSON without any markdown formatting or code blocks.
Translate accurately while preserving the original meaning and tone.`

// Client translates visitor submissions into the other site locales
type Client struct {
	api   *openai.Client
	model string
}

// New creates a translator. Empty baseURL and model fall back to DeepSeek.
func New(apiKey, baseURL, model string) *Client {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = DefaultBaseURL
	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{api: openai.NewClientWithConfig(config), model: model}
}

// Translate returns text in all three locales. The source locale always
// keeps the original text; a locale the model left empty gets the original
// as well.
func (c *Client) Translate(ctx context.Context, from locale.Locale, text string) (locale.Text, error) {
	from, _ = locale.Parse(from.String())

	responseText, err := c.complete(ctx, userPrompt(from, text))
	if err != nil {
		return locale.Text{}, err
	}
	return parseTranslation(from, text, responseText)
}

func userPrompt(from locale.Locale, text string) string {
	return fmt.Sprintf(`Translate this text from %s to the other languages.
Return ONLY a JSON object in this EXACT format (no markdown, no code blocks):
{"uz": "...", "ru": "...", "en": "..."}

Text (%s): %s`, languageNames[from], languageNames[from], text)
}

func parseTranslation(from locale.Locale, text, responseText string) (locale.Text, error) {
	var result locale.Text
	if err := json.Unmarshal([]byte(cleanJSONResponse(responseText)), &result); err != nil {
		return locale.Text{}, fmt.Errorf("parse translation: %w", err)
	}

	// Исходный текст не переводим
	result.Set(from, text)
	for _, l := range locale.All() {
		if strings.TrimSpace(result.In(l)) == "" {
			result.Set(l, text)
		}
	}
	return result, nil
}

func (c *Client) complete(ctx context.Context, userPrompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	logger.Debug("Translation received", zap.String("model", resp.Model), zap.Int("tokens", resp.Usage.TotalTokens))
	return resp.Choices[0].Message.Content, nil
}

// cleanJSONResponse - Remove markdown code blocks and extra whitespace from JSON response
func cleanJSONResponse(text string) string {
	text = strings.TrimSpace(text)

	// Remove ```json at the start
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}

	// Remove ``` at the end
	text = strings.TrimSuffix(text, "```")

	return strings.TrimSpace(text)
}
