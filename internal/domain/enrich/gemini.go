package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is the generation used for expense extraction. Flash is
// plenty for a single short line and keeps latency inside the call timeout.
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiParser implements RemoteParser against the Gemini API.
type GeminiParser struct {
	client *genai.Client
	model  string
}

// NewGeminiParser creates the client. The API key comes from the environment
// (GEMINI_API_KEY / GOOGLE_API_KEY) or the explicit config value.
func NewGeminiParser(ctx context.Context, apiKey, model string) (*GeminiParser, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiParser{client: client, model: model}, nil
}

// Parse sends the expense text with a strict-JSON prompt and decodes the
// model's answer into a RemoteResult. The category list is embedded in the
// prompt so the model picks from the closed set; validation downstream still
// coerces anything it invents.
func (g *GeminiParser) Parse(ctx context.Context, text string, categories []string) (*RemoteResult, error) {
	prompt := buildPrompt(text, categories)

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	var result RemoteResult
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &result); err != nil {
		return nil, fmt.Errorf("unmarshal model response: %w", err)
	}
	return &result, nil
}

func buildPrompt(text string, categories []string) string {
	var b strings.Builder
	b.WriteString("You are a personal finance assistant. Extract structured expense data from the user's text.\n\n")
	b.WriteString("Text: ")
	b.WriteString(text)
	b.WriteString("\n\nAllowed categories (pick exactly one):\n")
	for _, c := range categories {
		b.WriteString("- ")
		b.WriteString(c)
		b.WriteString("\n")
	}
	b.WriteString("\nRespond with a single JSON object and nothing else:\n")
	b.WriteString(`{"amount": <number>, "description": "<short label>", "category": "<one allowed category>", ` +
		`"type": "expense" or "income", "merchant": "<business name or empty string>", ` +
		`"reasoning": "<one sentence>", ` +
		`"confidence": {"amount": <0..1>, "description": <0..1>, "category": <0..1>, "type": <0..1>}}` + "\n")
	b.WriteString("Do NOT use ```json or any Markdown. Output must begin with \"{\" and end with \"}\".\n")
	return b.String()
}

// cleanModelJSON strips Markdown fences and surrounding junk when the model
// ignores the plain-JSON instruction.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}
