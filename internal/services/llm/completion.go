package llm

import (
	"fmt"
	"strings"
)

type completionRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionResponse struct {
	Choices []choice `json:"choices"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type choice struct {
	Message answerMessage `json:"message"`
	// Some providers send the streaming shape even when stream=false.
	Delta        answerMessage `json:"delta"`
	Text         string        `json:"text"`
	FinishReason string        `json:"finish_reason"`
}

type answerMessage struct {
	Content   string     `json:"content"`
	Refusal   string     `json:"refusal"`
	ToolCalls []toolCall `json:"tool_calls"`
}

type toolCall struct {
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

// answer returns the first usable text across choices, preferring message
// content, then the streaming delta, the legacy text field, and finally
// tool-call arguments. The first finish reason and refusal seen are returned
// for diagnostics.
func (r completionResponse) answer() (text, finish, refusal string) {
	for _, ch := range r.Choices {
		if finish == "" {
			finish = strings.TrimSpace(ch.FinishReason)
		}
		if refusal == "" {
			refusal = firstNonEmpty(ch.Message.Refusal, ch.Delta.Refusal)
		}
		candidates := []string{ch.Message.Content, ch.Delta.Content, ch.Text}
		for _, call := range append(ch.Message.ToolCalls, ch.Delta.ToolCalls...) {
			candidates = append(candidates, call.Function.Arguments)
		}
		if text = firstNonEmpty(candidates...); text != "" {
			return text, finish, refusal
		}
	}
	return "", finish, refusal
}

// emptyAnswerError reports a successful response with nothing to parse.
type emptyAnswerError struct {
	Choices      int
	FinishReason string
	Refusal      string
	Snippet      string
}

func (e *emptyAnswerError) Error() string {
	if e.Choices == 0 {
		return fmt.Sprintf("llm empty choices (body=%s)", e.Snippet)
	}
	return fmt.Sprintf("llm empty answer (finish_reason=%q, refusal=%q, body=%s)", e.FinishReason, e.Refusal, e.Snippet)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// snippet flattens a response body to one line of at most 160 runes.
func snippet(body string) string {
	clean := strings.Join(strings.Fields(body), " ")
	if clean == "" {
		return "<empty>"
	}
	const limit = 160
	if runes := []rune(clean); len(runes) > limit {
		return string(runes[:limit]) + "..."
	}
	return clean
}
