package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/hfbriefer/pkg/config"
	"github.com/umputun/hfbriefer/pkg/domain"
)

// ErrContractViolation is returned when the LLM fails to produce a valid report in all attempts
var ErrContractViolation = errors.New("llm contract violation")

// maxAttempts is the number of LLM calls per report, initial one and a single retry with nudge
const maxAttempts = 2

// Generator uses LLM to write report drafts for registry items
type Generator struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.LLMConfig) *Generator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = endpointURL(cfg.Endpoint)
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Generator{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// endpointURL makes OpenAI-compatible base url, ollama serves it under /v1
func endpointURL(endpoint string) string {
	endpoint = strings.TrimRight(endpoint, "/")
	if strings.HasSuffix(endpoint, "/v1") {
		return endpoint
	}
	return endpoint + "/v1"
}

// attemptState is the position in the generation sequence.
// attempt1 -> attempt2 -> failed, a valid response in any attempt ends the sequence with success.
type attemptState int

const (
	stateAttempt1 attemptState = iota
	stateAttempt2
	stateFailed
)

func (s attemptState) next() attemptState {
	if s == stateAttempt1 {
		return stateAttempt2
	}
	return stateFailed
}

func (s attemptState) attempt() int { return int(s) + 1 }

// Generate asks the LLM for a report draft about the item. Makes at most two calls,
// the second one only if the first response is not a valid report.
func (g *Generator) Generate(ctx context.Context, meta domain.ItemMetadata) (domain.ReportDraft, error) {
	lgr.Printf("[INFO] preparing LLM request for %s (%s)", meta.ID, meta.Type)
	lgr.Printf("[DEBUG] LLM endpoint: %s, model: %s", g.config.Endpoint, g.config.Model)
	if meta.HasReadme() {
		lgr.Printf("[INFO] README included (%d chars)", len([]rune(meta.Readme)))
	} else {
		lgr.Printf("[INFO] README not included")
	}

	userMsg, err := buildUserPrompt(meta)
	if err != nil {
		return domain.ReportDraft{}, fmt.Errorf("build prompt for %s: %w", meta.ID, err)
	}
	lgr.Printf("[INFO] total prompt length: %d chars", len(g.systemMsg)+len(userMsg))

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: g.systemMsg},
		{Role: openai.ChatMessageRoleUser, Content: userMsg},
	}

	var lastErr error
	for state := stateAttempt1; state != stateFailed; state = state.next() {
		if state == stateAttempt2 {
			lgr.Printf("[WARN] first LLM attempt for %s failed, retrying with nudge", meta.ID)
			messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: retryNudge})
		}

		content, err := g.complete(ctx, messages, state.attempt())
		if err != nil {
			return domain.ReportDraft{}, fmt.Errorf("generate report for %s, attempt %d: %w", meta.ID, state.attempt(), err)
		}

		draft, err := parseResponse(content)
		if err == nil {
			lgr.Printf("[INFO] LLM returned valid report for %s on attempt %d: %q", meta.ID, state.attempt(), draft.Title)
			return draft, nil
		}
		lastErr = err
		lgr.Printf("[WARN] invalid LLM response for %s on attempt %d: %v", meta.ID, state.attempt(), err)
	}

	lgr.Printf("[ERROR] LLM failed to produce a valid report for %s after %d attempts", meta.ID, maxAttempts)
	return domain.ReportDraft{}, fmt.Errorf("%w: no valid report for %s after %d attempts, last error: %v",
		ErrContractViolation, meta.ID, maxAttempts, lastErr)
}

// complete makes a single chat completion call and returns the trimmed text of the first choice
func (g *Generator) complete(ctx context.Context, messages []openai.ChatCompletionMessage, attempt int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       g.config.Model,
		Temperature: float32(g.config.Temperature),
		MaxTokens:   g.config.MaxTokens,
		Messages:    messages,
	}

	// add JSON response format if enabled
	if g.config.UseJSONMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	lgr.Printf("[INFO] sending request to LLM (attempt %d)", attempt)
	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	lgr.Printf("[INFO] LLM response received in %v", time.Since(start).Round(100*time.Millisecond))

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	lgr.Printf("[DEBUG] raw LLM response (%d chars): %s", len(content), content)
	return content, nil
}

// buildUserPrompt embeds item kind and the full metadata as indented json
func buildUserPrompt(meta domain.ItemMetadata) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", fmt.Errorf("marshal metadata: %w", err)
	}
	return fmt.Sprintf(userPromptTemplate, meta.Type, strings.TrimSpace(buf.String())), nil
}
