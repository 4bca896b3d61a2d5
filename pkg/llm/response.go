package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/umputun/hfbriefer/pkg/domain"
)

const codeFence = "```"

// parseResponse validates LLM output and converts it to a normalized draft.
// An error here means the response violates the report contract, not a transport failure.
func parseResponse(content string) (domain.ReportDraft, error) {
	raw := stripCodeFence(strings.TrimSpace(content))

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return domain.ReportDraft{}, fmt.Errorf("failed to parse json object: %w", err)
	}

	title, err := requiredString(fields, "title")
	if err != nil {
		return domain.ReportDraft{}, err
	}
	summary, err := requiredString(fields, "summary")
	if err != nil {
		return domain.ReportDraft{}, err
	}

	rawIdeas, ok := fields["ideas"]
	if !ok {
		return domain.ReportDraft{}, fmt.Errorf("missing ideas")
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(rawIdeas, &entries); err != nil || entries == nil {
		return domain.ReportDraft{}, fmt.Errorf("ideas is not an array")
	}
	if len(entries) != domain.IdeasCount {
		return domain.ReportDraft{}, fmt.Errorf("expected %d ideas, got %d", domain.IdeasCount, len(entries))
	}

	ideas := make([]string, 0, len(entries))
	for _, e := range entries {
		ideas = append(ideas, decodeIdea(e).text())
	}

	return domain.ReportDraft{Title: title, Summary: summary, Ideas: ideas}, nil
}

// requiredString extracts a non-empty string field
func requiredString(fields map[string]json.RawMessage, key string) (string, error) {
	v, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("missing %s", key)
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", fmt.Errorf("%s is not a string", key)
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("empty %s", key)
	}
	return s, nil
}

// stripCodeFence removes markdown fence wrapper: first line and everything from the last fence on
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, codeFence) {
		return text
	}
	_, body, found := strings.Cut(text, "\n")
	if !found {
		return ""
	}
	if idx := strings.LastIndex(body, codeFence); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body)
}

// idea is a single entry of the ideas array, either a plain value or a structured object
type idea interface {
	text() string
}

// plainIdea is any non-object json value
type plainIdea struct {
	raw json.RawMessage
}

// structuredIdea is a json object the model returned instead of a string
type structuredIdea struct {
	raw    json.RawMessage
	fields map[string]json.RawMessage
}

// displayKeys are tried in order to find the human readable text of a structured idea
var displayKeys = []string{"description", "name", "idea", "title"}

// decodeIdea tags the raw entry as structured or plain
func decodeIdea(raw json.RawMessage) idea {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err == nil {
			return structuredIdea{raw: trimmed, fields: fields}
		}
	}
	return plainIdea{raw: trimmed}
}

// text returns the string itself, other values in their json form
func (p plainIdea) text() string {
	var s string
	if !bytes.Equal(p.raw, []byte("null")) && json.Unmarshal(p.raw, &s) == nil {
		return s
	}
	return compactJSON(p.raw)
}

// text returns the first non-empty display field, or the whole object as compact json
func (s structuredIdea) text() string {
	for _, key := range displayKeys {
		v, ok := s.fields[key]
		if !ok || isEmptyValue(v) {
			continue
		}
		var str string
		if err := json.Unmarshal(v, &str); err == nil {
			return str
		}
		return compactJSON(v)
	}
	return compactJSON(s.raw)
}

// isEmptyValue reports null, false, zero numbers, empty strings, objects and arrays
func isEmptyValue(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case float64:
		return val == 0
	case string:
		return val == ""
	case map[string]any:
		return len(val) == 0
	case []any:
		return len(val) == 0
	}
	return false
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
