// Package prompts implements the prompt library domain.
// It owns the in-memory prompt collection, its version history, and
// persistence of the whole collection to the backing store.
package prompts

import (
	"encoding/json"
	"slices"
	"time"
)

// LLMType identifies the model a prompt was written for. It is informational
// and is not validated against any live model list.
type LLMType string

const (
	LLMGPT4          LLMType = "gpt-4"
	LLMGPT35Turbo    LLMType = "gpt-3.5-turbo"
	LLMClaude2       LLMType = "claude-2"
	LLMClaudeInstant LLMType = "claude-instant"
	LLMCustom        LLMType = "custom"
)

// DefaultLLMType is assigned when a prompt is created without one.
const DefaultLLMType = LLMGPT4

// LLMTypes returns the known model identifiers.
func LLMTypes() []LLMType {
	return []LLMType{LLMGPT4, LLMGPT35Turbo, LLMClaude2, LLMClaudeInstant, LLMCustom}
}

// Example is an input/output pair illustrating a prompt.
type Example struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Version is a snapshot of a prompt captured immediately before a content update.
type Version struct {
	Version   int       `json:"version"`
	Text      string    `json:"text"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Prompt is a saved instruction template with metadata and version history.
type Prompt struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Text           string    `json:"text"`
	Tags           []string  `json:"tags"`
	LLMType        LLMType   `json:"llmType"`
	Examples       []Example `json:"examples"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	IsArchived     bool      `json:"isArchived"`
	Version        int       `json:"version"`
	VersionHistory []Version `json:"versionHistory"`
}

// timestampLayout always carries three fractional digits so stored payloads
// read like JavaScript ISO strings ("2024-01-01T00:00:00.000Z").
const timestampLayout = "2006-01-02T15:04:05.000Z"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// MarshalJSON encodes UpdatedAt with millisecond precision.
func (v Version) MarshalJSON() ([]byte, error) {
	type version Version
	return json.Marshal(struct {
		version
		UpdatedAt string `json:"updatedAt"`
	}{version(v), formatTimestamp(v.UpdatedAt)})
}

// MarshalJSON encodes CreatedAt and UpdatedAt with millisecond precision.
func (p Prompt) MarshalJSON() ([]byte, error) {
	type prompt Prompt
	return json.Marshal(struct {
		prompt
		CreatedAt string `json:"createdAt"`
		UpdatedAt string `json:"updatedAt"`
	}{prompt(p), formatTimestamp(p.CreatedAt), formatTimestamp(p.UpdatedAt)})
}

func (p Prompt) clone() Prompt {
	p.Tags = cloneSlice(p.Tags)
	p.Examples = cloneSlice(p.Examples)
	p.VersionHistory = cloneSlice(p.VersionHistory)
	return p
}

// cloneSlice copies s, mapping nil to an empty slice so JSON output never
// carries null collections.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}

// CreateCommand carries the caller-supplied fields of a new prompt.
// Identity, timestamps, and versioning are always assigned by the repository.
type CreateCommand struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Text        string    `json:"text"`
	Tags        []string  `json:"tags"`
	LLMType     LLMType   `json:"llmType"`
	Examples    []Example `json:"examples"`
}

// UpdateCommand is a partial update. Nil fields are left unchanged.
// It deliberately has no id, createdAt, version, versionHistory, or
// isArchived fields, so none of those can be overridden.
type UpdateCommand struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Text        *string    `json:"text,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
	LLMType     *LLMType   `json:"llmType,omitempty"`
	Examples    *[]Example `json:"examples,omitempty"`
}

// Empty reports whether the command overrides nothing.
func (c UpdateCommand) Empty() bool {
	return c.Title == nil && c.Description == nil && c.Text == nil &&
		c.Tags == nil && c.LLMType == nil && c.Examples == nil
}
