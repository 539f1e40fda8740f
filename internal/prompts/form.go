package prompts

import (
	"slices"
	"strings"
)

// AddTag appends the trimmed tag unless it is blank or already present.
// Duplicates are suppressed by exact match; insertion order is kept.
func AddTag(tags []string, tag string) []string {
	tag = strings.TrimSpace(tag)
	if tag == "" || slices.Contains(tags, tag) {
		return tags
	}
	return append(tags, tag)
}

// RemoveTag removes the tag at index. Out-of-range indexes are ignored.
func RemoveTag(tags []string, index int) []string {
	if index < 0 || index >= len(tags) {
		return tags
	}
	return slices.Delete(slices.Clone(tags), index, index+1)
}

// CleanExamples drops examples whose input and output are both blank.
func CleanExamples(examples []Example) []Example {
	cleaned := make([]Example, 0, len(examples))
	for _, ex := range examples {
		if strings.TrimSpace(ex.Input) == "" && strings.TrimSpace(ex.Output) == "" {
			continue
		}
		cleaned = append(cleaned, ex)
	}
	return cleaned
}

// NormalizeTags runs every tag through AddTag.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		normalized = AddTag(normalized, tag)
	}
	return normalized
}

// Normalize applies the form rules to a create request: trimmed text fields,
// de-duplicated tags, and no blank examples.
func (c *CreateCommand) Normalize() {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)
	c.Text = strings.TrimSpace(c.Text)
	c.Tags = NormalizeTags(c.Tags)
	c.Examples = CleanExamples(c.Examples)
}

// Normalize applies the form rules to the fields an update sets.
func (c *UpdateCommand) Normalize() {
	for _, s := range []*string{c.Title, c.Description, c.Text} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	if c.Tags != nil {
		tags := NormalizeTags(*c.Tags)
		c.Tags = &tags
	}
	if c.Examples != nil {
		examples := CleanExamples(*c.Examples)
		c.Examples = &examples
	}
}
