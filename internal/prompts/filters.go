package prompts

import (
	"cmp"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Sort orders a prompt listing.
type Sort string

const (
	// SortNone keeps collection order.
	SortNone     Sort = ""
	SortDate     Sort = "date"
	SortTitle    Sort = "title"
	SortCategory Sort = "category"
)

// ParseSort validates a sort name.
func ParseSort(s string) (Sort, error) {
	switch sort := Sort(strings.ToLower(strings.TrimSpace(s))); sort {
	case SortNone, SortDate, SortTitle, SortCategory:
		return sort, nil
	}
	return SortNone, fmt.Errorf("%w: sort must be date, title, or category", ErrBadFilter)
}

// Filters contains optional listing criteria. Zero values are ignored.
// Archived selects the active (false) or archived (true) view; nil lists both.
// Search is a case-insensitive substring match over title, description, and tags.
// A prompt matches Tags only when it carries every listed tag.
type Filters struct {
	Archived *bool    `json:"archived,omitempty"`
	Search   string   `json:"search,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Sort     Sort     `json:"sort,omitempty"`
}

// Apply returns the prompts matching f in the order f requests.
// The input slice is not modified.
func (f Filters) Apply(prompts []Prompt) []Prompt {
	fold := cases.Fold()
	query := fold.String(f.Search)

	matched := make([]Prompt, 0, len(prompts))
	for _, p := range prompts {
		if f.Archived != nil && p.IsArchived != *f.Archived {
			continue
		}
		if query != "" && !matchesSearch(fold, p, query) {
			continue
		}
		if !hasAllTags(p, f.Tags) {
			continue
		}
		matched = append(matched, p)
	}

	sortPrompts(fold, matched, f.Sort)
	return matched
}

func matchesSearch(fold cases.Caser, p Prompt, query string) bool {
	if strings.Contains(fold.String(p.Title), query) ||
		strings.Contains(fold.String(p.Description), query) {
		return true
	}
	return slices.ContainsFunc(p.Tags, func(tag string) bool {
		return strings.Contains(fold.String(tag), query)
	})
}

func hasAllTags(p Prompt, tags []string) bool {
	for _, tag := range tags {
		if !slices.Contains(p.Tags, tag) {
			return false
		}
	}
	return true
}

func sortPrompts(fold cases.Caser, prompts []Prompt, sort Sort) {
	switch sort {
	case SortDate:
		slices.SortStableFunc(prompts, func(a, b Prompt) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortTitle:
		slices.SortStableFunc(prompts, func(a, b Prompt) int {
			return cmp.Compare(fold.String(a.Title), fold.String(b.Title))
		})
	case SortCategory:
		slices.SortStableFunc(prompts, func(a, b Prompt) int {
			return cmp.Or(
				cmp.Compare(fold.String(category(a)), fold.String(category(b))),
				cmp.Compare(fold.String(a.Title), fold.String(b.Title)),
			)
		})
	}
}

// category is the first tag, which the library treats as the prompt's category.
func category(p Prompt) string {
	if len(p.Tags) == 0 {
		return ""
	}
	return p.Tags[0]
}

// FiltersFromQuery extracts filter values from URL query parameters.
// Tags may be repeated or comma-separated.
func FiltersFromQuery(values url.Values) (Filters, error) {
	var f Filters

	if a := values.Get("archived"); a != "" {
		v, err := strconv.ParseBool(a)
		if err != nil {
			return f, fmt.Errorf("%w: archived must be a boolean", ErrBadFilter)
		}
		f.Archived = &v
	}

	f.Search = values.Get("search")

	for _, raw := range values["tags"] {
		for tag := range strings.SplitSeq(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" && !slices.Contains(f.Tags, tag) {
				f.Tags = append(f.Tags, tag)
			}
		}
	}

	sort, err := ParseSort(values.Get("sort"))
	if err != nil {
		return f, err
	}
	f.Sort = sort

	return f, nil
}
