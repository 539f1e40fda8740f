package prompts_test

import (
	"errors"
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/JaimeStill/promptbook/internal/prompts"
)

func fixture() []prompts.Prompt {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []prompts.Prompt{
		{ID: "a", Title: "Email Writer", Description: "Business replies", Tags: []string{"email", "business"}, CreatedAt: day},
		{ID: "b", Title: "code docs", Description: "Documentation", Tags: []string{"programming"}, CreatedAt: day.Add(48 * time.Hour)},
		{ID: "c", Title: "Blog Outline", Description: "Writing help", Tags: []string{"writing", "business"}, CreatedAt: day.Add(24 * time.Hour), IsArchived: true},
	}
}

func ids(ps []prompts.Prompt) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestFiltersApply(t *testing.T) {
	active := false
	archived := true

	tests := []struct {
		name    string
		filters prompts.Filters
		want    []string
	}{
		{"zero value keeps order", prompts.Filters{}, []string{"a", "b", "c"}},
		{"active view", prompts.Filters{Archived: &active}, []string{"a", "b"}},
		{"archived view", prompts.Filters{Archived: &archived}, []string{"c"}},
		{"search title case-insensitive", prompts.Filters{Search: "EMAIL"}, []string{"a"}},
		{"search description", prompts.Filters{Search: "documentation"}, []string{"b"}},
		{"search tags", prompts.Filters{Search: "progr"}, []string{"b"}},
		{"search without match", prompts.Filters{Search: "nothing"}, []string{}},
		{"search is not trimmed", prompts.Filters{Search: " email"}, []string{}},
		{"all tags required", prompts.Filters{Tags: []string{"business", "email"}}, []string{"a"}},
		{"shared tag", prompts.Filters{Tags: []string{"business"}}, []string{"a", "c"}},
		{"sort by date newest first", prompts.Filters{Sort: prompts.SortDate}, []string{"b", "c", "a"}},
		{"sort by title", prompts.Filters{Sort: prompts.SortTitle}, []string{"c", "b", "a"}},
		{"sort by category", prompts.Filters{Sort: prompts.SortCategory}, []string{"a", "b", "c"}},
		{"combined", prompts.Filters{Archived: &active, Tags: []string{"business"}, Sort: prompts.SortTitle}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := fixture()
			got := ids(tt.filters.Apply(input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if !reflect.DeepEqual(ids(input), []string{"a", "b", "c"}) {
				t.Error("input slice was reordered")
			}
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		input   string
		want    prompts.Sort
		wantErr bool
	}{
		{"", prompts.SortNone, false},
		{"date", prompts.SortDate, false},
		{" Title ", prompts.SortTitle, false},
		{"CATEGORY", prompts.SortCategory, false},
		{"popularity", prompts.SortNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := prompts.ParseSort(tt.input)
			if tt.wantErr {
				if !errors.Is(err, prompts.ErrBadFilter) {
					t.Errorf("error = %v, want ErrBadFilter", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	values := url.Values{
		"archived": {"true"},
		"search":   {"  blog "},
		"tags":     {"writing,business", "writing", " "},
		"sort":     {"title"},
	}

	f, err := prompts.FiltersFromQuery(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.Archived == nil || !*f.Archived {
		t.Error("archived should be true")
	}
	if f.Search != "  blog " {
		t.Errorf("search: got %q", f.Search)
	}
	if !reflect.DeepEqual(f.Tags, []string{"writing", "business"}) {
		t.Errorf("tags: got %v", f.Tags)
	}
	if f.Sort != prompts.SortTitle {
		t.Errorf("sort: got %q", f.Sort)
	}
}

func TestFiltersFromQueryErrors(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
	}{
		{"archived not boolean", url.Values{"archived": {"maybe"}}},
		{"unknown sort", url.Values{"sort": {"random"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := prompts.FiltersFromQuery(tt.values)
			if !errors.Is(err, prompts.ErrBadFilter) {
				t.Errorf("error = %v, want ErrBadFilter", err)
			}
			if prompts.MapHTTPStatus(err) != 400 {
				t.Errorf("status: got %d, want 400", prompts.MapHTTPStatus(err))
			}
		})
	}
}
