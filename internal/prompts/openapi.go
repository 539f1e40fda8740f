package prompts

import "github.com/JaimeStill/promptbook/pkg/openapi"

// Schemas returns the component schemas referenced by the prompt operations.
func Schemas() map[string]*openapi.Schema {
	llmTypes := make([]any, 0, len(LLMTypes()))
	for _, t := range LLMTypes() {
		llmTypes = append(llmTypes, string(t))
	}

	stringArray := &openapi.Schema{Type: "array", Items: &openapi.Schema{Type: "string"}}

	return map[string]*openapi.Schema{
		"Example": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"input":  {Type: "string"},
				"output": {Type: "string"},
			},
		},
		"Version": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"version":   {Type: "integer", Description: "Version the snapshot was taken from"},
				"text":      {Type: "string"},
				"updatedAt": {Type: "string", Format: "date-time"},
			},
		},
		"Prompt": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":             {Type: "string"},
				"title":          {Type: "string"},
				"description":    {Type: "string"},
				"text":           {Type: "string"},
				"tags":           stringArray,
				"llmType":        {Type: "string", Enum: llmTypes},
				"examples":       openapi.ArrayOf("Example"),
				"createdAt":      {Type: "string", Format: "date-time"},
				"updatedAt":      {Type: "string", Format: "date-time"},
				"isArchived":     {Type: "boolean"},
				"version":        {Type: "integer", Example: 1},
				"versionHistory": openapi.ArrayOf("Version"),
			},
		},
		"CreatePrompt": {
			Type:     "object",
			Required: []string{"title", "text"},
			Properties: map[string]*openapi.Schema{
				"title":       {Type: "string"},
				"description": {Type: "string"},
				"text":        {Type: "string"},
				"tags":        stringArray,
				"llmType":     {Type: "string", Enum: llmTypes, Default: string(DefaultLLMType)},
				"examples":    openapi.ArrayOf("Example"),
			},
		},
		"UpdatePrompt": {
			Type:        "object",
			Description: "Partial update. Omitted fields are unchanged.",
			Properties: map[string]*openapi.Schema{
				"title":       {Type: "string"},
				"description": {Type: "string"},
				"text":        {Type: "string"},
				"tags":        stringArray,
				"llmType":     {Type: "string", Enum: llmTypes},
				"examples":    openapi.ArrayOf("Example"),
			},
		},
		"PromptPage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        openapi.ArrayOf("Prompt"),
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}

var idParam = openapi.PathParam("id", "Prompt ID")

var listOp = &openapi.Operation{
	Summary: "List prompts",
	Parameters: []*openapi.Parameter{
		openapi.QueryParam("archived", "boolean", "false for the active view, true for the archive", false),
		openapi.QueryParam("search", "string", "Case-insensitive match on title, description, and tags", false),
		openapi.QueryParam("tags", "string", "Comma-separated tags a prompt must all carry", false),
		openapi.QueryParam("sort", "string", "date, title, or category", false),
		openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
		openapi.QueryParam("page_size", "integer", "Results per page", false),
	},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Matching prompts", "PromptPage"),
		400: openapi.ResponseRef("BadRequest"),
		503: openapi.ResponseRef("ServiceUnavailable"),
	},
}

var tagsOp = &openapi.Operation{
	Summary: "List tags in use",
	Responses: map[int]*openapi.Response{
		200: {
			Description: "Distinct tags in first-seen order",
			Content: map[string]*openapi.MediaType{
				"application/json": {Schema: &openapi.Schema{Type: "array", Items: &openapi.Schema{Type: "string"}}},
			},
		},
	},
}

var findOp = &openapi.Operation{
	Summary:    "Get a prompt",
	Parameters: []*openapi.Parameter{idParam},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Prompt", "Prompt"),
		404: openapi.ResponseRef("NotFound"),
	},
}

var historyOp = &openapi.Operation{
	Summary:    "Get a prompt's version history",
	Parameters: []*openapi.Parameter{idParam},
	Responses: map[int]*openapi.Response{
		200: {
			Description: "Snapshots taken before each content update, oldest first",
			Content: map[string]*openapi.MediaType{
				"application/json": {Schema: openapi.ArrayOf("Version")},
			},
		},
		404: openapi.ResponseRef("NotFound"),
	},
}

var createOp = &openapi.Operation{
	Summary:     "Add a prompt",
	RequestBody: openapi.RequestBodyJSON("CreatePrompt", true),
	Responses: map[int]*openapi.Response{
		201: openapi.ResponseJSON("Created prompt", "Prompt"),
		400: openapi.ResponseRef("BadRequest"),
	},
}

var updateOp = &openapi.Operation{
	Summary:     "Update a prompt",
	Description: "Snapshots the current text into the version history and increments the version.",
	Parameters:  []*openapi.Parameter{idParam},
	RequestBody: openapi.RequestBodyJSON("UpdatePrompt", true),
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Updated prompt", "Prompt"),
		400: openapi.ResponseRef("BadRequest"),
		404: openapi.ResponseRef("NotFound"),
	},
}

var deleteOp = &openapi.Operation{
	Summary:    "Delete a prompt",
	Parameters: []*openapi.Parameter{idParam},
	Responses: map[int]*openapi.Response{
		204: {Description: "Deleted"},
		404: openapi.ResponseRef("NotFound"),
	},
}

var deleteAllOp = &openapi.Operation{
	Summary:     "Delete every prompt",
	Description: "Removes the stored library. Memory is cleared only after the store confirms removal.",
	Responses: map[int]*openapi.Response{
		204: {Description: "Library cleared"},
		502: openapi.ResponseRef("BadGateway"),
	},
}

var archiveOp = &openapi.Operation{
	Summary:    "Archive a prompt",
	Parameters: []*openapi.Parameter{idParam},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Archived prompt", "Prompt"),
		404: openapi.ResponseRef("NotFound"),
	},
}

var restoreOp = &openapi.Operation{
	Summary:    "Restore an archived prompt",
	Parameters: []*openapi.Parameter{idParam},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Restored prompt", "Prompt"),
		404: openapi.ResponseRef("NotFound"),
	},
}
