package theme

import "github.com/JaimeStill/promptbook/pkg/openapi"

// Schemas returns the component schemas referenced by the theme operations.
func Schemas() map[string]*openapi.Schema {
	themes := make([]any, 0, len(Themes()))
	for _, t := range Themes() {
		themes = append(themes, string(t))
	}

	return map[string]*openapi.Schema{
		"ThemeState": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"theme":  {Type: "string", Enum: themes},
				"host":   {Type: "string", Enum: []any{"light", "dark"}},
				"isDark": {Type: "boolean", Description: "Effective appearance; never stored"},
			},
		},
		"SetTheme": {
			Type:     "object",
			Required: []string{"theme"},
			Properties: map[string]*openapi.Schema{
				"theme": {Type: "string", Enum: themes},
			},
		},
	}
}

var hostParams = []*openapi.Parameter{
	openapi.QueryParam("host", "string", "Host color scheme (light or dark)", false),
	openapi.HeaderParam(HostHeader, "Host color scheme client hint"),
}

var getOp = &openapi.Operation{
	Summary:    "Get the theme preference",
	Parameters: hostParams,
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Theme state", "ThemeState"),
	},
}

var setOp = &openapi.Operation{
	Summary:     "Set the theme preference",
	Parameters:  hostParams,
	RequestBody: openapi.RequestBodyJSON("SetTheme", true),
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Theme state", "ThemeState"),
		400: openapi.ResponseRef("BadRequest"),
	},
}
