package api

import (
	"github.com/Adhya2325/letter-generation/internal/config"
	"github.com/Adhya2325/letter-generation/internal/instructions"
	"github.com/Adhya2325/letter-generation/pkg/openapi"
)

func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"LetterType":    letterTypeSchema(),
		"LetterRequest": letterRequestSchema(),
		"Letter":        letterSchema(),
		"StageContent":  stageContentSchema(),
		"TypeContent":   typeContentSchema(),
	})

	spec.Paths["/letters"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Generate a letter",
			Description: "Runs the drafting, formatting, and compliance pipeline and returns the letter as JSON.",
			Tags:        []string{"letters"},
			RequestBody: openapi.RequestBodyJSON("LetterRequest", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Generated letter", "Letter"),
				400: openapi.ResponseRef("BadRequest"),
				422: openapi.ResponseRef("UnprocessableEntity"),
				502: openapi.ResponseRef("BadGateway"),
			},
		},
	}

	spec.Paths["/letters/file"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Generate a letter as a file download",
			Description: "Runs the generation pipeline and returns the letter body as a plain text attachment.",
			Tags:        []string{"letters"},
			RequestBody: openapi.RequestBodyJSON("LetterRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseText("Letter text attachment"),
				400: openapi.ResponseRef("BadRequest"),
				422: openapi.ResponseRef("UnprocessableEntity"),
				502: openapi.ResponseRef("BadGateway"),
			},
		},
	}

	spec.Paths["/letters/types"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List letter types available for generation",
			Tags:    []string{"letters"},
			Responses: map[int]*openapi.Response{
				200: listResponse("Letter types", openapi.SchemaRef("LetterType")),
			},
		},
	}

	spec.Paths["/instructions"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List letter types covered by the canonical document",
			Tags:    []string{"instructions"},
			Responses: map[int]*openapi.Response{
				200: listResponse("Letter types", openapi.SchemaRef("TypeContent")),
			},
		},
	}

	spec.Paths["/instructions/stages"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List pipeline stages",
			Tags:    []string{"instructions"},
			Responses: map[int]*openapi.Response{
				200: listResponse("Pipeline stages", &openapi.Schema{Type: "string"}),
			},
		},
	}

	spec.Paths["/instructions/stages/{stage}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Get the instruction text for a pipeline stage",
			Tags:       []string{"instructions"},
			Parameters: []*openapi.Parameter{stageParam()},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Stage instructions", "StageContent"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/instructions/stages/{stage}/spec"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Get the output contract for a pipeline stage",
			Tags:       []string{"instructions"},
			Parameters: []*openapi.Parameter{stageParam()},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Stage output contract", "StageContent"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/instructions/{type}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Get the canonical excerpt for a letter type",
			Tags:       []string{"instructions"},
			Parameters: []*openapi.Parameter{typeParam()},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Canonical excerpt", "TypeContent"),
				400: openapi.ResponseRef("BadRequest"),
				422: openapi.ResponseRef("UnprocessableEntity"),
			},
		},
	}

	spec.Paths["/instructions/{type}/notices"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Get the required notices for a letter type",
			Tags:       []string{"instructions"},
			Parameters: []*openapi.Parameter{typeParam()},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Required notice phrases", "TypeContent"),
				400: openapi.ResponseRef("BadRequest"),
				422: openapi.ResponseRef("UnprocessableEntity"),
			},
		},
	}

	return spec
}

func letterTypeSchema() *openapi.Schema {
	types := instructions.LetterTypes()
	values := make([]any, len(types))
	for i, t := range types {
		values[i] = string(t)
	}

	return &openapi.Schema{
		Type:        "string",
		Description: "Letter type identifier",
		Enum:        values,
	}
}

func letterRequestSchema() *openapi.Schema {
	return &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"letter_type":            openapi.SchemaRef("LetterType"),
			"company_name":           {Type: "string"},
			"insured_name":           {Type: "string"},
			"policy_number":          {Type: "string"},
			"claim_number":           {Type: "string"},
			"contact_phone":          {Type: "string"},
			"response_deadline_days": {Type: "integer", Description: "Zero means no response deadline applies"},
			"notes":                  {Type: "string"},
		},
		Required: []string{
			"letter_type", "company_name", "insured_name",
			"policy_number", "claim_number",
		},
	}
}

func letterSchema() *openapi.Schema {
	return &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":              {Type: "string", Format: "uuid"},
			"letter_type":     openapi.SchemaRef("LetterType"),
			"company_name":    {Type: "string"},
			"insured_name":    {Type: "string"},
			"policy_number":   {Type: "string"},
			"claim_number":    {Type: "string"},
			"content":         {Type: "string"},
			"notices_applied": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			"generated_at":    {Type: "string", Format: "date-time"},
			"model_name":      {Type: "string"},
			"provider_name":   {Type: "string"},
		},
	}
}

func stageContentSchema() *openapi.Schema {
	return &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"stage":   {Type: "string"},
			"content": {Type: "string"},
		},
	}
}

func typeContentSchema() *openapi.Schema {
	return &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"type":    openapi.SchemaRef("LetterType"),
			"display": {Type: "string"},
			"content": {Type: "string"},
			"notices": {Type: "array", Items: &openapi.Schema{Type: "string"}},
		},
	}
}

func listResponse(description string, items *openapi.Schema) *openapi.Response {
	return &openapi.Response{
		Description: description,
		Content: map[string]*openapi.MediaType{
			"application/json": {
				Schema: &openapi.Schema{Type: "array", Items: items},
			},
		},
	}
}

func stageParam() *openapi.Parameter {
	return openapi.PathParam("stage", "Pipeline stage: draft, format, or comply")
}

func typeParam() *openapi.Parameter {
	return openapi.PathParam("type", "Letter type identifier")
}
