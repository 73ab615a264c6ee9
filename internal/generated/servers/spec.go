package servers

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var openAPIDocument []byte

// Spec returns the raw OpenAPI document.
func Spec() []byte {
	return openAPIDocument
}

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// SwaggerInfo serves the document to the Swagger UI under the default
// instance name.
var SwaggerInfo = &swag.Spec{
	Title:            "GrubDash",
	Version:          "1.0.0",
	InfoInstanceName: swag.Name,
	SwaggerTemplate:  string(openAPIDocument),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
