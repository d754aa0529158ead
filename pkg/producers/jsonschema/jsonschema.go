package jsonschema

import (
	"fmt"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/vphpersson/json_type_generation/pkg/producers/generic"
	"github.com/vphpersson/json_type_generation/pkg/producers/jsonschema/types"
	typeGenerationTypesContext "github.com/vphpersson/json_type_generation/pkg/types/context"
	"github.com/vphpersson/json_type_generation/pkg/types/options"
	"github.com/vphpersson/json_type_generation/pkg/types/shape"
)

// Convert renders a JSON Schema document for s, titled after name.
func Convert(name string, s shape.Shape, generationOptions *options.Options) (string, error) {
	v, err := generic.Project(name, s, generationOptions)
	if err != nil {
		return "", fmt.Errorf("project: %w", err)
	}

	jsonschemaContext := types.Context{Context: typeGenerationTypesContext.New()}
	if err := jsonschemaContext.Add(name, v); err != nil {
		return "", fmt.Errorf("add: %w", err)
	}

	output, err := jsonschemaContext.RenderRoot()
	if err != nil {
		return "", motmedelErrors.New(fmt.Errorf("render: %w", err), jsonschemaContext)
	}

	return output, nil
}
