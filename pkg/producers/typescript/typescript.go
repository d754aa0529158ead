package typescript

import (
	"fmt"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/vphpersson/json_type_generation/pkg/producers/generic"
	"github.com/vphpersson/json_type_generation/pkg/producers/typescript/types"
	typeGenerationTypesContext "github.com/vphpersson/json_type_generation/pkg/types/context"
	"github.com/vphpersson/json_type_generation/pkg/types/options"
	"github.com/vphpersson/json_type_generation/pkg/types/shape"
)

// Convert renders TypeScript declarations for s, with the root declaration named after name.
func Convert(name string, s shape.Shape, generationOptions *options.Options) (string, error) {
	v, err := generic.Project(name, s, generationOptions)
	if err != nil {
		return "", fmt.Errorf("project: %w", err)
	}

	tsContext := types.Context{Context: typeGenerationTypesContext.New()}
	if err := tsContext.Add(name, v); err != nil {
		return "", fmt.Errorf("add: %w", err)
	}

	output, err := tsContext.Render()
	if err != nil {
		return "", motmedelErrors.New(fmt.Errorf("render: %w", err), tsContext)
	}

	return output, nil
}
