package generic

import (
	"fmt"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/vphpersson/json_type_generation/pkg/producers/generic/types"
	"github.com/vphpersson/json_type_generation/pkg/types/options"
	"github.com/vphpersson/json_type_generation/pkg/types/shape"
	"github.com/vphpersson/json_type_generation/pkg/types/value"
)

// Project returns the generic value tree of s under the top-level name.
func Project(name string, s shape.Shape, generationOptions *options.Options) (value.Value, error) {
	genericContext := types.New(generationOptions)

	v, err := genericContext.TypeFromShape(name, s)
	if err != nil {
		return nil, fmt.Errorf("type from shape: %w", err)
	}

	return v, nil
}

// Convert projects s under the top-level name and pretty-prints the resulting value tree.
func Convert(name string, s shape.Shape, generationOptions *options.Options) (string, error) {
	v, err := Project(name, s, generationOptions)
	if err != nil {
		return "", fmt.Errorf("project: %w", err)
	}

	if generationOptions == nil {
		generationOptions = options.Default()
	}

	output, err := value.PrettyPrint(generationOptions.Indent, v)
	if err != nil {
		return "", motmedelErrors.New(fmt.Errorf("pretty print: %w", err), v)
	}

	return output, nil
}
