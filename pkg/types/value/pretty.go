package value

import (
	"encoding/json"
	"fmt"
	"strings"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	typeGenerationErrors "github.com/vphpersson/json_type_generation/pkg/errors"
)

const indentUnit = "  "

// PrettyPrint renders the tree as indented JSON. Lines after the first are indented by indent
// levels, so the output can be embedded at that depth.
func PrettyPrint(indent int, v Value) (string, error) {
	if v == nil {
		return "", motmedelErrors.NewWithTrace(typeGenerationErrors.ErrNilValue)
	}

	data, err := json.MarshalIndent(v, strings.Repeat(indentUnit, max(indent, 0)), indentUnit)
	if err != nil {
		return "", motmedelErrors.NewWithTrace(fmt.Errorf("json marshal indent: %w", err), v)
	}

	return string(data), nil
}
