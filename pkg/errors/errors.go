package errors

import (
	"errors"
)

var (
	ErrNilShape         = errors.New("nil shape")
	ErrUnsupportedShape = errors.New("unsupported shape")
	ErrNestedOptional   = errors.New("nested optional")
	ErrNilValue         = errors.New("nil value")
	ErrUnsupportedValue = errors.New("unsupported value")
	ErrUnknownTypeTag         = errors.New("unknown type tag")
	ErrMalformedArrayTemplate = errors.New("malformed array template")
	ErrUnsupportedPrimitive   = errors.New("unsupported primitive")
	ErrNilTypeDeclaration     = errors.New("nil type declaration")
)
