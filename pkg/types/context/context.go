package context

import (
	"fmt"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/vphpersson/json_type_generation/internal/naming"
	typeGenerationErrors "github.com/vphpersson/json_type_generation/pkg/errors"
	"github.com/vphpersson/json_type_generation/pkg/types/type_declaration"
	"github.com/vphpersson/json_type_generation/pkg/types/value"
)

// Context collects the declarations needed to render a value tree. Every record object in the
// tree gets one interface declaration.
type Context struct {
	TypeDeclarations        map[*value.Object]*type_declaration.InterfaceDeclaration
	TypeDeclarationsInOrder []type_declaration.TypeDeclaration
	Root                    type_declaration.TypeDeclaration

	usedQualifiedNames map[string]struct{}
	anonymousCount     int
}

func (g *Context) makeUniqueIdentifier(base string) string {
	id := base
	i := 2
	for {
		if _, exists := g.usedQualifiedNames[id]; !exists {
			return id
		}
		id = fmt.Sprintf("%s%d", base, i)
		i++
	}
}

func (g *Context) makeUniqueAnonymousIdentifier() string {
	g.anonymousCount++
	return fmt.Sprintf("Anonymous%d", g.anonymousCount)
}

func (g *Context) reserveIdentifier(name string) string {
	identifier := naming.Identifier(name)
	if identifier == "" {
		identifier = g.makeUniqueAnonymousIdentifier()
	}

	uniqueIdentifier := g.makeUniqueIdentifier(identifier)
	g.usedQualifiedNames[uniqueIdentifier] = struct{}{}

	return uniqueIdentifier
}

// elementName names the elements of a sequence or map called name. When the singular form does not
// differ from name, the element gets an Item suffix instead.
func elementName(name string) string {
	singular := naming.Singular(name)
	if singular == name && name != "" {
		return name + "Item"
	}
	return singular
}

// walk finds the records in v. Sequence and map elements are named by elementName, tuple and
// optional items keep the enclosing name.
func (g *Context) walk(name string, v value.Value) error {
	switch typedValue := v.(type) {
	case nil:
		return motmedelErrors.NewWithTrace(typeGenerationErrors.ErrNilValue, name)
	case value.Null, value.Primitive, value.Token:
		return nil
	case value.Array:
		if len(typedValue) != 1 {
			return motmedelErrors.NewWithTrace(typeGenerationErrors.ErrMalformedArrayTemplate, name, len(typedValue))
		}
		return g.walk(elementName(name), typedValue[0])
	case *value.Object:
		if typedValue == nil {
			return motmedelErrors.NewWithTrace(typeGenerationErrors.ErrNilValue, name)
		}

		tag, ok := typedValue.TypeTag()
		if !ok {
			_, err := g.GetOrCreateInterfaceDeclaration(name, typedValue)
			return err
		}

		wrapped, err := Wrapped(typedValue, tag)
		if err != nil {
			return err
		}

		switch tag {
		case value.TagTuple:
			for _, item := range wrapped.(value.Array) {
				if err := g.walk(name, item); err != nil {
					return err
				}
			}
			return nil
		case value.TagMap:
			return g.walk(elementName(name), wrapped)
		default:
			return g.walk(name, wrapped)
		}
	default:
		return motmedelErrors.NewWithTrace(fmt.Errorf("%w: %T", typeGenerationErrors.ErrUnsupportedValue, v), name)
	}
}

// Wrapped returns the value held by a tagged object. The items of a tuple are returned as an Array.
func Wrapped(object *value.Object, tag string) (value.Value, error) {
	var key string
	switch tag {
	case value.TagTuple:
		key = value.TupleItemsKey
	case value.TagMap:
		key = value.MapValuesKey
	case value.TagOptional:
		key = value.OptionalItemKey
	default:
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: %q", typeGenerationErrors.ErrUnknownTypeTag, tag), tag)
	}

	wrapped, ok := object.Get(key)
	if !ok || wrapped == nil {
		return nil, motmedelErrors.NewWithTrace(
			fmt.Errorf("%w (%s %s)", typeGenerationErrors.ErrNilValue, tag, key),
			object,
		)
	}

	if tag == value.TagTuple {
		if _, ok := wrapped.(value.Array); !ok {
			return nil, motmedelErrors.NewWithTrace(
				fmt.Errorf("%w: tuple items %T", typeGenerationErrors.ErrUnsupportedValue, wrapped),
				object,
			)
		}
	}

	return wrapped, nil
}

func (g *Context) GetOrCreateInterfaceDeclaration(
	name string,
	object *value.Object,
) (*type_declaration.InterfaceDeclaration, error) {
	if object == nil {
		return nil, motmedelErrors.NewWithTrace(typeGenerationErrors.ErrNilValue, name)
	}

	if existingTypeDeclaration, ok := g.TypeDeclarations[object]; ok {
		return existingTypeDeclaration, nil
	}

	interfaceDeclaration := &type_declaration.InterfaceDeclaration{
		Identifier: g.reserveIdentifier(name),
		Object:     object,
	}
	g.TypeDeclarations[object] = interfaceDeclaration

	for pair := object.Oldest(); pair != nil; pair = pair.Next() {
		fieldName, optional := value.FieldName(pair.Key)

		if err := g.walk(fieldName, pair.Value); err != nil {
			return nil, motmedelErrors.New(fmt.Errorf("walk: %w", err), fieldName)
		}

		interfaceDeclaration.Properties = append(
			interfaceDeclaration.Properties,
			&type_declaration.PropertySignature{
				Identifier: fieldName,
				Value:      pair.Value,
				Optional:   optional,
			},
		)
	}

	// Add the interface declaration to the ordered output after populating its properties, so that
	// declarations discovered in its properties appear before it.
	g.TypeDeclarationsInOrder = append(g.TypeDeclarationsInOrder, interfaceDeclaration)

	return interfaceDeclaration, nil
}

// Add registers the declarations of a projected value tree under the top-level name. A root that is
// not a record is declared as a type alias.
func (g *Context) Add(name string, v value.Value) error {
	if object, ok := v.(*value.Object); ok {
		if _, isTagged := object.TypeTag(); !isTagged {
			interfaceDeclaration, err := g.GetOrCreateInterfaceDeclaration(name, object)
			if err != nil {
				return fmt.Errorf("get or create interface declaration: %w", err)
			}
			g.Root = interfaceDeclaration
			return nil
		}
	}

	identifier := g.reserveIdentifier(name)
	if err := g.walk(name, v); err != nil {
		return fmt.Errorf("walk: %w", err)
	}

	typeAliasDeclaration := &type_declaration.TypeAliasDeclaration{Identifier: identifier, Value: v}
	g.TypeDeclarationsInOrder = append(g.TypeDeclarationsInOrder, typeAliasDeclaration)
	g.Root = typeAliasDeclaration

	return nil
}

func New() *Context {
	return &Context{
		TypeDeclarations:        map[*value.Object]*type_declaration.InterfaceDeclaration{},
		TypeDeclarationsInOrder: []type_declaration.TypeDeclaration{},
		usedQualifiedNames:      map[string]struct{}{},
	}
}
