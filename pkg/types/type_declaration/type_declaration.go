package type_declaration

type TypeDeclaration interface {
	QualifiedName() string
}
