package domain

// Generation tags for the built-in data type kinds.
const (
	TagAnyType    = "datatype/any"
	TagSimpleType = "datatype/simple"
)

// DataType describes the kind of value a pin carries and whether a
// value of one type may flow into a pin of another. Compatibility is
// directional and checked on every connection attempt, so an undefined
// variant pair must resolve to "not compatible" rather than fail.
type DataType interface {
	// ID returns the type identifier (e.g. "number").
	ID() string
	// CanTarget reports whether a value of this type may flow into a
	// pin of type other.
	CanTarget(other DataType) bool
	// CanSource is the mirror query: whether a pin of this type may
	// accept a value of type other.
	CanSource(other DataType) bool
	// GenTag returns the discriminant used by code generation.
	GenTag() string
}

// Compatible reports whether a value of type source may flow into a
// pin of type dest. Either endpoint may vouch for the pair: the source
// is asked whether it can target dest, then dest whether it can source
// from source. A pair neither side recognizes is not compatible.
func Compatible(source, dest DataType) bool {
	return source.CanTarget(dest) || dest.CanSource(source)
}

// AnyType is compatible with every type, in both directions.
type AnyType struct {
	id string
}

// NewAny creates an any-type with the given identifier.
func NewAny(id string) *AnyType {
	return &AnyType{id: id}
}

func (t *AnyType) ID() string { return t.id }

func (t *AnyType) CanTarget(other DataType) bool { return true }

func (t *AnyType) CanSource(other DataType) bool { return true }

func (t *AnyType) GenTag() string { return TagAnyType }

// SimpleType is compatible only with another SimpleType carrying an
// equal identifier. Compared against any other variant it reports
// false.
type SimpleType struct {
	id string
}

// NewSimple creates a simple type with the given identifier.
func NewSimple(id string) *SimpleType {
	return &SimpleType{id: id}
}

func (t *SimpleType) ID() string { return t.id }

func (t *SimpleType) CanTarget(other DataType) bool {
	s, ok := other.(*SimpleType)
	if !ok {
		return false
	}
	return t.id == s.id
}

func (t *SimpleType) CanSource(other DataType) bool {
	s, ok := other.(*SimpleType)
	if !ok {
		return false
	}
	return t.id == s.id
}

func (t *SimpleType) GenTag() string { return TagSimpleType }
