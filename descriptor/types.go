package descriptor

import (
	"slices"
	"strings"
)

type Kind uint8

const (
	Invalid Kind = iota
	Byte
	Char
	Double
	Float
	Int
	Long
	Short
	Boolean
	Reference
)

func (k Kind) String() string {
	switch k {
	case Byte:
		return "byte"
	case Char:
		return "char"
	case Double:
		return "double"
	case Float:
		return "float"
	case Int:
		return "int"
	case Long:
		return "long"
	case Short:
		return "short"
	case Boolean:
		return "boolean"
	case Reference:
		return "reference"
	default:
		return "invalid"
	}
}

// BaseType is a primitive type or a class reference, without array
// dimensions. Name is only set for Reference and never contains ';'.
type BaseType struct {
	Kind Kind
	Name string
}

func Primitive(k Kind) BaseType {
	return BaseType{Kind: k}
}

func Ref(name string) BaseType {
	return BaseType{Kind: Reference, Name: name}
}

func (b BaseType) IsPrimitive() bool {
	return b.Kind >= Byte && b.Kind <= Boolean
}

func (b BaseType) IsReference() bool {
	return b.Kind == Reference
}

// Field returns b as a scalar field type.
func (b BaseType) Field() FieldType {
	return FieldType{Base: b}
}

// String renders b the way Java source spells it.
func (b BaseType) String() string {
	if b.Kind == Reference {
		return strings.ReplaceAll(b.Name, "/", ".")
	}
	return b.Kind.String()
}

// Descriptor is either a FieldType or a MethodType.
type Descriptor interface {
	String() string
	isDescriptor()
}

type FieldType struct {
	Base       BaseType
	ArrayDepth uint8
}

func (FieldType) isDescriptor() {}

func (ft FieldType) IsArray() bool {
	return ft.ArrayDepth > 0
}

func (ft FieldType) IsPrimitive() bool {
	return ft.ArrayDepth == 0 && ft.Base.IsPrimitive()
}

func (ft FieldType) IsReference() bool {
	return ft.ArrayDepth > 0 || ft.Base.IsReference()
}

// ElementType strips one array dimension. Scalars are returned unchanged.
func (ft FieldType) ElementType() FieldType {
	if ft.ArrayDepth == 0 {
		return ft
	}
	return FieldType{Base: ft.Base, ArrayDepth: ft.ArrayDepth - 1}
}

func (ft FieldType) String() string {
	var sb strings.Builder
	sb.WriteString(ft.Base.String())
	for i := uint8(0); i < ft.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

type MethodType struct {
	Params []FieldType
	Ret    FieldType
}

func (MethodType) isDescriptor() {}

func (mt MethodType) Equal(other MethodType) bool {
	return mt.Ret == other.Ret && slices.Equal(mt.Params, other.Params)
}

func (mt MethodType) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range mt.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(") ")
	sb.WriteString(mt.Ret.String())
	return sb.String()
}

// Equal reports whether a and b are the same kind of descriptor with equal
// contents. Descriptors holding a MethodType must not be compared with ==.
func Equal(a, b Descriptor) bool {
	switch a := a.(type) {
	case FieldType:
		b, ok := b.(FieldType)
		return ok && a == b
	case MethodType:
		b, ok := b.(MethodType)
		return ok && a.Equal(b)
	}
	return a == nil && b == nil
}
