package classfile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/jvmdesc/descriptor"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("jvmdesc.classfile")

var ErrInvalidDescriptor = errors.New("invalid descriptor")

// DescriptorError reports a descriptor that failed to parse, along with the
// constant pool index it was read from.
type DescriptorError struct {
	Index      uint16
	Member     string
	Descriptor string
	Kind       string
}

func (e *DescriptorError) Error() string {
	if e.Member != "" {
		return fmt.Sprintf("%s: invalid %s %q at constant pool index %d", e.Member, e.Kind, e.Descriptor, e.Index)
	}
	return fmt.Sprintf("invalid %s %q at constant pool index %d", e.Kind, e.Descriptor, e.Index)
}

func (e *DescriptorError) Is(target error) bool {
	return target == ErrInvalidDescriptor
}

// MethodSignature is a method descriptor as found in a class file. Return is
// nil for void methods.
type MethodSignature struct {
	Params []descriptor.FieldType
	Return *descriptor.FieldType
}

func (ms *MethodSignature) IsVoid() bool {
	return ms.Return == nil
}

func (ms *MethodSignature) String() string {
	params := make([]string, len(ms.Params))
	for i, p := range ms.Params {
		params[i] = p.String()
	}
	ret := "void"
	if ms.Return != nil {
		ret = ms.Return.String()
	}
	return "(" + strings.Join(params, ", ") + ") " + ret
}

// ParseMethodSignature parses a method descriptor, also accepting a V
// return. V is not a field type, so a void descriptor is parsed with an int
// placeholder in its place which is then dropped.
func ParseMethodSignature(desc string) (*MethodSignature, bool) {
	if trimmed, ok := strings.CutSuffix(desc, ")V"); ok {
		mt, ok := descriptor.ParseMethodType(trimmed + ")I")
		if !ok {
			return nil, false
		}
		return &MethodSignature{Params: mt.Params}, true
	}
	mt, ok := descriptor.ParseMethodType(desc)
	if !ok {
		return nil, false
	}
	ret := mt.Ret
	return &MethodSignature{Params: mt.Params, Return: &ret}, true
}

func InternalToSourceName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

func SourceToInternalName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}
