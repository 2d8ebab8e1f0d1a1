package classfile

import (
	"fmt"

	"github.com/dhamidi/jvmdesc/descriptor"
)

type ConstantPoolEntry interface {
	Tag() ConstantTag
}

type ConstantUtf8Info struct {
	Value string
}

func (c *ConstantUtf8Info) Tag() ConstantTag { return ConstantUtf8 }

// ConstantNumberInfo holds Integer, Float, Long and Double entries as their
// raw big-endian bits.
type ConstantNumberInfo struct {
	Kind ConstantTag
	Bits uint64
}

func (c *ConstantNumberInfo) Tag() ConstantTag { return c.Kind }

// ConstantIndexInfo is any entry that points at a single Utf8 entry: Class,
// String, MethodType, Module and Package.
type ConstantIndexInfo struct {
	Kind  ConstantTag
	Index uint16
}

func (c *ConstantIndexInfo) Tag() ConstantTag { return c.Kind }

// ConstantRefInfo covers Fieldref, Methodref and InterfaceMethodref.
type ConstantRefInfo struct {
	Kind             ConstantTag
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantRefInfo) Tag() ConstantTag { return c.Kind }

type ConstantNameAndTypeInfo struct {
	NameIndex       uint16
	DescriptorIndex uint16
}

func (c *ConstantNameAndTypeInfo) Tag() ConstantTag { return ConstantNameAndType }

type ConstantMethodHandleInfo struct {
	ReferenceKind  uint8
	ReferenceIndex uint16
}

func (c *ConstantMethodHandleInfo) Tag() ConstantTag { return ConstantMethodHandle }

// ConstantDynamicInfo covers Dynamic and InvokeDynamic.
type ConstantDynamicInfo struct {
	Kind                     ConstantTag
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

func (c *ConstantDynamicInfo) Tag() ConstantTag { return c.Kind }

// ConstantPool is indexed from 1 like the class file; slot 0 of the slice
// holds entry 1. The slot after a Long or Double entry is nil.
type ConstantPool []ConstantPoolEntry

func (cp ConstantPool) entry(index uint16) ConstantPoolEntry {
	if index == 0 || int(index) > len(cp) {
		return nil
	}
	return cp[index-1]
}

func (cp ConstantPool) GetUtf8(index uint16) string {
	if entry, ok := cp.entry(index).(*ConstantUtf8Info); ok {
		return entry.Value
	}
	return ""
}

func (cp ConstantPool) GetClassName(index uint16) string {
	if entry, ok := cp.entry(index).(*ConstantIndexInfo); ok && entry.Kind == ConstantClass {
		return cp.GetUtf8(entry.Index)
	}
	return ""
}

func (cp ConstantPool) GetNameAndType(index uint16) (name, descriptor string) {
	if entry, ok := cp.entry(index).(*ConstantNameAndTypeInfo); ok {
		return cp.GetUtf8(entry.NameIndex), cp.GetUtf8(entry.DescriptorIndex)
	}
	return "", ""
}

// PoolDescriptor is a descriptor read from the constant pool. Exactly one of
// Field and Method is set; a void method has a nil Method.Return.
type PoolDescriptor struct {
	Field  *descriptor.FieldType
	Method *MethodSignature
}

func (pd *PoolDescriptor) String() string {
	if pd.Field != nil {
		return pd.Field.String()
	}
	return pd.Method.String()
}

// ParsedDescriptor parses the Utf8 entry at index as a field descriptor or a
// method descriptor, accepting a V return.
func (cp ConstantPool) ParsedDescriptor(index uint16) (*PoolDescriptor, error) {
	entry, ok := cp.entry(index).(*ConstantUtf8Info)
	if !ok {
		return nil, fmt.Errorf("constant pool index %d: not a Utf8 entry", index)
	}
	if ft, ok := descriptor.ParseFieldType(entry.Value); ok {
		log.Debugf("constant pool #%d: %s", index, ft)
		return &PoolDescriptor{Field: &ft}, nil
	}
	if sig, ok := ParseMethodSignature(entry.Value); ok {
		log.Debugf("constant pool #%d: %s", index, sig)
		return &PoolDescriptor{Method: sig}, nil
	}
	return nil, &DescriptorError{Index: index, Descriptor: entry.Value, Kind: "descriptor"}
}

// DescriptorIndexes returns the Utf8 indexes used as descriptors by
// NameAndType and MethodType entries, in pool order and without duplicates.
func (cp ConstantPool) DescriptorIndexes() []uint16 {
	var out []uint16
	seen := make(map[uint16]bool)
	add := func(index uint16) {
		if !seen[index] {
			seen[index] = true
			out = append(out, index)
		}
	}
	for _, e := range cp {
		switch e := e.(type) {
		case *ConstantNameAndTypeInfo:
			add(e.DescriptorIndex)
		case *ConstantIndexInfo:
			if e.Kind == ConstantMethodType {
				add(e.Index)
			}
		}
	}
	return out
}
