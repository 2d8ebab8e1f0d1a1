package classfile

import "github.com/dhamidi/jvmdesc/descriptor"

type FieldInfo struct {
	AccessFlags     AccessFlags
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []AttributeInfo
}

func (f *FieldInfo) Name(cp ConstantPool) string {
	return cp.GetUtf8(f.NameIndex)
}

func (f *FieldInfo) Descriptor(cp ConstantPool) string {
	return cp.GetUtf8(f.DescriptorIndex)
}

func (f *FieldInfo) IsStatic() bool    { return f.AccessFlags.Has(AccStatic) }
func (f *FieldInfo) IsFinal() bool     { return f.AccessFlags.Has(AccFinal) }
func (f *FieldInfo) IsSynthetic() bool { return f.AccessFlags.Has(AccSynthetic) }

func (f *FieldInfo) ParsedDescriptor(cp ConstantPool) (descriptor.FieldType, error) {
	name, desc := f.Name(cp), f.Descriptor(cp)
	ft, ok := descriptor.ParseFieldType(desc)
	if !ok {
		return descriptor.FieldType{}, &DescriptorError{
			Index:      f.DescriptorIndex,
			Member:     "field " + name,
			Descriptor: desc,
			Kind:       "field descriptor",
		}
	}
	log.Debugf("field %s: %s", name, ft)
	return ft, nil
}
