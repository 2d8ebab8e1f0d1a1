package classfile

type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16
	ConstantPool ConstantPool
	AccessFlags  AccessFlags
	ThisClass    uint16
	SuperClass   uint16
	Interfaces   []uint16
	Fields       []FieldInfo
	Methods      []MethodInfo
	Attributes   []AttributeInfo
}

func (cf *ClassFile) ClassName() string {
	return cf.ConstantPool.GetClassName(cf.ThisClass)
}

func (cf *ClassFile) SuperClassName() string {
	if cf.SuperClass == 0 {
		return ""
	}
	return cf.ConstantPool.GetClassName(cf.SuperClass)
}

func (cf *ClassFile) InterfaceNames() []string {
	names := make([]string, len(cf.Interfaces))
	for i, idx := range cf.Interfaces {
		names[i] = cf.ConstantPool.GetClassName(idx)
	}
	return names
}

func (cf *ClassFile) GetField(name string) *FieldInfo {
	for i := range cf.Fields {
		if cf.Fields[i].Name(cf.ConstantPool) == name {
			return &cf.Fields[i]
		}
	}
	return nil
}

// GetMethod finds a method by name and, unless descriptor is empty, by its
// raw descriptor text.
func (cf *ClassFile) GetMethod(name, descriptor string) *MethodInfo {
	for i := range cf.Methods {
		m := &cf.Methods[i]
		if m.Name(cf.ConstantPool) == name && (descriptor == "" || m.Descriptor(cf.ConstantPool) == descriptor) {
			return m
		}
	}
	return nil
}

func (cf *ClassFile) GetAttribute(name string) *AttributeInfo {
	return findAttribute(cf.Attributes, cf.ConstantPool, name)
}

// CheckDescriptors parses the descriptor of every field and method and every
// descriptor referenced from the constant pool. It returns all failures,
// each a *DescriptorError.
func (cf *ClassFile) CheckDescriptors() []error {
	var errs []error
	checked := make(map[uint16]bool)
	for i := range cf.Fields {
		f := &cf.Fields[i]
		checked[f.DescriptorIndex] = true
		if _, err := f.ParsedDescriptor(cf.ConstantPool); err != nil {
			errs = append(errs, err)
		}
	}
	for i := range cf.Methods {
		m := &cf.Methods[i]
		checked[m.DescriptorIndex] = true
		if _, err := m.ParsedDescriptor(cf.ConstantPool); err != nil {
			errs = append(errs, err)
		}
	}
	for _, index := range cf.ConstantPool.DescriptorIndexes() {
		if checked[index] {
			continue
		}
		checked[index] = true
		if _, err := cf.ConstantPool.ParsedDescriptor(index); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
