package classfile

type MethodInfo struct {
	AccessFlags     AccessFlags
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []AttributeInfo
}

func (m *MethodInfo) Name(cp ConstantPool) string {
	return cp.GetUtf8(m.NameIndex)
}

func (m *MethodInfo) Descriptor(cp ConstantPool) string {
	return cp.GetUtf8(m.DescriptorIndex)
}

func (m *MethodInfo) IsStatic() bool    { return m.AccessFlags.Has(AccStatic) }
func (m *MethodInfo) IsAbstract() bool  { return m.AccessFlags.Has(AccAbstract) }
func (m *MethodInfo) IsNative() bool    { return m.AccessFlags.Has(AccNative) }
func (m *MethodInfo) IsVarargs() bool   { return m.AccessFlags.Has(AccVarargs) }
func (m *MethodInfo) IsBridge() bool    { return m.AccessFlags.Has(AccBridge) }
func (m *MethodInfo) IsSynthetic() bool { return m.AccessFlags.Has(AccSynthetic) }

func (m *MethodInfo) IsConstructor(cp ConstantPool) bool {
	return m.Name(cp) == "<init>"
}

func (m *MethodInfo) IsStaticInitializer(cp ConstantPool) bool {
	return m.Name(cp) == "<clinit>"
}

func (m *MethodInfo) ParsedDescriptor(cp ConstantPool) (*MethodSignature, error) {
	name, desc := m.Name(cp), m.Descriptor(cp)
	sig, ok := ParseMethodSignature(desc)
	if !ok {
		return nil, &DescriptorError{
			Index:      m.DescriptorIndex,
			Member:     "method " + name,
			Descriptor: desc,
			Kind:       "method descriptor",
		}
	}
	log.Debugf("method %s: %s", name, sig)
	return sig, nil
}
