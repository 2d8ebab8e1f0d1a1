package classfile

// AttributeInfo is an attribute kept as raw bytes. Attribute contents are not
// decoded; only their names are resolved.
type AttributeInfo struct {
	NameIndex uint16
	Info      []byte
}

func (a *AttributeInfo) Name(cp ConstantPool) string {
	return cp.GetUtf8(a.NameIndex)
}

func findAttribute(attrs []AttributeInfo, cp ConstantPool, name string) *AttributeInfo {
	for i := range attrs {
		if attrs[i].Name(cp) == name {
			return &attrs[i]
		}
	}
	return nil
}
