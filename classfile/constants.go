package classfile

const (
	Magic = 0xCAFEBABE
)

type AccessFlags uint16

const (
	AccPublic       AccessFlags = 0x0001
	AccPrivate      AccessFlags = 0x0002
	AccProtected    AccessFlags = 0x0004
	AccStatic       AccessFlags = 0x0008
	AccFinal        AccessFlags = 0x0010
	AccSynchronized AccessFlags = 0x0020
	AccVolatile     AccessFlags = 0x0040
	AccBridge       AccessFlags = 0x0040
	AccTransient    AccessFlags = 0x0080
	AccVarargs      AccessFlags = 0x0080
	AccNative       AccessFlags = 0x0100
	AccInterface    AccessFlags = 0x0200
	AccAbstract     AccessFlags = 0x0400
	AccSynthetic    AccessFlags = 0x1000
	AccAnnotation   AccessFlags = 0x2000
	AccEnum         AccessFlags = 0x4000
	AccModule       AccessFlags = 0x8000
)

func (f AccessFlags) Has(flag AccessFlags) bool { return f&flag != 0 }

// Visibility returns the Java keyword for the access level, or "package".
func (f AccessFlags) Visibility() string {
	switch {
	case f.Has(AccPublic):
		return "public"
	case f.Has(AccProtected):
		return "protected"
	case f.Has(AccPrivate):
		return "private"
	}
	return "package"
}

type ConstantTag uint8

const (
	ConstantUtf8               ConstantTag = 1
	ConstantInteger            ConstantTag = 3
	ConstantFloat              ConstantTag = 4
	ConstantLong               ConstantTag = 5
	ConstantDouble             ConstantTag = 6
	ConstantClass              ConstantTag = 7
	ConstantString             ConstantTag = 8
	ConstantFieldref           ConstantTag = 9
	ConstantMethodref          ConstantTag = 10
	ConstantInterfaceMethodref ConstantTag = 11
	ConstantNameAndType        ConstantTag = 12
	ConstantMethodHandle       ConstantTag = 15
	ConstantMethodType         ConstantTag = 16
	ConstantDynamic            ConstantTag = 17
	ConstantInvokeDynamic      ConstantTag = 18
	ConstantModule             ConstantTag = 19
	ConstantPackage            ConstantTag = 20
)

func (t ConstantTag) String() string {
	switch t {
	case ConstantUtf8:
		return "Utf8"
	case ConstantInteger:
		return "Integer"
	case ConstantFloat:
		return "Float"
	case ConstantLong:
		return "Long"
	case ConstantDouble:
		return "Double"
	case ConstantClass:
		return "Class"
	case ConstantString:
		return "String"
	case ConstantFieldref:
		return "Fieldref"
	case ConstantMethodref:
		return "Methodref"
	case ConstantInterfaceMethodref:
		return "InterfaceMethodref"
	case ConstantNameAndType:
		return "NameAndType"
	case ConstantMethodHandle:
		return "MethodHandle"
	case ConstantMethodType:
		return "MethodType"
	case ConstantDynamic:
		return "Dynamic"
	case ConstantInvokeDynamic:
		return "InvokeDynamic"
	case ConstantModule:
		return "Module"
	case ConstantPackage:
		return "Package"
	}
	return "Unknown"
}
