package classfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

type reader struct {
	r   io.Reader
	err error
}

func (r *reader) readU1() uint8 {
	if r.err != nil {
		return 0
	}
	var buf [1]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return buf[0]
}

func (r *reader) readU2() uint16 {
	if r.err != nil {
		return 0
	}
	var buf [2]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return binary.BigEndian.Uint16(buf[:])
}

func (r *reader) readU4() uint32 {
	if r.err != nil {
		return 0
	}
	var buf [4]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return binary.BigEndian.Uint32(buf[:])
}

func (r *reader) readBytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	// n comes from the file, so the buffer only grows as bytes arrive.
	var buf bytes.Buffer
	_, r.err = io.CopyN(&buf, r.r, int64(n))
	if r.err == io.EOF {
		r.err = io.ErrUnexpectedEOF
	}
	return buf.Bytes()
}

func ParseFile(path string) (*ClassFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open class file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(rd io.Reader) (*ClassFile, error) {
	r := &reader{r: rd}

	magic := r.readU4()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", r.err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("invalid magic number: 0x%X (expected 0xCAFEBABE)", magic)
	}

	cf := &ClassFile{
		MinorVersion: r.readU2(),
		MajorVersion: r.readU2(),
	}
	if r.err != nil {
		return nil, fmt.Errorf("failed to read version: %w", r.err)
	}

	constantPoolCount := r.readU2()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read constant pool count: %w", r.err)
	}
	if constantPoolCount == 0 {
		return nil, fmt.Errorf("invalid constant pool count: 0")
	}

	cf.ConstantPool = make(ConstantPool, constantPoolCount-1)
	for i := uint16(1); i < constantPoolCount; i++ {
		entry, skip, err := readConstantPoolEntry(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read constant pool entry %d: %w", i, err)
		}
		cf.ConstantPool[i-1] = entry
		if skip {
			i++
			if i < constantPoolCount {
				cf.ConstantPool[i-1] = nil
			}
		}
	}

	cf.AccessFlags = AccessFlags(r.readU2())
	cf.ThisClass = r.readU2()
	cf.SuperClass = r.readU2()

	var err error
	if cf.Interfaces, err = readTable(r, "interface", func(r *reader) (uint16, error) {
		index := r.readU2()
		return index, r.err
	}); err != nil {
		return nil, err
	}
	if cf.Fields, err = readTable(r, "field", readMember[FieldInfo]); err != nil {
		return nil, err
	}
	if cf.Methods, err = readTable(r, "method", readMember[MethodInfo]); err != nil {
		return nil, err
	}
	if cf.Attributes, err = readTable(r, "attribute", readAttributeInfo); err != nil {
		return nil, err
	}

	log.Debugf("parsed class %s: %d constants, %d fields, %d methods",
		cf.ClassName(), len(cf.ConstantPool), len(cf.Fields), len(cf.Methods))
	return cf, nil
}

func readConstantPoolEntry(r *reader) (ConstantPoolEntry, bool, error) {
	tag := ConstantTag(r.readU1())
	if r.err != nil {
		return nil, false, r.err
	}

	var entry ConstantPoolEntry
	wide := false
	switch tag {
	case ConstantUtf8:
		length := r.readU2()
		entry = &ConstantUtf8Info{Value: decodeModifiedUtf8(r.readBytes(int(length)))}
	case ConstantInteger, ConstantFloat:
		entry = &ConstantNumberInfo{Kind: tag, Bits: uint64(r.readU4())}
	case ConstantLong, ConstantDouble:
		high := r.readU4()
		low := r.readU4()
		entry = &ConstantNumberInfo{Kind: tag, Bits: uint64(high)<<32 | uint64(low)}
		wide = true
	case ConstantClass, ConstantString, ConstantMethodType, ConstantModule, ConstantPackage:
		entry = &ConstantIndexInfo{Kind: tag, Index: r.readU2()}
	case ConstantFieldref, ConstantMethodref, ConstantInterfaceMethodref:
		entry = &ConstantRefInfo{Kind: tag, ClassIndex: r.readU2(), NameAndTypeIndex: r.readU2()}
	case ConstantNameAndType:
		entry = &ConstantNameAndTypeInfo{NameIndex: r.readU2(), DescriptorIndex: r.readU2()}
	case ConstantMethodHandle:
		entry = &ConstantMethodHandleInfo{ReferenceKind: r.readU1(), ReferenceIndex: r.readU2()}
	case ConstantDynamic, ConstantInvokeDynamic:
		entry = &ConstantDynamicInfo{Kind: tag, BootstrapMethodAttrIndex: r.readU2(), NameAndTypeIndex: r.readU2()}
	default:
		return nil, false, fmt.Errorf("unknown constant pool tag: %d", tag)
	}
	if r.err != nil {
		return nil, false, r.err
	}
	return entry, wide, nil
}

// readTable reads a u2 count followed by that many items.
func readTable[T any](r *reader, what string, read func(*reader) (T, error)) ([]T, error) {
	count := r.readU2()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read %s count: %w", what, r.err)
	}
	items := make([]T, count)
	for i := range items {
		item, err := read(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s %d: %w", what, i, err)
		}
		items[i] = item
	}
	return items, nil
}

// readMember reads field_info and method_info, which share a layout.
func readMember[T FieldInfo | MethodInfo](r *reader) (T, error) {
	flags := AccessFlags(r.readU2())
	nameIndex := r.readU2()
	descriptorIndex := r.readU2()
	attrs, err := readTable(r, "attribute", readAttributeInfo)
	if err != nil {
		var zero T
		return zero, err
	}
	m := struct {
		AccessFlags     AccessFlags
		NameIndex       uint16
		DescriptorIndex uint16
		Attributes      []AttributeInfo
	}{flags, nameIndex, descriptorIndex, attrs}
	return T(m), nil
}

func readAttributeInfo(r *reader) (AttributeInfo, error) {
	nameIndex := r.readU2()
	length := r.readU4()
	info := r.readBytes(int(length))
	if r.err != nil {
		return AttributeInfo{}, r.err
	}
	return AttributeInfo{NameIndex: nameIndex, Info: info}, nil
}

func decodeModifiedUtf8(bytes []byte) string {
	runes := make([]rune, 0, len(bytes))
	i := 0
	for i < len(bytes) {
		b := bytes[i]
		if b&0x80 == 0 {
			runes = append(runes, rune(b))
			i++
		} else if b&0xE0 == 0xC0 {
			if i+1 >= len(bytes) {
				break
			}
			r := rune(b&0x1F)<<6 | rune(bytes[i+1]&0x3F)
			runes = append(runes, r)
			i += 2
		} else if b&0xF0 == 0xE0 {
			if i+2 >= len(bytes) {
				break
			}
			r := rune(b&0x0F)<<12 | rune(bytes[i+1]&0x3F)<<6 | rune(bytes[i+2]&0x3F)
			if r >= 0xD800 && r <= 0xDBFF {
				if i+5 < len(bytes) && bytes[i+3] == 0xED {
					high := r
					low := rune(bytes[i+3]&0x0F)<<12 | rune(bytes[i+4]&0x3F)<<6 | rune(bytes[i+5]&0x3F)
					if low >= 0xDC00 && low <= 0xDFFF {
						r = 0x10000 + ((high - 0xD800) << 10) + (low - 0xDC00)
						runes = append(runes, r)
						i += 6
						continue
					}
				}
			}
			runes = append(runes, r)
			i += 3
		} else {
			runes = append(runes, rune(b))
			i++
		}
	}
	return string(runes)
}
