package descriptor

import (
	"math"
	"strings"
)

// MaxArrayDepth is the deepest array nesting a FieldType can hold.
const MaxArrayDepth = math.MaxUint8

// ParseBaseType parses a single primitive code or an L...; reference.
func ParseBaseType(s string) (BaseType, bool) {
	return complete(s, (*parser).baseType)
}

// ParseFieldType parses a field descriptor such as "I" or "[[Ljava/lang/String;".
func ParseFieldType(s string) (FieldType, bool) {
	return complete(s, (*parser).fieldType)
}

// ParseMethodType parses a method descriptor such as "(IJ)Ljava/lang/Object;".
func ParseMethodType(s string) (MethodType, bool) {
	return complete(s, (*parser).methodType)
}

// ParseDescriptor parses s as a method descriptor or, failing that, as a
// field descriptor. A method descriptor starts with '(' and a field
// descriptor never does, so the order of the attempts does not matter.
func ParseDescriptor(s string) (Descriptor, bool) {
	if mt, ok := ParseMethodType(s); ok {
		return mt, true
	}
	if ft, ok := ParseFieldType(s); ok {
		return ft, true
	}
	return nil, false
}

type parser struct {
	s   string
	pos int
}

// complete runs rule over s and fails unless the whole input was consumed.
func complete[T any](s string, rule func(*parser) (T, bool)) (T, bool) {
	p := &parser{s: s}
	v, ok := rule(p)
	if !ok || p.pos != len(p.s) {
		var zero T
		return zero, false
	}
	return v, true
}

func (p *parser) accept(c byte) bool {
	if p.pos < len(p.s) && p.s[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) baseType() (BaseType, bool) {
	if p.pos >= len(p.s) {
		return BaseType{}, false
	}
	c := p.s[p.pos]
	if c == 'L' {
		end := strings.IndexByte(p.s[p.pos+1:], ';')
		if end < 0 {
			return BaseType{}, false
		}
		name := p.s[p.pos+1 : p.pos+1+end]
		p.pos += end + 2
		return Ref(name), true
	}
	k := kindOf(c)
	if k == Invalid {
		return BaseType{}, false
	}
	p.pos++
	return Primitive(k), true
}

func kindOf(code byte) Kind {
	switch code {
	case 'B':
		return Byte
	case 'C':
		return Char
	case 'D':
		return Double
	case 'F':
		return Float
	case 'I':
		return Int
	case 'J':
		return Long
	case 'S':
		return Short
	case 'Z':
		return Boolean
	}
	return Invalid
}

// fieldType leaves the position untouched when it fails.
//
// Counting stops at MaxArrayDepth. A 256th '[' is then handed to baseType,
// which rejects it, so such input fails instead of being truncated to 255.
// Real class files never nest that deep; revisit if one turns up.
func (p *parser) fieldType() (FieldType, bool) {
	start := p.pos
	var depth uint8
	for depth < MaxArrayDepth && p.accept('[') {
		depth++
	}
	base, ok := p.baseType()
	if !ok {
		p.pos = start
		return FieldType{}, false
	}
	return FieldType{Base: base, ArrayDepth: depth}, true
}

func (p *parser) methodType() (MethodType, bool) {
	if !p.accept('(') {
		return MethodType{}, false
	}
	var params []FieldType
	for {
		ft, ok := p.fieldType()
		if !ok {
			break
		}
		params = append(params, ft)
	}
	if !p.accept(')') {
		return MethodType{}, false
	}
	ret, ok := p.fieldType()
	if !ok {
		return MethodType{}, false
	}
	return MethodType{Params: params, Ret: ret}, true
}
