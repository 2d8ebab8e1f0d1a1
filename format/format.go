package format

import (
	"encoding"

	"github.com/dhamidi/jvmdesc/classfile"
	"github.com/dhamidi/jvmdesc/descriptor"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(report *Report) error
}

// Report is one unit of output: parsed descriptor inputs, or the members of
// a class file.
type Report struct {
	Descriptors []Parsed
	Class       *ClassReport
}

type Parsed struct {
	Input      string
	Descriptor descriptor.Descriptor
}

type ClassReport struct {
	Name       string
	SuperClass string
	Visibility string
	Members    []Member
}

// Member is a field or method. Exactly one of Field, Method and Err is set.
type Member struct {
	Kind            string
	Name            string
	Descriptor      string
	DescriptorIndex uint16
	Visibility      string
	Field           *descriptor.FieldType
	Method          *classfile.MethodSignature
	Err             error
}

func NewClassReport(cf *classfile.ClassFile) *ClassReport {
	cp := cf.ConstantPool
	report := &ClassReport{
		Name:       classfile.InternalToSourceName(cf.ClassName()),
		SuperClass: classfile.InternalToSourceName(cf.SuperClassName()),
		Visibility: cf.AccessFlags.Visibility(),
	}

	for i := range cf.Fields {
		f := &cf.Fields[i]
		m := Member{
			Kind:            "field",
			Name:            f.Name(cp),
			Descriptor:      f.Descriptor(cp),
			DescriptorIndex: f.DescriptorIndex,
			Visibility:      f.AccessFlags.Visibility(),
		}
		if ft, err := f.ParsedDescriptor(cp); err != nil {
			m.Err = err
		} else {
			m.Field = &ft
		}
		report.Members = append(report.Members, m)
	}

	for i := range cf.Methods {
		method := &cf.Methods[i]
		m := Member{
			Kind:            "method",
			Name:            method.Name(cp),
			Descriptor:      method.Descriptor(cp),
			DescriptorIndex: method.DescriptorIndex,
			Visibility:      method.AccessFlags.Visibility(),
		}
		m.Method, m.Err = method.ParsedDescriptor(cp)
		report.Members = append(report.Members, m)
	}

	return report
}

// Errors returns the descriptor errors of all members.
func (r *ClassReport) Errors() []error {
	var errs []error
	for _, m := range r.Members {
		if m.Err != nil {
			errs = append(errs, m.Err)
		}
	}
	return errs
}

func kindOf(d descriptor.Descriptor) string {
	if _, ok := d.(descriptor.MethodType); ok {
		return "method"
	}
	return "field"
}
