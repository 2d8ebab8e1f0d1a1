package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/jvmdesc/descriptor"
)

type JSONEncoder struct {
	w      io.Writer
	report *Report
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(report *Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	if e.report.Class != nil {
		return json.MarshalIndent(buildClass(e.report.Class), "", "  ")
	}
	out := make([]jsonDescriptor, 0, len(e.report.Descriptors))
	for _, p := range e.report.Descriptors {
		if p.Descriptor == nil {
			return nil, fmt.Errorf("no descriptor for %q", p.Input)
		}
		out = append(out, buildDescriptor(p))
	}
	return json.MarshalIndent(out, "", "  ")
}

type jsonType struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	ArrayDepth uint8  `json:"arrayDepth,omitempty"`
}

type jsonDescriptor struct {
	Input  string     `json:"input"`
	Kind   string     `json:"kind"`
	Type   *jsonType  `json:"type,omitempty"`
	Params []jsonType `json:"params,omitempty"`
	Return *jsonType  `json:"return,omitempty"`
}

type jsonClass struct {
	Name       string       `json:"name"`
	SuperClass string       `json:"superClass,omitempty"`
	Visibility string       `json:"visibility"`
	Members    []jsonMember `json:"members,omitempty"`
}

type jsonMember struct {
	Kind            string     `json:"kind"`
	Name            string     `json:"name"`
	Descriptor      string     `json:"descriptor"`
	DescriptorIndex uint16     `json:"descriptorIndex"`
	Visibility      string     `json:"visibility"`
	Type            *jsonType  `json:"type,omitempty"`
	Params          []jsonType `json:"params,omitempty"`
	Return          *jsonType  `json:"return,omitempty"`
	Void            bool       `json:"void,omitempty"`
	Error           string     `json:"error,omitempty"`
}

func typeOf(ft descriptor.FieldType) jsonType {
	return jsonType{
		Name:       ft.Base.String(),
		Kind:       ft.Base.Kind.String(),
		ArrayDepth: ft.ArrayDepth,
	}
}

func typesOf(fts []descriptor.FieldType) []jsonType {
	if len(fts) == 0 {
		return nil
	}
	out := make([]jsonType, len(fts))
	for i, ft := range fts {
		out[i] = typeOf(ft)
	}
	return out
}

func buildDescriptor(p Parsed) jsonDescriptor {
	out := jsonDescriptor{Input: p.Input, Kind: kindOf(p.Descriptor)}
	switch d := p.Descriptor.(type) {
	case descriptor.FieldType:
		t := typeOf(d)
		out.Type = &t
	case descriptor.MethodType:
		ret := typeOf(d.Ret)
		out.Params = typesOf(d.Params)
		out.Return = &ret
	}
	return out
}

func buildClass(c *ClassReport) jsonClass {
	out := jsonClass{
		Name:       c.Name,
		SuperClass: c.SuperClass,
		Visibility: c.Visibility,
	}
	for _, m := range c.Members {
		jm := jsonMember{
			Kind:            m.Kind,
			Name:            m.Name,
			Descriptor:      m.Descriptor,
			DescriptorIndex: m.DescriptorIndex,
			Visibility:      m.Visibility,
		}
		switch {
		case m.Err != nil:
			jm.Error = m.Err.Error()
		case m.Field != nil:
			t := typeOf(*m.Field)
			jm.Type = &t
		case m.Method != nil:
			jm.Params = typesOf(m.Method.Params)
			if m.Method.Return != nil {
				ret := typeOf(*m.Method.Return)
				jm.Return = &ret
			} else {
				jm.Void = true
			}
		}
		out.Members = append(out.Members, jm)
	}
	return out
}
