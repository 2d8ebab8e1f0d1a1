package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/jvmdesc/descriptor"
)

// Names and raw descriptors may hold any character but ';', so the separators
// and backslash are escaped Go style.
var lineEscaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

func escape(s string) string {
	return lineEscaper.Replace(s)
}

// LineEncoder writes one tab separated line per descriptor or member.
type LineEncoder struct {
	w      io.Writer
	report *Report
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(report *Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.report

	for _, p := range r.Descriptors {
		switch d := p.Descriptor.(type) {
		case descriptor.FieldType:
			fmt.Fprintf(&sb, "field\t%s\t%s\t%d\n", escape(p.Input), escape(d.String()), d.ArrayDepth)
		case descriptor.MethodType:
			fmt.Fprintf(&sb, "method\t%s\t%s\t%s\n", escape(p.Input), escape(d.Ret.String()), paramsStr(d.Params))
		default:
			return nil, fmt.Errorf("no descriptor for %q", p.Input)
		}
	}

	if c := r.Class; c != nil {
		fmt.Fprintf(&sb, "class\t%s\t%s\n", escape(c.Name), c.Visibility)
		for _, m := range c.Members {
			switch {
			case m.Err != nil:
				fmt.Fprintf(&sb, "invalid\t%s %s\t%s\t#%d\n", m.Kind, escape(m.Name), escape(m.Descriptor), m.DescriptorIndex)
			case m.Field != nil:
				fmt.Fprintf(&sb, "field\t%s\t%s\t%s\n", escape(m.Name), escape(m.Field.String()), m.Visibility)
			case m.Method != nil:
				ret := "void"
				if m.Method.Return != nil {
					ret = m.Method.Return.String()
				}
				fmt.Fprintf(&sb, "method\t%s\t%s\t%s\t%s\n", escape(m.Name), escape(ret), paramsStr(m.Method.Params), m.Visibility)
			}
		}
	}

	return []byte(sb.String()), nil
}

func paramsStr(params []descriptor.FieldType) string {
	if len(params) == 0 {
		return "-"
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = escape(p.String())
	}
	return strings.Join(parts, ",")
}
