package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dhamidi/jvmdesc/classfile"
	"github.com/dhamidi/jvmdesc/descriptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsedReport(t *testing.T, inputs ...string) *Report {
	t.Helper()
	r := &Report{}
	for _, in := range inputs {
		d, ok := descriptor.ParseDescriptor(in)
		require.True(t, ok, "ParseDescriptor(%q)", in)
		r.Descriptors = append(r.Descriptors, Parsed{Input: in, Descriptor: d})
	}
	return r
}

func classReport() *Report {
	intType := descriptor.Primitive(descriptor.Int).Field()
	names := descriptor.FieldType{Base: descriptor.Ref("java/lang/String"), ArrayDepth: 1}
	return &Report{Class: &ClassReport{
		Name:       "com.example.Widget",
		SuperClass: "java.lang.Object",
		Visibility: "public",
		Members: []Member{
			{Kind: "field", Name: "names", Descriptor: "[Ljava/lang/String;", DescriptorIndex: 6, Visibility: "private", Field: &names},
			{Kind: "method", Name: "<init>", Descriptor: "()V", DescriptorIndex: 8, Visibility: "public", Method: &classfile.MethodSignature{}},
			{Kind: "method", Name: "size", Descriptor: "(I)I", DescriptorIndex: 9, Visibility: "public", Method: &classfile.MethodSignature{
				Params: []descriptor.FieldType{intType},
				Return: &intType,
			}},
			{Kind: "field", Name: "bad", Descriptor: "LOops", DescriptorIndex: 12, Visibility: "package", Err: errors.New("boom")},
		},
	}}
}

func TestLineEncoderDescriptors(t *testing.T) {
	var buf bytes.Buffer
	err := NewLineEncoder(&buf).Encode(parsedReport(t, "[[I", "(ILjava/lang/Object;)[J", "()Z"))
	require.NoError(t, err)
	assert.Equal(t,
		"field\t[[I\tint[][]\t2\n"+
			"method\t(ILjava/lang/Object;)[J\tlong[]\tint,java.lang.Object\n"+
			"method\t()Z\tboolean\t-\n",
		buf.String())
}

func TestLineEncoderClass(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewLineEncoder(&buf).Encode(classReport()))
	assert.Equal(t,
		"class\tcom.example.Widget\tpublic\n"+
			"field\tnames\tjava.lang.String[]\tprivate\n"+
			"method\t<init>\tvoid\t-\tpublic\n"+
			"method\tsize\tint\tint\tpublic\n"+
			"invalid\tfield bad\tLOops\t#12\n",
		buf.String())
}

func TestLineEncoderEscapesSeparators(t *testing.T) {
	t.Run("descriptors", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewLineEncoder(&buf).Encode(parsedReport(t, "[La\tb\nc;", "(La\\b;)I"))
		require.NoError(t, err)
		assert.Equal(t,
			"field\t[La\\tb\\nc;\ta\\tb\\nc[]\t1\n"+
				"method\t(La\\\\b;)I\tint\ta\\\\b\n",
			buf.String())
	})

	t.Run("class members", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewLineEncoder(&buf).Encode(&Report{Class: &ClassReport{
			Name:       "Odd\tName",
			Visibility: "public",
			Members: []Member{
				{Kind: "field", Name: "x\ny", Descriptor: "LBad\r", DescriptorIndex: 3, Err: errors.New("boom")},
			},
		}}))
		assert.Equal(t,
			"class\tOdd\\tName\tpublic\n"+
				"invalid\tfield x\\ny\tLBad\\r\t#3\n",
			buf.String())
		assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
	})
}

func TestLineEncoderRejectsMissingDescriptor(t *testing.T) {
	var buf bytes.Buffer
	err := NewLineEncoder(&buf).Encode(&Report{Descriptors: []Parsed{{Input: "V"}}})
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestJSONEncoderDescriptors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf).Encode(parsedReport(t, "[LFoo;", "(B)S")))

	var got []jsonDescriptor
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "field", got[0].Kind)
	assert.Equal(t, &jsonType{Name: "Foo", Kind: "reference", ArrayDepth: 1}, got[0].Type)

	assert.Equal(t, "method", got[1].Kind)
	assert.Equal(t, []jsonType{{Name: "byte", Kind: "byte"}}, got[1].Params)
	assert.Equal(t, &jsonType{Name: "short", Kind: "short"}, got[1].Return)
}

func TestJSONEncoderClass(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf).Encode(classReport()))

	var got jsonClass
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "com.example.Widget", got.Name)
	require.Len(t, got.Members, 4)
	assert.Equal(t, &jsonType{Name: "java.lang.String", Kind: "reference", ArrayDepth: 1}, got.Members[0].Type)
	assert.True(t, got.Members[1].Void)
	assert.Equal(t, &jsonType{Name: "int", Kind: "int"}, got.Members[2].Return)
	assert.Equal(t, "boom", got.Members[3].Error)
}

func TestClassReportErrors(t *testing.T) {
	errs := classReport().Class.Errors()
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "boom")
}

func TestNewClassReport(t *testing.T) {
	utf8 := func(s string) classfile.ConstantPoolEntry { return &classfile.ConstantUtf8Info{Value: s} }
	cf := &classfile.ClassFile{
		ConstantPool: classfile.ConstantPool{
			utf8("com/example/Widget"),
			&classfile.ConstantIndexInfo{Kind: classfile.ConstantClass, Index: 1},
			utf8("x"),
			utf8("[J"),
			utf8("run"),
			utf8("()V"),
			utf8("LBad"),
		},
		AccessFlags: classfile.AccPublic | classfile.AccFinal,
		ThisClass:   2,
		Fields: []classfile.FieldInfo{
			{AccessFlags: classfile.AccPrivate, NameIndex: 3, DescriptorIndex: 4},
			{NameIndex: 3, DescriptorIndex: 7},
		},
		Methods: []classfile.MethodInfo{
			{AccessFlags: classfile.AccProtected, NameIndex: 5, DescriptorIndex: 6},
		},
	}

	r := NewClassReport(cf)
	assert.Equal(t, "com.example.Widget", r.Name)
	assert.Equal(t, "", r.SuperClass)
	assert.Equal(t, "public", r.Visibility)
	require.Len(t, r.Members, 3)

	assert.Equal(t, &descriptor.FieldType{Base: descriptor.Primitive(descriptor.Long), ArrayDepth: 1}, r.Members[0].Field)
	assert.Equal(t, "private", r.Members[0].Visibility)

	assert.Nil(t, r.Members[1].Field)
	assert.ErrorIs(t, r.Members[1].Err, classfile.ErrInvalidDescriptor)
	assert.Equal(t, uint16(7), r.Members[1].DescriptorIndex)

	require.NotNil(t, r.Members[2].Method)
	assert.True(t, r.Members[2].Method.IsVoid())
	assert.Equal(t, "protected", r.Members[2].Visibility)

	assert.Len(t, r.Errors(), 1)
}
