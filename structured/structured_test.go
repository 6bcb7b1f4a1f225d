package structured

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleValues() map[string]Value {
	return map[string]Value{
		"empty string":   String(""),
		"plain string":   String("hello"),
		"bool-like":      String("true"),
		"int-like":       String("123"),
		"null-like":      String("null"),
		"tilde":          String("~"),
		"comment-like":   String("# not a comment"),
		"indicator":      String("- item: value"),
		"multiline":      String("first\nsecond"),
		"trailing nl":    String("line\n"),
		"padded":         String("  padded  "),
		"lone newline":   String("\n"),
		"leading nl":     String("\na"),
		"two newlines":   String("\n\n"),
		"carriage ret":   String("\r\nline\r"),
		"line separator": String("a\u2028b\u0085c"),
		"tab":            String("\tindented"),
		"merge key":      String("<<"),
		"merge-like key": Mapping{{Key: "<<", Value: String("<<")}},
		"newline keys":   Mapping{{Key: "\n", Value: String("\n")}, {Key: "\na", Value: Int(1)}},
		"unicode":        String("Grüße ✓ 日本"),
		"zero int":       Int(0),
		"negative int":   Int(-42),
		"max int":        Int(math.MaxInt64),
		"min int":        Int(math.MinInt64),
		"integral float": Float(5),
		"float":          Float(3.14159),
		"tiny float":     Float(1e-300),
		"negative zero":  Float(math.Copysign(0, -1)),
		"infinity":       Float(math.Inf(1)),
		"neg infinity":   Float(math.Inf(-1)),
		"nan":            Float(math.NaN()),
		"true":           Bool(true),
		"false":          Bool(false),
		"empty blob":     Blob{},
		"blob":           Blob{0x00, 0xFF, 0xFE, 0x10},
		"empty sequence": Sequence{},
		"empty mapping":  Mapping{},
		"sequence": Sequence{
			String("a"), Int(1), Float(1.5), Bool(false), Blob{0x01}, Sequence{String("nested")},
		},
		"mapping order": Mapping{
			{Key: "zeta", Value: Int(1)},
			{Key: "alpha", Value: Int(2)},
			{Key: "mid", Value: Int(3)},
		},
		"nested": Mapping{
			{Key: "title", Value: String("Comic")},
			{Key: "pages", Value: Int(32)},
			{Key: "rating", Value: Float(4.5)},
			{Key: "read", Value: Bool(true)},
			{Key: "cover", Value: Blob("\x89PNG")},
			{Key: "tags", Value: Sequence{String("a"), String("b")}},
			{Key: "true", Value: Mapping{{Key: "", Value: String("empty key")}}},
			{Key: "123", Value: Sequence{}},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, format := range []Format{FormatYAML, FormatCBOR} {
		for name, value := range sampleValues() {
			format := format
			name := name
			value := value
			t.Run(format.String()+"/"+name, func(t *testing.T) {
				t.Parallel()

				data, err := Marshal(value, format)
				require.NoError(t, err)
				assert.Equal(t, format, Detect(data))

				got, err := Unmarshal(data)
				require.NoError(t, err)
				assert.True(t, Equal(value, got), "expected %#v, got %#v", value, got)
			})
		}
	}
}

func TestRoundTrip_DeepNesting(t *testing.T) {
	t.Parallel()

	var v Value = String("bottom")
	for i := 0; i < MaxDepth-1; i++ {
		v = Sequence{v}
	}

	for _, format := range []Format{FormatYAML, FormatCBOR} {
		data, err := Marshal(v, format)
		require.NoError(t, err)

		got, err := Unmarshal(data)
		require.NoError(t, err)
		assert.True(t, Equal(v, got))
	}
}

func TestMarshal_Unserializable(t *testing.T) {
	t.Parallel()

	selfRef := make(Sequence, 1)
	selfRef[0] = selfRef

	var tooDeep Value = Int(1)
	for i := 0; i < MaxDepth+1; i++ {
		tooDeep = Mapping{{Key: "k", Value: tooDeep}}
	}

	tests := []struct {
		name  string
		value Value
	}{
		{"nil", nil},
		{"nil element", Sequence{String("a"), nil}},
		{"nil mapping value", Mapping{{Key: "k", Value: nil}}},
		{"invalid utf8 string", String([]byte{0xFF, 0xFE})},
		{"invalid utf8 key", Mapping{{Key: string([]byte{0xC3}), Value: Int(1)}}},
		{"duplicate key", Mapping{{Key: "k", Value: Int(1)}, {Key: "k", Value: Int(2)}}},
		{"self reference", selfRef},
		{"too deep", tooDeep},
	}

	for _, tt := range tests {
		for _, format := range []Format{FormatYAML, FormatCBOR} {
			tt := tt
			format := format
			t.Run(format.String()+"/"+tt.name, func(t *testing.T) {
				t.Parallel()

				data, err := Marshal(tt.value, format)
				require.ErrorIs(t, err, ErrUnserializable)
				assert.Nil(t, data)
			})
		}
	}
}

func TestMarshal_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Marshal(String("x"), Format(42))
	require.ErrorIs(t, err, ErrUnserializable)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestMarshal_YAMLIsReadable(t *testing.T) {
	t.Parallel()

	data, err := Marshal(Mapping{
		{Key: "name", Value: String("value")},
		{Key: "count", Value: Int(3)},
	}, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "name: value\ncount: 3\n", string(data))
}

func TestUnmarshal_ForeignYAML(t *testing.T) {
	t.Parallel()

	got, err := Unmarshal([]byte(`{"list": [1, 2.5, "x", true], "flag": false}`))
	require.NoError(t, err)

	want := Mapping{
		{Key: "list", Value: Sequence{Int(1), Float(2.5), String("x"), Bool(true)}},
		{Key: "flag", Value: Bool(false)},
	}
	assert.True(t, Equal(want, got), "got %#v", got)

	got, err = Unmarshal([]byte("base: &anchor [1]\ncopy: *anchor\nhex: 0x1F\n"))
	require.NoError(t, err)

	want = Mapping{
		{Key: "base", Value: Sequence{Int(1)}},
		{Key: "copy", Value: Sequence{Int(1)}},
		{Key: "hex", Value: Int(31)},
	}
	assert.True(t, Equal(want, got), "got %#v", got)
}

// TestUnmarshal_AliasExpansion verifies that aliases cannot expand a small
// document into a huge value.
func TestUnmarshal_AliasExpansion(t *testing.T) {
	t.Parallel()

	var doc strings.Builder
	doc.WriteString("a0: &a0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i < 9; i++ {
		refs := strings.TrimSuffix(strings.Repeat(fmt.Sprintf("*a%d, ", i-1), 10), ", ")
		fmt.Fprintf(&doc, "a%d: &a%d [%s]\n", i, i, refs)
	}

	start := time.Now()
	v, err := Unmarshal([]byte(doc.String()))
	require.ErrorIs(t, err, ErrMalformed)
	assert.Nil(t, v)
	assert.Less(t, time.Since(start), 5*time.Second)

	v, err = Unmarshal([]byte("a: &a [1, 2, 3]\nb: [*a, *a, *a]\n"))
	require.NoError(t, err)

	abc := Sequence{Int(1), Int(2), Int(3)}
	assert.True(t, Equal(Mapping{{Key: "a", Value: abc}, {Key: "b", Value: Sequence{abc, abc, abc}}}, v))
}

func TestUnmarshal_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"only comment", []byte("# nothing\n")},
		{"invalid utf8", []byte{0xFF, 0xFE}},
		{"null", []byte("null\n")},
		{"null element", []byte("[1, ~]\n")},
		{"unknown tag", []byte("!custom value\n")},
		{"non-string key", []byte("1: one\n")},
		{"duplicate key", []byte("a: 1\na: 2\n")},
		{"bad binary", []byte("!!binary '***'\n")},
		{"bad int", []byte("!!int abc\n")},
		{"two documents", []byte("a\n---\nb\n")},
		{"broken syntax", []byte("key: [unclosed\n")},
		{"cbor truncated", append(append([]byte{}, cborSelfDescribe...), 0x82, 0x01)},
		{"cbor trailing data", append(append([]byte{}, cborSelfDescribe...), 0x01, 0x02)},
		{"cbor null", append(append([]byte{}, cborSelfDescribe...), 0xf6)},
		{"cbor tag", append(append([]byte{}, cborSelfDescribe...), 0xc1, 0x01)},
		{"cbor int key", append(append([]byte{}, cborSelfDescribe...), 0xa1, 0x01, 0x02)},
		{"cbor duplicate key", append(append([]byte{}, cborSelfDescribe...), 0xa2, 0x61, 'a', 0x01, 0x61, 'a', 0x02)},
		{"cbor invalid utf8", append(append([]byte{}, cborSelfDescribe...), 0x62, 0xFF, 0xFE)},
		{"cbor int overflow", append(append([]byte{}, cborSelfDescribe...), 0x1b, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)},
		{"cbor no item", append([]byte{}, cborSelfDescribe...)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := Unmarshal(tt.data)
			require.ErrorIs(t, err, ErrMalformed)
			assert.Nil(t, v)
		})
	}
}

func TestUnmarshal_CBORIndefiniteMap(t *testing.T) {
	t.Parallel()

	data := append(append([]byte{}, cborSelfDescribe...),
		0xbf, 0x61, 'b', 0x01, 0x61, 'a', 0xf5, 0xff,
	)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.True(t, Equal(Mapping{{Key: "b", Value: Int(1)}, {Key: "a", Value: Bool(true)}}, got))
}

func TestCBORHead(t *testing.T) {
	t.Parallel()

	for _, n := range []uint64{0, 23, 24, 255, 256, 65535, 65536, math.MaxUint32, math.MaxUint32 + 1} {
		head := appendCBORHead(nil, cborMajorArray, n)

		got, size, indefinite, err := readCBORHead(head)
		require.NoError(t, err)
		assert.False(t, indefinite)
		assert.Equal(t, len(head), size)
		assert.Equal(t, n, got)
		assert.Equal(t, byte(cborMajorArray), head[0]>>5)
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatYAML},
		{"yaml", FormatYAML},
		{"Text", FormatYAML},
		{"cbor", FormatCBOR},
		{" BINARY ", FormatCBOR},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	got, err := FromAny(map[string]any{
		"b":    []any{"x", 1, uint8(2), int64(-3), float32(0.5), true},
		"a":    []byte{0x01},
		"keep": Sequence{String("v")},
	})
	require.NoError(t, err)

	want := Mapping{
		{Key: "a", Value: Blob{0x01}},
		{Key: "b", Value: Sequence{String("x"), Int(1), Int(2), Int(-3), Float(0.5), Bool(true)}},
		{Key: "keep", Value: Sequence{String("v")}},
	}
	assert.True(t, Equal(want, got), "got %#v", got)
}

func TestFromAny_Unserializable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		obj  any
	}{
		{"nil", nil},
		{"channel", make(chan int)},
		{"func", func() {}},
		{"struct", struct{ A int }{A: 1}},
		{"pointer", new(string)},
		{"int map", map[int]any{1: "x"}},
		{"nested nil", []any{"a", nil}},
		{"overflowing uint", uint64(math.MaxUint64)},
		{"invalid utf8", string([]byte{0xFF})},
		{"nested channel", map[string]any{"c": make(chan int)}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := FromAny(tt.obj)
			require.ErrorIs(t, err, ErrUnserializable)
			assert.Nil(t, v)
		})
	}
}

func TestToAny(t *testing.T) {
	t.Parallel()

	got := ToAny(Mapping{
		{Key: "s", Value: String("x")},
		{Key: "n", Value: Sequence{Int(1), Float(2.5), Bool(true), Blob{0x02}}},
	})

	assert.Equal(t, map[string]any{
		"s": "x",
		"n": []any{int64(1), 2.5, true, []byte{0x02}},
	}, got)

	back, err := FromAny(got)
	require.NoError(t, err)
	assert.True(t, Equal(Mapping{
		{Key: "n", Value: Sequence{Int(1), Float(2.5), Bool(true), Blob{0x02}}},
		{Key: "s", Value: String("x")},
	}, back))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, Equal(Blob(nil), Blob{}))
	assert.True(t, Equal(Sequence(nil), Sequence{}))
	assert.True(t, Equal(Float(math.NaN()), Float(math.NaN())))
	assert.True(t, Equal(nil, nil))

	assert.False(t, Equal(Int(1), Float(1)))
	assert.False(t, Equal(String("1"), Int(1)))
	assert.False(t, Equal(Float(0), Float(math.Copysign(0, -1))))
	assert.False(t, Equal(
		Mapping{{Key: "a", Value: Int(1)}, {Key: "b", Value: Int(2)}},
		Mapping{{Key: "b", Value: Int(2)}, {Key: "a", Value: Int(1)}},
	))
	assert.False(t, Equal(Sequence{Int(1)}, Sequence{Int(1), Int(2)}))
	assert.False(t, Equal(String("x"), nil))
}

func TestMapping_Accessors(t *testing.T) {
	t.Parallel()

	m := Mapping{{Key: "a", Value: Int(1)}, {Key: "b", Value: Int(2)}}

	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, Int(2), v)

	_, ok = m.Get("c")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
}

// FuzzRoundTrip checks that arbitrary strings survive both formats, as
// values and as mapping keys.
func FuzzRoundTrip(f *testing.F) {
	for _, seed := range []string{"", "\n", "\na", "\n\n", "<<", " x", "x ", "- a", "? b", "null", "0x1F", "1e3", "\ufeffbom", "a: b", "'\"", "\x00"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			t.Skip()
		}

		values := []Value{
			String(s),
			Sequence{String(s), String(s + s)},
			Mapping{{Key: s, Value: String(s)}, {Key: s + "\n", Value: Int(int64(len(s)))}},
		}

		for _, format := range []Format{FormatYAML, FormatCBOR} {
			for _, value := range values {
				data, err := Marshal(value, format)
				require.NoError(t, err)

				got, err := Unmarshal(data)
				require.NoError(t, err, "format %s, data %q", format, data)
				assert.True(t, Equal(value, got), "format %s: expected %#v, got %#v", format, value, got)
			}
		}
	})
}
