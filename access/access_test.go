package access_test

import (
	"math"
	"testing"

	"github.com/0xalexb/hjarta-conf/access"
	"github.com/0xalexb/hjarta-conf/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleObject() *document.Object {
	return document.NewObject(
		document.Member{Key: "name", Value: document.String("gateway")},
		document.Member{Key: "port", Value: document.Int(8080)},
		document.Member{Key: "offset", Value: document.Int64(math.MaxInt32 + 10)},
		document.Member{Key: "tls", Value: document.Bool(true)},
		document.Member{Key: "ratio", Value: document.Float(0.75)},
		document.Member{Key: "server", Value: document.NewObject(
			document.Member{Key: "host", Value: document.String("localhost")},
		)},
		document.Member{Key: "tags", Value: document.Array{document.String("a"), document.String("b")}},
		document.Member{Key: "nothing", Value: document.Null{}},
	)
}

func TestGetters_ReturnDecodedValues(t *testing.T) {
	t.Parallel()

	obj := sampleObject()

	name, err := access.GetString(obj, "name")
	require.NoError(t, err)
	assert.Equal(t, "gateway", name)

	port, err := access.GetInt(obj, "port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	offset, err := access.GetInt64(obj, "offset")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt32+10), offset)

	tls, err := access.GetBool(obj, "tls")
	require.NoError(t, err)
	assert.True(t, tls)

	ratio, err := access.GetFloat64(obj, "ratio")
	require.NoError(t, err)
	assert.InDelta(t, 0.75, ratio, 0)

	server, err := access.GetObject(obj, "server")
	require.NoError(t, err)
	assert.Equal(t, 1, access.CountChildren(server))

	tags, err := access.GetArray(obj, "tags")
	require.NoError(t, err)
	assert.Len(t, tags, 2)

	raw, err := access.GetValue(obj, "nothing")
	require.NoError(t, err)
	assert.Equal(t, document.Null{}, raw)
}

func TestGetInt64_AcceptsInt(t *testing.T) {
	t.Parallel()

	obj := sampleObject()

	port, err := access.GetInt64(obj, "port")
	require.NoError(t, err)
	assert.Equal(t, int64(8080), port)

	port, err = access.GetOptionalInt64(obj, "port", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(8080), port)
}

func TestGetInt_RejectsInt64(t *testing.T) {
	t.Parallel()

	_, err := access.GetInt(sampleObject(), "offset")
	require.ErrorIs(t, err, access.ErrTypeMismatch)
}

func TestGetters_MissingKey(t *testing.T) {
	t.Parallel()

	obj := sampleObject()

	getters := map[string]func() error{
		"string": func() error { _, err := access.GetString(obj, "absent"); return err },
		"int":    func() error { _, err := access.GetInt(obj, "absent"); return err },
		"int64":  func() error { _, err := access.GetInt64(obj, "absent"); return err },
		"bool":   func() error { _, err := access.GetBool(obj, "absent"); return err },
		"float":  func() error { _, err := access.GetFloat64(obj, "absent"); return err },
		"object": func() error { _, err := access.GetObject(obj, "absent"); return err },
		"array":  func() error { _, err := access.GetArray(obj, "absent"); return err },
		"value":  func() error { _, err := access.GetValue(obj, "absent"); return err },
	}

	for name, getter := range getters {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := getter()
			require.ErrorIs(t, err, access.ErrMissingKey)
			require.NotErrorIs(t, err, access.ErrTypeMismatch)

			var keyErr *access.KeyError

			require.ErrorAs(t, err, &keyErr)
			assert.Equal(t, "absent", keyErr.Key)
			assert.Same(t, obj, keyErr.Parent)
		})
	}
}

func TestGetters_TypeMismatch(t *testing.T) {
	t.Parallel()

	obj := sampleObject()

	testCases := []struct {
		name     string
		get      func() error
		expected document.Kind
		actual   document.Kind
	}{
		{
			name:     "string from int",
			get:      func() error { _, err := access.GetString(obj, "port"); return err },
			expected: document.KindString,
			actual:   document.KindInt,
		},
		{
			name:     "optional string from int",
			get:      func() error { _, err := access.GetOptionalString(obj, "port", "x"); return err },
			expected: document.KindString,
			actual:   document.KindInt,
		},
		{
			name:     "int from string",
			get:      func() error { _, err := access.GetInt(obj, "name"); return err },
			expected: document.KindInt,
			actual:   document.KindString,
		},
		{
			name:     "optional int from bool",
			get:      func() error { _, err := access.GetOptionalInt(obj, "tls", 1); return err },
			expected: document.KindInt,
			actual:   document.KindBool,
		},
		{
			name:     "int64 from float",
			get:      func() error { _, err := access.GetInt64(obj, "ratio"); return err },
			expected: document.KindInt64,
			actual:   document.KindFloat,
		},
		{
			name:     "optional int64 from string",
			get:      func() error { _, err := access.GetOptionalInt64(obj, "name", 1); return err },
			expected: document.KindInt64,
			actual:   document.KindString,
		},
		{
			name:     "bool from null",
			get:      func() error { _, err := access.GetBool(obj, "nothing"); return err },
			expected: document.KindBool,
			actual:   document.KindNull,
		},
		{
			name:     "optional bool from string",
			get:      func() error { _, err := access.GetOptionalBool(obj, "name", true); return err },
			expected: document.KindBool,
			actual:   document.KindString,
		},
		{
			name:     "float from int",
			get:      func() error { _, err := access.GetFloat64(obj, "port"); return err },
			expected: document.KindFloat,
			actual:   document.KindInt,
		},
		{
			name:     "optional float from bool",
			get:      func() error { _, err := access.GetOptionalFloat64(obj, "tls", 1); return err },
			expected: document.KindFloat,
			actual:   document.KindBool,
		},
		{
			name:     "object from array",
			get:      func() error { _, err := access.GetObject(obj, "tags"); return err },
			expected: document.KindObject,
			actual:   document.KindArray,
		},
		{
			name:     "optional object from string",
			get:      func() error { _, err := access.GetOptionalObject(obj, "name", nil); return err },
			expected: document.KindObject,
			actual:   document.KindString,
		},
		{
			name:     "array from object",
			get:      func() error { _, err := access.GetArray(obj, "server"); return err },
			expected: document.KindArray,
			actual:   document.KindObject,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := testCase.get()
			require.ErrorIs(t, err, access.ErrTypeMismatch)
			require.NotErrorIs(t, err, access.ErrMissingKey)

			var keyErr *access.KeyError

			require.ErrorAs(t, err, &keyErr)
			assert.Equal(t, testCase.expected, keyErr.Expected)
			assert.Equal(t, testCase.actual, keyErr.Actual)
		})
	}
}

func TestOptionalGetters_AbsentReturnsDefault(t *testing.T) {
	t.Parallel()

	obj := sampleObject()

	str, err := access.GetOptionalString(obj, "absent", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", str)

	num, err := access.GetOptionalInt(obj, "absent", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, num)

	big, err := access.GetOptionalInt64(obj, "absent", math.MinInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), big)

	flag, err := access.GetOptionalBool(obj, "absent", true)
	require.NoError(t, err)
	assert.True(t, flag)

	ratio, err := access.GetOptionalFloat64(obj, "absent", 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, ratio, 0)

	def := document.NewObject()

	section, err := access.GetOptionalObject(obj, "absent", def)
	require.NoError(t, err)
	assert.Same(t, def, section)
}

func TestOptionalGetters_PresentIgnoresDefault(t *testing.T) {
	t.Parallel()

	obj := sampleObject()

	name, err := access.GetOptionalString(obj, "name", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "gateway", name)

	port, err := access.GetOptionalInt(obj, "port", 1)
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	tls, err := access.GetOptionalBool(obj, "tls", false)
	require.NoError(t, err)
	assert.True(t, tls)

	server, err := access.GetOptionalObject(obj, "server", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, server.Len())
}

func TestGetString_PreservesBytes(t *testing.T) {
	t.Parallel()

	values := []string{
		"",
		"a\x00b",
		"\x00\x00\x00",
		"naïve ☃ 日本",
		string([]byte{0xff, 0xfe, 0x00, 0x41}),
	}

	for _, value := range values {
		obj := document.NewObject(document.Member{Key: "s", Value: document.String(value)})

		got, err := access.GetString(obj, "s")
		require.NoError(t, err)
		assert.Equal(t, value, got)
		assert.Len(t, got, len(value))
	}
}

func TestCountChildren(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, access.CountChildren(document.NewObject()))
	assert.Equal(t, 0, access.CountChildren(nil))
	assert.Equal(t, 8, access.CountChildren(sampleObject()))

	obj := document.NewObject()
	for _, key := range []string{"a", "b", "a", "c", "b"} {
		obj.Set(key, document.Int(1))
	}

	assert.Equal(t, 3, access.CountChildren(obj), "count follows distinct keys")
}

func TestKeyError_Messages(t *testing.T) {
	t.Parallel()

	obj := document.NewObject(document.Member{Key: "port", Value: document.Int(8080)})

	_, err := access.GetString(obj, "port")
	require.EqualError(t, err, `Key 'port' in object '{"port":8080}' has invalid type`)

	_, err = access.GetBool(obj, "tls")
	require.EqualError(t, err, `Key 'tls' not found in object '{"port":8080}'`)

	_, err = access.GetValue(document.NewObject(), "x")
	require.EqualError(t, err, `Key 'x' not found in object '{}'`)
}

func TestScenario_PortObject(t *testing.T) {
	t.Parallel()

	obj := document.NewObject(document.Member{Key: "port", Value: document.Int(8080)})

	port, err := access.GetInt(obj, "port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	tls, err := access.GetOptionalBool(obj, "tls", false)
	require.NoError(t, err)
	assert.False(t, tls)

	_, err = access.GetString(obj, "port")
	require.ErrorIs(t, err, access.ErrTypeMismatch)
}

func TestScenario_EmptyObject(t *testing.T) {
	t.Parallel()

	obj := document.NewObject()

	assert.Equal(t, 0, access.CountChildren(obj))

	_, err := access.GetValue(obj, "x")
	require.ErrorIs(t, err, access.ErrMissingKey)
}

func TestGetters_NilParentReportsMissingKey(t *testing.T) {
	t.Parallel()

	_, err := access.GetString(nil, "x")
	require.ErrorIs(t, err, access.ErrMissingKey)
	require.EqualError(t, err, `Key 'x' not found in object 'null'`)

	val, err := access.GetOptionalInt(nil, "x", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, val)
}
