package objcodec

import (
	"testing"

	"github.com/desertwitch/xattrstore/internal/testutil/memxattr"
	"github.com/desertwitch/xattrstore/internal/objcodec/mocks"
	"github.com/desertwitch/xattrstore/internal/rawio"
	"github.com/desertwitch/xattrstore/internal/schema"
	"github.com/desertwitch/xattrstore/structured"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTarget = schema.Target{Path: "/data/file", FollowLinks: true}

// TestSetObject_Success_DefaultFormat verifies that the zero format writes
// structured text.
func TestSetObject_Success_DefaultFormat(t *testing.T) {
	t.Parallel()

	rawMock := mocks.NewRawProvider(t)
	handler := NewHandler(rawMock)

	rawMock.On("SetRaw", testTarget, "user.obj", []byte("name: value\n")).Return(nil).Once()

	value := structured.Mapping{{Key: "name", Value: structured.String("value")}}
	require.NoError(t, handler.SetObject(testTarget, "user.obj", value, structured.FormatDefault))
}

// TestSetObject_Fail_Unserializable verifies that invalid values never reach
// the raw layer.
func TestSetObject_Fail_Unserializable(t *testing.T) {
	t.Parallel()

	rawMock := mocks.NewRawProvider(t)
	handler := NewHandler(rawMock)

	err := handler.SetObject(testTarget, "user.obj", structured.Sequence{nil}, structured.FormatCBOR)
	require.ErrorIs(t, err, schema.ErrUnserializable)
	require.ErrorIs(t, err, structured.ErrUnserializable)

	err = handler.SetObject(testTarget, "user.obj", structured.Int(1), structured.Format(99))
	require.ErrorIs(t, err, schema.ErrUnserializable)

	rawMock.AssertNotCalled(t, "SetRaw", mock.Anything, mock.Anything, mock.Anything)
}

// TestSetObject_Fail_Propagates verifies that raw failures pass through.
func TestSetObject_Fail_Propagates(t *testing.T) {
	t.Parallel()

	rawMock := mocks.NewRawProvider(t)
	handler := NewHandler(rawMock)

	rawErr := schema.NewAttributeError(schema.OpSet, testTarget, "user.obj", schema.KindQuotaOrSizeExceeded, nil)
	rawMock.On("SetRaw", testTarget, "user.obj", mock.Anything).Return(rawErr).Once()

	err := handler.SetObject(testTarget, "user.obj", structured.Bool(true), structured.FormatYAML)
	require.ErrorIs(t, err, schema.ErrQuotaOrSizeExceeded)
}

// TestGetObject_Fail_Malformed verifies that unparsable bytes are reported
// as malformed data.
func TestGetObject_Fail_Malformed(t *testing.T) {
	t.Parallel()

	rawMock := mocks.NewRawProvider(t)
	handler := NewHandler(rawMock)

	rawMock.On("GetRaw", testTarget, "user.obj").Return([]byte{0xFF, 0xFE}, nil).Once()

	value, err := handler.GetObject(testTarget, "user.obj")
	require.ErrorIs(t, err, schema.ErrMalformedData)
	require.ErrorIs(t, err, structured.ErrMalformed)
	assert.Nil(t, value)
}

// TestGetObject_Fail_NotFound verifies that raw failures pass through.
func TestGetObject_Fail_NotFound(t *testing.T) {
	t.Parallel()

	rawMock := mocks.NewRawProvider(t)
	handler := NewHandler(rawMock)

	rawErr := schema.NewAttributeError(schema.OpGet, testTarget, "user.obj", schema.KindAttributeNotFound, nil)
	rawMock.On("GetRaw", testTarget, "user.obj").Return(nil, rawErr).Once()

	value, err := handler.GetObject(testTarget, "user.obj")
	require.ErrorIs(t, err, schema.ErrAttributeNotFound)
	assert.Nil(t, value)
}

func TestObjectRoundTrip(t *testing.T) {
	t.Parallel()

	fs := memxattr.New()
	fs.AddFile("/data/file")
	handler := NewHandler(rawio.NewHandler(fs))

	value := structured.Mapping{
		{Key: "series", Value: structured.String("Example")},
		{Key: "issue", Value: structured.Int(7)},
		{Key: "progress", Value: structured.Float(0.25)},
		{Key: "favorite", Value: structured.Bool(true)},
		{Key: "thumb", Value: structured.Blob{0x00, 0x01, 0xFF}},
		{Key: "pages", Value: structured.Sequence{structured.Int(1), structured.Int(2)}},
	}

	for _, format := range []structured.Format{structured.FormatYAML, structured.FormatCBOR} {
		require.NoError(t, handler.SetObject(testTarget, "user.obj", value, format))

		got, err := handler.GetObject(testTarget, "user.obj")
		require.NoError(t, err)
		assert.True(t, structured.Equal(value, got), "format %s: got %#v", format, got)
	}
}
