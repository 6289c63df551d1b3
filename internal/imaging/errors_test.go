package imaging

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindOpen, "OpenError"},
		{KindDecode, "DecodeError"},
		{KindEncode, "EncodeError"},
		{KindDimensionRead, "DimensionReadError"},
		{KindRead, "ReadError"},
		{Kind(42), "Kind(42)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestError_Message(t *testing.T) {
	t.Parallel()

	err := newError(KindOpen, "open image", "/a.png", fs.ErrNotExist)

	assert.Equal(t, "failed to open image /a.png: file does not exist", err.Message())
	assert.Equal(t, "OpenError: failed to open image /a.png: file does not exist", err.Error())
	assert.Equal(t, "file does not exist", err.Cause())
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestError_IsMatchesKindOnly(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("wrapped: %w", newError(KindDecode, "decode image", "/b.png", errors.New("bad")))

	assert.ErrorIs(t, err, ErrDecode)
	assert.NotErrorIs(t, err, ErrOpen)
	assert.NotErrorIs(t, err, ErrEncode)
	assert.Equal(t, KindDecode, KindOf(err))
}

func TestKindOf_Foreign(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestError_NoCause(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ErrRead.Cause())
	assert.Equal(t, "ReadError: image operation failed", ErrRead.Error())
}
