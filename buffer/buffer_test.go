package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendByteAndBytes(t *testing.T) {
	buf := New(0)
	buf.AppendByte('a')
	buf.AppendBytes([]byte("bc"))
	assert.Equal(t, []byte("abc"), buf.Bytes())
	assert.Equal(t, 3, buf.Len())
}

func TestAppendEmbeddedNUL(t *testing.T) {
	buf := New(0)
	buf.AppendBytes([]byte{'a', 0x00, 'b'})
	require.Equal(t, 3, buf.Len())
	assert.Equal(t, byte(0x00), buf.Bytes()[1])
}

func TestPrependBytes(t *testing.T) {
	buf := NewFrom([]byte("world"))
	buf.PrependBytes([]byte("hello "))
	assert.Equal(t, "hello world", string(buf.Bytes()))
}

func TestIndex(t *testing.T) {
	buf := NewFrom([]byte("abcXdefX"))
	assert.Equal(t, 3, buf.Index([]byte{'X'}))
	assert.Equal(t, -1, buf.Index([]byte("zzz")))
}

func TestTakeResets(t *testing.T) {
	buf := NewFrom([]byte("data"))
	out := buf.Take()
	assert.Equal(t, "data", string(out))
	assert.Equal(t, 0, buf.Len())
}

func TestResetKeepsCapacity(t *testing.T) {
	buf := New(64)
	buf.AppendBytes([]byte("some bytes"))
	buf.Reset()
	assert.Equal(t, 0, buf.Len())
	buf.AppendByte('x')
	assert.Equal(t, "x", string(buf.Bytes()))
}

func TestGrowAmortised(t *testing.T) {
	buf := New(0)
	for i := 0; i < 10000; i++ {
		buf.AppendByte(byte(i))
	}
	assert.Equal(t, 10000, buf.Len())
}

func TestNewFromCopiesSource(t *testing.T) {
	src := []byte("abc")
	buf := NewFrom(src)
	src[0] = 'z'
	assert.Equal(t, "abc", string(buf.Bytes()))
}
