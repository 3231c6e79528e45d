package property

import (
	"bytes"
	"testing"

	"github.com/g3n/fbxkit/fbxio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, v Value) Value {
	t.Helper()
	var buf bytes.Buffer
	n, err := v.WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, v.GetBytes(), n)
	got, err := ReadFrom(&buf)
	require.NoError(t, err)
	return got
}

func TestScalarRoundTrip(t *testing.T) {
	b, ok := roundTrip(t, NewBool(true)).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	i32, ok := roundTrip(t, NewInt32(-42)).Int32()
	assert.True(t, ok)
	assert.EqualValues(t, -42, i32)

	f64, ok := roundTrip(t, NewFloat64(3.5)).Float64()
	assert.True(t, ok)
	assert.Equal(t, 3.5, f64)

	s, ok := roundTrip(t, NewString("hello")).String_()
	assert.True(t, ok)
	assert.Equal(t, "hello", s)

	bl, ok := roundTrip(t, NewBlob([]byte{1, 2, 3})).Blob()
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, bl)
}

func TestArrayRoundTrip(t *testing.T) {
	in := []float32{1, 2, 3, 4}
	out, ok := roundTrip(t, NewFloat32Array(in)).Float32Slice()
	assert.True(t, ok)
	assert.Equal(t, in, out)
}

func TestCompressedArrayEquivalence(t *testing.T) {
	// S: a property written with encoding=0 and one with encoding=1 decode
	// to the same in-memory array.
	in := []int32{10, 20, 30, 40, 50}
	raw, comp := rawAndCompressed(t, NewInt32Array(in))

	got0, err := ReadFrom(bytes.NewReader(raw))
	require.NoError(t, err)
	got1, err := ReadFrom(bytes.NewReader(comp))
	require.NoError(t, err)

	s0, _ := got0.Int32Slice()
	s1, _ := got1.Int32Slice()
	assert.Equal(t, s0, s1)
	assert.Equal(t, in, s0)
}

// rawAndCompressed builds two serialized forms of the same array property:
// one with encoding=0 (what WriteTo emits) and one with encoding=1 (what a
// compressing writer, such as the original FBX SDK, may emit).
func rawAndCompressed(t *testing.T, v Value) (raw []byte, compressed []byte) {
	t.Helper()
	var buf bytes.Buffer
	_, err := v.WriteTo(&buf)
	require.NoError(t, err)
	raw = buf.Bytes()

	count, payload := v.arrayRaw()
	deflated, err := fbxio.Deflate(payload)
	require.NoError(t, err)

	var cbuf bytes.Buffer
	cbuf.WriteByte(byte(v.Tag))
	writeU32(&cbuf, uint32(count))
	writeU32(&cbuf, 1)
	writeU32(&cbuf, uint32(len(deflated)))
	cbuf.Write(deflated)
	return raw, cbuf.Bytes()
}

func writeU32(buf *bytes.Buffer, v uint32) {
	buf.WriteByte(byte(v))
	buf.WriteByte(byte(v >> 8))
	buf.WriteByte(byte(v >> 16))
	buf.WriteByte(byte(v >> 24))
}

func TestRenderString(t *testing.T) {
	assert.Equal(t, `a\\b`, renderString(`a\b`))
	assert.Equal(t, "\\u000a", renderString("\n"))
}

func TestRenderBlob(t *testing.T) {
	assert.Equal(t, `"1 2 255 "`, renderBlob([]byte{1, 2, 255}))
}

func TestRenderByteArrayIsUnsigned(t *testing.T) {
	v := NewInt8Array([]int8{-1, 0, 127})
	assert.Equal(t, "255,0,127", v.Render())
}
