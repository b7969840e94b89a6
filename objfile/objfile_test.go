package objfile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcs4/cpu"
)

func TestBinRoundTrip(t *testing.T) {
	mem := make([]byte, cpu.MemorySize)
	mem[0] = 0xD7
	mem[1] = cpu.EndOfProgramByte

	var buf bytes.Buffer
	require.NoError(t, WriteBin(&buf, mem))

	got, err := ReadBin(&buf)
	require.NoError(t, err)
	assert.Equal(t, mem[:2], got[:2])
}

func TestObjRoundTrip(t *testing.T) {
	pin := true
	obj := &ObjectFile{
		Location: "rom",
		Memory:   []byte{0xD7, 0xFF},
		Labels:   map[string]int{"start": 0, "loop": 5},
		Pin10:    &pin,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteObj(&buf, obj))

	got, err := ReadObj(&buf)
	require.NoError(t, err)
	assert.Equal(t, obj.Location, got.Location)
	assert.Equal(t, obj.Memory, got.Memory)
	assert.Equal(t, obj.Labels, got.Labels)
	require.NotNil(t, got.Pin10)
	assert.True(t, *got.Pin10)
}

func TestReadObjRejectsMalformedLine(t *testing.T) {
	_, err := ReadObj(bytes.NewBufferString("not a valid line\n"))
	require.Error(t, err)
}
