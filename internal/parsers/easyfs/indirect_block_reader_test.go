package easyfs

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/13m0n4de/easy-fs-extracter/internal/types"
)

// createTestIndirectBlockData creates a raw indirect block whose leading
// entries are the given indices; remaining entries stay zero
func createTestIndirectBlockData(indices ...uint32) []byte {
	data := make([]byte, types.BlockSize)
	for i, index := range indices {
		binary.LittleEndian.PutUint32(data[i*4:i*4+4], index)
	}
	return data
}

func TestNewIndirectBlockReader(t *testing.T) {
	reader, err := NewIndirectBlockReader(make([]byte, 100), binary.LittleEndian)
	assert.ErrorIs(t, err, types.ErrShortRead)
	assert.Nil(t, reader)

	reader, err = NewIndirectBlockReader(createTestIndirectBlockData(), binary.LittleEndian)
	assert.NoError(t, err)
	assert.NotNil(t, reader)
}

func TestIndirectBlockReader_ActiveIndices(t *testing.T) {
	tests := []struct {
		name     string
		indices  []uint32
		expected []uint32
	}{
		{
			name:     "empty block",
			indices:  nil,
			expected: []uint32{},
		},
		{
			name:     "three entries then sentinel",
			indices:  []uint32{10, 11, 12},
			expected: []uint32{10, 11, 12},
		},
		{
			name:     "entries after sentinel are ignored",
			indices:  []uint32{10, 0, 12},
			expected: []uint32{10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewIndirectBlockReader(createTestIndirectBlockData(tt.indices...), binary.LittleEndian)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, reader.ActiveIndices())
		})
	}
}

func TestIndirectBlockReader_FullBlock(t *testing.T) {
	indices := make([]uint32, types.IndirectEntryCount)
	for i := range indices {
		indices[i] = uint32(i + 100)
	}

	reader, err := NewIndirectBlockReader(createTestIndirectBlockData(indices...), binary.LittleEndian)
	require.NoError(t, err)

	active := reader.ActiveIndices()
	require.Len(t, active, types.IndirectEntryCount)
	assert.Equal(t, uint32(100), active[0])
	assert.Equal(t, uint32(100+types.IndirectEntryCount-1), active[types.IndirectEntryCount-1])

	all := reader.Indices()
	assert.Len(t, all, types.IndirectEntryCount)
}
