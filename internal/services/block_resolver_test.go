package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/13m0n4de/easy-fs-extracter/internal/types"
)

func TestBlockResolver_DirectPointersStopAtSentinel(t *testing.T) {
	ti := newTestImage(64)
	reader := ti.open(t)
	resolver := NewBlockResolver(reader)

	inode := &types.DiskInodeT{
		FileType: types.FileTypeFile,
		Direct:   [types.DirectPointerCount]uint32{5, 7, 0, 9}, // 9 sits past the sentinel
	}

	blocks, err := resolver.ResolveDataBlocks(inode)
	require.NoError(t, err)
	assert.Equal(t, []uint32{5, 7}, blocks)
}

func TestBlockResolver_AllDirectPointers(t *testing.T) {
	ti := newTestImage(64)
	reader := ti.open(t)
	resolver := NewBlockResolver(reader)

	inode := &types.DiskInodeT{FileType: types.FileTypeFile}
	for i := range inode.Direct {
		inode.Direct[i] = uint32(10 + i)
	}

	blocks, err := resolver.ResolveDataBlocks(inode)
	require.NoError(t, err)
	require.Len(t, blocks, types.DirectPointerCount)
	assert.Equal(t, uint32(10), blocks[0])
	assert.Equal(t, uint32(10+types.DirectPointerCount-1), blocks[types.DirectPointerCount-1])
}

func TestBlockResolver_SingleIndirect(t *testing.T) {
	ti := newTestImage(64)
	ti.setIndirectBlock(12, 20, 21, 22)
	reader := ti.open(t)
	resolver := NewBlockResolver(reader)

	inode := &types.DiskInodeT{
		FileType:  types.FileTypeFile,
		Indirect1: 12,
	}

	blocks, err := resolver.ResolveDataBlocks(inode)
	require.NoError(t, err)
	assert.Equal(t, []uint32{20, 21, 22}, blocks)
}

func TestBlockResolver_DirectThenIndirect(t *testing.T) {
	ti := newTestImage(64)
	ti.setIndirectBlock(12, 20, 21)
	reader := ti.open(t)
	resolver := NewBlockResolver(reader)

	inode := &types.DiskInodeT{
		FileType:  types.FileTypeFile,
		Direct:    [types.DirectPointerCount]uint32{10, 11},
		Indirect1: 12,
	}

	blocks, err := resolver.ResolveDataBlocks(inode)
	require.NoError(t, err)
	assert.Equal(t, []uint32{10, 11, 20, 21}, blocks)
}

func TestBlockResolver_DoubleIndirect(t *testing.T) {
	ti := newTestImage(64)
	ti.setIndirectBlock(12, 13, 14)
	ti.setIndirectBlock(13, 30, 31)
	ti.setIndirectBlock(14, 32)
	reader := ti.open(t)
	resolver := NewBlockResolver(reader)

	inode := &types.DiskInodeT{
		FileType:  types.FileTypeFile,
		Indirect2: 12,
	}

	blocks, err := resolver.ResolveDataBlocks(inode)
	require.NoError(t, err)
	assert.Equal(t, []uint32{30, 31, 32}, blocks)
}

func TestBlockResolver_TripleIndirect(t *testing.T) {
	ti := newTestImage(64)
	ti.setIndirectBlock(15, 16)
	ti.setIndirectBlock(16, 17)
	ti.setIndirectBlock(17, 40, 41)
	reader := ti.open(t)
	resolver := NewBlockResolver(reader)

	inode := &types.DiskInodeT{
		FileType:  types.FileTypeFile,
		Indirect3: 15,
	}

	blocks, err := resolver.ResolveDataBlocks(inode)
	require.NoError(t, err)
	assert.Equal(t, []uint32{40, 41}, blocks)
}

func TestBlockResolver_IndirectBlockBeyondImage(t *testing.T) {
	ti := newTestImage(16)
	reader := ti.open(t)
	resolver := NewBlockResolver(reader)

	inode := &types.DiskInodeT{
		FileType:  types.FileTypeFile,
		Indirect1: 1000,
	}

	blocks, err := resolver.ResolveDataBlocks(inode)
	assert.ErrorIs(t, err, types.ErrShortRead)
	assert.Nil(t, blocks)
}
