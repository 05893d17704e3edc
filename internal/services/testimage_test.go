package services

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/13m0n4de/easy-fs-extracter/internal/types"
)

// testImage builds a synthetic easy-fs image in memory.
//
// Geometry used by the tests: block 0 superblock, block 1 inode bitmap,
// inode area from byte offset 1024 (32 inodes across blocks 2..9), data
// and indirect blocks from index 10 upward.
type testImage struct {
	data   []byte
	endian binary.ByteOrder
}

func newTestImage(totalBlocks uint32) *testImage {
	ti := &testImage{
		data:   make([]byte, int(totalBlocks)*types.BlockSize),
		endian: binary.LittleEndian,
	}

	ti.endian.PutUint32(ti.data[0:4], types.Magic)
	ti.endian.PutUint32(ti.data[4:8], totalBlocks)
	ti.endian.PutUint32(ti.data[8:12], 1) // inode bitmap blocks
	ti.endian.PutUint32(ti.data[12:16], 8)
	ti.endian.PutUint32(ti.data[16:20], 1)
	ti.endian.PutUint32(ti.data[20:24], totalBlocks-11)

	return ti
}

func (ti *testImage) setMagic(magic uint32) {
	ti.endian.PutUint32(ti.data[0:4], magic)
}

func (ti *testImage) setInodeBitmapBlocks(count uint32) {
	ti.endian.PutUint32(ti.data[8:12], count)
}

// allocInode sets the allocation bit for an inode index. Indices past the
// first bitmap block land in the following blocks.
func (ti *testImage) allocInode(index uint32) {
	offset := types.InodeBitmapBlock*types.BlockSize + int(index/8)
	ti.data[offset] |= 1 << (index % 8)
}

func (ti *testImage) setInode(index uint32, inode types.DiskInodeT) {
	offset := types.InodeAreaOffset + int(index)*types.InodeSize

	ti.data[offset] = byte(inode.FileType)
	ti.endian.PutUint32(ti.data[offset+4:offset+8], inode.Size)

	fieldOffset := offset + 8
	for _, pointer := range inode.Direct {
		ti.endian.PutUint32(ti.data[fieldOffset:fieldOffset+4], pointer)
		fieldOffset += 4
	}
	ti.endian.PutUint32(ti.data[fieldOffset:fieldOffset+4], inode.Indirect1)
	ti.endian.PutUint32(ti.data[fieldOffset+4:fieldOffset+8], inode.Indirect2)
	ti.endian.PutUint32(ti.data[fieldOffset+8:fieldOffset+12], inode.Indirect3)
}

func (ti *testImage) setBlock(index uint32, content []byte) {
	copy(ti.data[int(index)*types.BlockSize:(int(index)+1)*types.BlockSize], content)
}

// setIndirectBlock fills a block with the given indices, zero-terminated
func (ti *testImage) setIndirectBlock(index uint32, indices ...uint32) {
	block := make([]byte, types.BlockSize)
	for i, entry := range indices {
		ti.endian.PutUint32(block[i*4:i*4+4], entry)
	}
	ti.setBlock(index, block)
}

// dirEntry encodes one 32-byte directory entry
func (ti *testImage) dirEntry(name string, inodeIndex uint32) []byte {
	entry := make([]byte, types.DirEntrySize)
	copy(entry[:types.DirEntryNameSize], name)
	ti.endian.PutUint32(entry[types.DirEntryNameSize:], inodeIndex)
	return entry
}

// dirContent builds directory content: self and parent entries first, then
// the given child entries
func (ti *testImage) dirContent(selfInode, parentInode uint32, children ...[]byte) []byte {
	content := append([]byte{}, ti.dirEntry(".", selfInode)...)
	content = append(content, ti.dirEntry("..", parentInode)...)
	for _, child := range children {
		content = append(content, child...)
	}
	return content
}

// write persists the image into a temp file and returns its path
func (ti *testImage) write(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fs.img")
	require.NoError(t, os.WriteFile(path, ti.data, 0o644))
	return path
}

// open builds an ImageReader over the written image
func (ti *testImage) open(t *testing.T) *ImageReader {
	t.Helper()
	reader, err := NewImageReader(ti.write(t))
	require.NoError(t, err)
	t.Cleanup(func() { reader.Close() })
	return reader
}
