package easyfs

import (
	"encoding/binary"
	"fmt"

	"github.com/13m0n4de/easy-fs-extracter/internal/interfaces"
	"github.com/13m0n4de/easy-fs-extracter/internal/types"
)

// inodeReader implements the InodeReader interface
type inodeReader struct {
	inode *types.DiskInodeT
}

// Ensure interface compliance
var _ interfaces.InodeReader = (*inodeReader)(nil)

// NewInodeReader creates a new InodeReader from one raw 128-byte inode record
func NewInodeReader(data []byte, endian binary.ByteOrder) (interfaces.InodeReader, error) {
	if len(data) < types.InodeSize {
		return nil, fmt.Errorf("data too small for inode record: %d bytes, need %d: %w",
			len(data), types.InodeSize, types.ErrShortRead)
	}

	return &inodeReader{
		inode: parseInode(data, endian),
	}, nil
}

// parseInode parses raw bytes into a DiskInodeT structure.
// Layout: type tag (1 byte), 3 bytes padding, size (4 bytes), 27 direct
// pointers (4 bytes each), then the single/double/triple indirect pointers.
func parseInode(data []byte, endian binary.ByteOrder) *types.DiskInodeT {
	inode := &types.DiskInodeT{
		FileType: types.FileType(data[0]),
		Size:     endian.Uint32(data[4:8]),
	}

	offset := 8
	for i := 0; i < types.DirectPointerCount; i++ {
		inode.Direct[i] = endian.Uint32(data[offset : offset+4])
		offset += 4
	}

	inode.Indirect1 = endian.Uint32(data[offset : offset+4])
	inode.Indirect2 = endian.Uint32(data[offset+4 : offset+8])
	inode.Indirect3 = endian.Uint32(data[offset+8 : offset+12])

	return inode
}

func (ir *inodeReader) FileType() types.FileType {
	return ir.inode.FileType
}

func (ir *inodeReader) IsFile() bool {
	return ir.inode.FileType == types.FileTypeFile
}

func (ir *inodeReader) IsDirectory() bool {
	return ir.inode.FileType == types.FileTypeDirectory
}

func (ir *inodeReader) Size() uint32 {
	return ir.inode.Size
}

func (ir *inodeReader) DirectPointers() []uint32 {
	pointers := make([]uint32, types.DirectPointerCount)
	copy(pointers, ir.inode.Direct[:])
	return pointers
}

func (ir *inodeReader) Indirect1() uint32 {
	return ir.inode.Indirect1
}

func (ir *inodeReader) Indirect2() uint32 {
	return ir.inode.Indirect2
}

func (ir *inodeReader) Indirect3() uint32 {
	return ir.inode.Indirect3
}

func (ir *inodeReader) Inode() *types.DiskInodeT {
	return ir.inode
}
