package easyfs

import (
	"encoding/binary"
	"fmt"

	"github.com/13m0n4de/easy-fs-extracter/internal/interfaces"
	"github.com/13m0n4de/easy-fs-extracter/internal/types"
)

// indirectBlockReader implements the IndirectBlockReader interface
type indirectBlockReader struct {
	indices [types.IndirectEntryCount]uint32
}

// Ensure interface compliance
var _ interfaces.IndirectBlockReader = (*indirectBlockReader)(nil)

// NewIndirectBlockReader creates a new IndirectBlockReader from one raw
// 512-byte indirect block, interpreted as 128 block indices
func NewIndirectBlockReader(data []byte, endian binary.ByteOrder) (interfaces.IndirectBlockReader, error) {
	if len(data) < types.BlockSize {
		return nil, fmt.Errorf("data too small for indirect block: %d bytes, need %d: %w",
			len(data), types.BlockSize, types.ErrShortRead)
	}

	reader := &indirectBlockReader{}
	for i := 0; i < types.IndirectEntryCount; i++ {
		reader.indices[i] = endian.Uint32(data[i*4 : i*4+4])
	}

	return reader, nil
}

func (ir *indirectBlockReader) Indices() []uint32 {
	indices := make([]uint32, types.IndirectEntryCount)
	copy(indices, ir.indices[:])
	return indices
}

// ActiveIndices returns the indices up to but not including the first zero.
// Block 0 holds the superblock, so a zero entry always means "end of list".
func (ir *indirectBlockReader) ActiveIndices() []uint32 {
	active := make([]uint32, 0, types.IndirectEntryCount)
	for _, index := range ir.indices {
		if index == 0 {
			break
		}
		active = append(active, index)
	}
	return active
}
