package easyfs

import (
	"encoding/binary"
	"fmt"

	"github.com/13m0n4de/easy-fs-extracter/internal/interfaces"
	"github.com/13m0n4de/easy-fs-extracter/internal/types"
)

// superblockReader implements the SuperblockReader interface
type superblockReader struct {
	superblock *types.SuperblockT
}

// Ensure interface compliance
var _ interfaces.SuperblockReader = (*superblockReader)(nil)

// NewSuperblockReader creates a new SuperblockReader from raw data.
// The data must hold at least the 24 meaningful superblock bytes and carry
// a valid magic number.
func NewSuperblockReader(data []byte, endian binary.ByteOrder) (interfaces.SuperblockReader, error) {
	if len(data) < types.SuperblockSize {
		return nil, fmt.Errorf("data too small for superblock: %d bytes, need %d: %w",
			len(data), types.SuperblockSize, types.ErrShortRead)
	}

	superblock := parseSuperblock(data, endian)

	if superblock.Magic != types.Magic {
		return nil, fmt.Errorf("%w: got 0x%08X, want 0x%08X",
			types.ErrBadMagic, superblock.Magic, types.Magic)
	}

	return &superblockReader{
		superblock: superblock,
	}, nil
}

// parseSuperblock parses raw bytes into a SuperblockT structure
func parseSuperblock(data []byte, endian binary.ByteOrder) *types.SuperblockT {
	return &types.SuperblockT{
		Magic:             endian.Uint32(data[0:4]),
		TotalBlocks:       endian.Uint32(data[4:8]),
		InodeBitmapBlocks: endian.Uint32(data[8:12]),
		InodeAreaBlocks:   endian.Uint32(data[12:16]),
		DataBitmapBlocks:  endian.Uint32(data[16:20]),
		DataAreaBlocks:    endian.Uint32(data[20:24]),
	}
}

func (sr *superblockReader) Magic() uint32 {
	return sr.superblock.Magic
}

func (sr *superblockReader) TotalBlocks() uint32 {
	return sr.superblock.TotalBlocks
}

func (sr *superblockReader) InodeBitmapBlocks() uint32 {
	return sr.superblock.InodeBitmapBlocks
}

func (sr *superblockReader) InodeAreaBlocks() uint32 {
	return sr.superblock.InodeAreaBlocks
}

func (sr *superblockReader) DataBitmapBlocks() uint32 {
	return sr.superblock.DataBitmapBlocks
}

func (sr *superblockReader) DataAreaBlocks() uint32 {
	return sr.superblock.DataAreaBlocks
}

func (sr *superblockReader) Superblock() *types.SuperblockT {
	return sr.superblock
}
