package easyfs

import (
	"fmt"

	"github.com/13m0n4de/easy-fs-extracter/internal/interfaces"
	"github.com/13m0n4de/easy-fs-extracter/internal/types"
)

// inodeBitmapReader implements the InodeBitmapReader interface
type inodeBitmapReader struct {
	bitmap []byte
}

// Ensure interface compliance
var _ interfaces.InodeBitmapReader = (*inodeBitmapReader)(nil)

// NewInodeBitmapReader creates a new InodeBitmapReader from the raw inode
// bitmap, which may span one or more whole blocks. Bit order is byte-major,
// least-significant bit first within each byte.
func NewInodeBitmapReader(data []byte) (interfaces.InodeBitmapReader, error) {
	if len(data) == 0 || len(data)%types.BlockSize != 0 {
		return nil, fmt.Errorf("inode bitmap must be a whole number of blocks: %d bytes: %w",
			len(data), types.ErrShortRead)
	}

	bitmap := make([]byte, len(data))
	copy(bitmap, data)

	return &inodeBitmapReader{
		bitmap: bitmap,
	}, nil
}

func (br *inodeBitmapReader) BitCount() uint32 {
	return uint32(len(br.bitmap) * 8)
}

func (br *inodeBitmapReader) IsAllocated(index uint32) bool {
	if index >= br.BitCount() {
		return false
	}
	return br.bitmap[index/8]&(1<<(index%8)) != 0
}

// AllocatedIndices returns every set bit's inode index in ascending order
func (br *inodeBitmapReader) AllocatedIndices() []uint32 {
	var indices []uint32
	for byteIndex, b := range br.bitmap {
		if b == 0 {
			continue
		}
		for bit := uint32(0); bit < 8; bit++ {
			if b&(1<<bit) != 0 {
				indices = append(indices, uint32(byteIndex)*8+bit)
			}
		}
	}
	return indices
}
