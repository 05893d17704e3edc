package services

import (
	"fmt"

	"github.com/13m0n4de/easy-fs-extracter/internal/parsers/easyfs"
	"github.com/13m0n4de/easy-fs-extracter/internal/types"
)

// maxIndirectLevel is fixed by the on-disk format: inodes carry single,
// double and triple indirect pointers and nothing deeper.
const maxIndirectLevel = 3

// BlockResolver turns an inode's pointer fields into the ordered list of
// data block indices backing its content.
type BlockResolver struct {
	image *ImageReader
}

// NewBlockResolver creates a resolver over the given image
func NewBlockResolver(image *ImageReader) *BlockResolver {
	return &BlockResolver{image: image}
}

// ResolveDataBlocks returns the data block indices backing the inode, in
// content order: the 27 direct pointers first, then the single, double and
// triple indirect chains. In every pointer list a zero entry terminates
// that list; the format has no holes within a level.
func (br *BlockResolver) ResolveDataBlocks(inode *types.DiskInodeT) ([]uint32, error) {
	var blocks []uint32

	for _, pointer := range inode.Direct {
		if pointer == 0 {
			break
		}
		blocks = append(blocks, pointer)
	}

	indirect := []struct {
		pointer uint32
		level   int
	}{
		{inode.Indirect1, 1},
		{inode.Indirect2, 2},
		{inode.Indirect3, 3},
	}
	for _, chain := range indirect {
		if chain.pointer == 0 {
			continue
		}
		if err := br.resolveIndirect(chain.pointer, chain.level, &blocks); err != nil {
			return nil, err
		}
	}

	return blocks, nil
}

// resolveIndirect appends the data block indices reachable through the
// indirect block at the given index. Level 1 entries reference data blocks
// directly; higher levels recurse with level-1 for each entry. The level is
// bounded at 3 by the format, so the recursion depth is static.
func (br *BlockResolver) resolveIndirect(index uint32, level int, blocks *[]uint32) error {
	if level < 1 || level > maxIndirectLevel {
		return fmt.Errorf("invalid indirect level %d", level)
	}

	blockData, err := br.image.ReadBlock(index)
	if err != nil {
		return fmt.Errorf("failed to read level %d indirect block %d: %w", level, index, err)
	}

	indirectReader, err := easyfs.NewIndirectBlockReader(blockData, br.image.Endianness())
	if err != nil {
		return fmt.Errorf("failed to parse level %d indirect block %d: %w", level, index, err)
	}

	for _, entry := range indirectReader.ActiveIndices() {
		if level == 1 {
			*blocks = append(*blocks, entry)
			continue
		}
		if err := br.resolveIndirect(entry, level-1, blocks); err != nil {
			return err
		}
	}

	return nil
}
