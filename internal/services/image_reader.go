package services

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/13m0n4de/easy-fs-extracter/internal/parsers/easyfs"
	"github.com/13m0n4de/easy-fs-extracter/internal/types"
)

// ImageReader provides read-only, random-access block and inode reads over
// an easy-fs image file. The image is never written to.
type ImageReader struct {
	file             *os.File
	superblock       *types.SuperblockT
	imageSize        int64
	endian           binary.ByteOrder
	mu               sync.RWMutex
	blockCache       map[uint32][]byte
	maxCacheSize     int
	currentCacheSize int
}

// NewImageReader opens an image file and validates its superblock.
// A magic mismatch fails here, before anything is extracted.
func NewImageReader(imagePath string) (*ImageReader, error) {
	if imagePath == "" {
		return nil, fmt.Errorf("image file path cannot be empty")
	}

	file, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}

	fileInfo, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to get image file info: %w", err)
	}

	superblockData := make([]byte, types.BlockSize)
	n, err := file.ReadAt(superblockData, 0)
	if err != nil && err != io.EOF {
		file.Close()
		return nil, fmt.Errorf("failed to read superblock: %w", err)
	}
	if n < types.BlockSize {
		file.Close()
		return nil, fmt.Errorf("superblock block truncated: got %d bytes, need %d: %w",
			n, types.BlockSize, types.ErrShortRead)
	}

	sbReader, err := easyfs.NewSuperblockReader(superblockData, binary.LittleEndian)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to parse superblock: %w", err)
	}

	return &ImageReader{
		file:         file,
		superblock:   sbReader.Superblock(),
		imageSize:    fileInfo.Size(),
		endian:       binary.LittleEndian,
		blockCache:   make(map[uint32][]byte),
		maxCacheSize: 8 * 1024 * 1024, // 8MB cache
	}, nil
}

// ReadBlock reads a single 512-byte block from the image.
// A block that extends past the end of the image is a hard error, never
// silently zero-padded.
func (ir *ImageReader) ReadBlock(index uint32) ([]byte, error) {
	ir.mu.RLock()
	if cached, exists := ir.blockCache[index]; exists {
		ir.mu.RUnlock()
		return append([]byte{}, cached...), nil // Return copy
	}
	ir.mu.RUnlock()

	offset := int64(index) * types.BlockSize
	if offset >= ir.imageSize {
		return nil, fmt.Errorf("block %d is beyond image size: %w", index, types.ErrShortRead)
	}

	blockData := make([]byte, types.BlockSize)
	n, err := ir.file.ReadAt(blockData, offset)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read block %d: %w", index, err)
	}
	if n < types.BlockSize {
		return nil, fmt.Errorf("incomplete read of block %d: got %d bytes, expected %d: %w",
			index, n, types.BlockSize, types.ErrShortRead)
	}

	ir.mu.Lock()
	ir.cacheBlock(index, blockData)
	ir.mu.Unlock()

	return append([]byte{}, blockData...), nil // Return copy
}

// ReadInode reads and decodes the inode record at the given index.
// Inode records are packed from byte offset 1024 and are not block-aligned.
func (ir *ImageReader) ReadInode(index uint32) (*types.DiskInodeT, error) {
	offset := int64(types.InodeAreaOffset) + int64(index)*types.InodeSize
	if offset+types.InodeSize > ir.imageSize {
		return nil, fmt.Errorf("inode %d is beyond image size: %w", index, types.ErrShortRead)
	}

	inodeData := make([]byte, types.InodeSize)
	n, err := ir.file.ReadAt(inodeData, offset)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read inode %d: %w", index, err)
	}
	if n < types.InodeSize {
		return nil, fmt.Errorf("incomplete read of inode %d: got %d bytes, expected %d: %w",
			index, n, types.InodeSize, types.ErrShortRead)
	}

	inodeReader, err := easyfs.NewInodeReader(inodeData, ir.endian)
	if err != nil {
		return nil, fmt.Errorf("failed to parse inode %d: %w", index, err)
	}

	return inodeReader.Inode(), nil
}

// ReadInodeBitmap reads the inode bitmap, honoring the block count the
// superblock declares rather than assuming a single block.
func (ir *ImageReader) ReadInodeBitmap() ([]byte, error) {
	blocks := ir.superblock.InodeBitmapBlocks
	if blocks == 0 {
		return nil, fmt.Errorf("superblock declares zero inode bitmap blocks")
	}

	bitmap := make([]byte, 0, int(blocks)*types.BlockSize)
	for i := uint32(0); i < blocks; i++ {
		blockData, err := ir.ReadBlock(types.InodeBitmapBlock + i)
		if err != nil {
			return nil, fmt.Errorf("failed to read inode bitmap block %d: %w", i, err)
		}
		bitmap = append(bitmap, blockData...)
	}

	return bitmap, nil
}

// cacheBlock adds a block to the cache, respecting the size limit.
// Must be called with mu locked.
func (ir *ImageReader) cacheBlock(index uint32, data []byte) {
	if ir.currentCacheSize+len(data) > ir.maxCacheSize {
		ir.blockCache = make(map[uint32][]byte)
		ir.currentCacheSize = 0
	}

	ir.blockCache[index] = append([]byte{}, data...)
	ir.currentCacheSize += len(data)
}

// Superblock returns the validated superblock
func (ir *ImageReader) Superblock() *types.SuperblockT {
	return ir.superblock
}

// ImageSize returns the image file size in bytes
func (ir *ImageReader) ImageSize() int64 {
	return ir.imageSize
}

// Endianness returns the byte order used by the image
func (ir *ImageReader) Endianness() binary.ByteOrder {
	return ir.endian
}

// Close closes the underlying image file
func (ir *ImageReader) Close() error {
	if ir.file != nil {
		return ir.file.Close()
	}
	return nil
}
