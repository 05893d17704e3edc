package interfaces

import (
	"github.com/13m0n4de/easy-fs-extracter/internal/types"
)

// SuperblockReader provides access to the decoded superblock fields
type SuperblockReader interface {
	// Magic returns the magic number found in the superblock
	Magic() uint32

	// TotalBlocks returns the total number of blocks in the image
	TotalBlocks() uint32

	// InodeBitmapBlocks returns the number of inode bitmap blocks
	InodeBitmapBlocks() uint32

	// InodeAreaBlocks returns the number of inode area blocks
	InodeAreaBlocks() uint32

	// DataBitmapBlocks returns the number of data bitmap blocks
	DataBitmapBlocks() uint32

	// DataAreaBlocks returns the number of data area blocks
	DataAreaBlocks() uint32

	// Superblock returns the underlying decoded superblock
	Superblock() *types.SuperblockT
}

// InodeReader provides access to one decoded on-disk inode record
type InodeReader interface {
	// FileType returns the inode's type tag
	FileType() types.FileType

	// IsFile reports whether the inode describes a regular file
	IsFile() bool

	// IsDirectory reports whether the inode describes a directory
	IsDirectory() bool

	// Size returns the declared byte size of the inode's content
	Size() uint32

	// DirectPointers returns a copy of the 27 direct block pointers
	DirectPointers() []uint32

	// Indirect1 returns the single-indirect block pointer
	Indirect1() uint32

	// Indirect2 returns the double-indirect block pointer
	Indirect2() uint32

	// Indirect3 returns the triple-indirect block pointer
	Indirect3() uint32

	// Inode returns the underlying decoded inode record
	Inode() *types.DiskInodeT
}

// IndirectBlockReader provides access to one decoded indirect block
type IndirectBlockReader interface {
	// Indices returns a copy of all 128 block indices in the block
	Indices() []uint32

	// ActiveIndices returns the indices up to but not including the
	// first zero sentinel
	ActiveIndices() []uint32
}

// DirEntryReader provides access to one decoded directory entry
type DirEntryReader interface {
	// Name returns the entry name, the name field's content up to the
	// first null byte
	Name() string

	// InodeIndex returns the inode index the entry references
	InodeIndex() uint32
}

// InodeBitmapReader provides access to the inode allocation bitmap
type InodeBitmapReader interface {
	// BitCount returns the number of allocation bits in the bitmap
	BitCount() uint32

	// IsAllocated reports whether the inode at the given index is marked
	// allocated
	IsAllocated(index uint32) bool

	// AllocatedIndices returns all allocated inode indices in ascending
	// order
	AllocatedIndices() []uint32
}
