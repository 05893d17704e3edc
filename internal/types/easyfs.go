package types

// On-disk geometry of the easy-fs teaching filesystem. All multi-byte
// integers in the image are little-endian.
const (
	// BlockSize is the fixed size of every block in the image.
	BlockSize = 512

	// InodeSize is the size of one packed on-disk inode record.
	InodeSize = 128

	// DirEntrySize is the size of one directory entry record.
	DirEntrySize = 32

	// DirEntryNameSize is the fixed width of a directory entry's
	// null-padded name field.
	DirEntryNameSize = 28

	// SuperblockSize is the number of meaningful bytes at the start of
	// block 0; the rest of the block is padding.
	SuperblockSize = 24

	// DirectPointerCount is the number of direct block pointers held in
	// each inode.
	DirectPointerCount = 27

	// IndirectEntryCount is the number of block indices packed into one
	// indirect block.
	IndirectEntryCount = BlockSize / 4

	// InodeAreaOffset is the byte offset of the packed inode area.
	// Block 0 holds the superblock and block 1 starts the inode bitmap.
	InodeAreaOffset = 2 * BlockSize

	// InodeBitmapBlock is the block index where the inode bitmap begins.
	InodeBitmapBlock = 1

	// BitsPerBitmapBlock is the number of inode allocation bits carried
	// by one bitmap block.
	BitsPerBitmapBlock = BlockSize * 8

	// RootInodeIndex is the inode index of the filesystem root directory.
	RootInodeIndex = 0

	// DirEntrySkipOffset is the byte offset of the first real entry in a
	// directory's content; the two entries before it are the conventional
	// self and parent references.
	DirEntrySkipOffset = 2 * DirEntrySize
)

// Magic is the superblock magic number identifying an easy-fs image.
const Magic uint32 = 0x3B800001

// FileType is the on-disk inode type tag.
type FileType uint8

const (
	// FileTypeFile marks a regular file inode.
	FileTypeFile FileType = 0
	// FileTypeDirectory marks a directory inode.
	FileTypeDirectory FileType = 1
)

// String returns a human-readable name for the file type.
func (ft FileType) String() string {
	switch ft {
	case FileTypeFile:
		return "file"
	case FileTypeDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// SuperblockT is the decoded superblock from block 0.
type SuperblockT struct {
	Magic             uint32
	TotalBlocks       uint32
	InodeBitmapBlocks uint32
	InodeAreaBlocks   uint32
	DataBitmapBlocks  uint32
	DataAreaBlocks    uint32
}

// DiskInodeT is one decoded 128-byte on-disk inode record.
//
// A pointer value of 0 terminates the corresponding list early: block 0 is
// permanently occupied by the superblock, so 0 can never be a valid data or
// indirect block address.
type DiskInodeT struct {
	FileType  FileType
	Size      uint32
	Direct    [DirectPointerCount]uint32
	Indirect1 uint32
	Indirect2 uint32
	Indirect3 uint32
}

// DirEntryT is one decoded 32-byte directory entry.
type DirEntryT struct {
	Name       string
	InodeIndex uint32
}
