package easyfs

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/13m0n4de/easy-fs-extracter/internal/interfaces"
	"github.com/13m0n4de/easy-fs-extracter/internal/types"
)

// dirEntryReader implements the DirEntryReader interface
type dirEntryReader struct {
	entry *types.DirEntryT
}

// Ensure interface compliance
var _ interfaces.DirEntryReader = (*dirEntryReader)(nil)

// NewDirEntryReader creates a new DirEntryReader from one raw 32-byte
// directory entry: a 28-byte null-padded name followed by a 4-byte inode
// index. An entry whose name field is empty is rejected rather than
// decoded into an empty path segment.
func NewDirEntryReader(data []byte, endian binary.ByteOrder) (interfaces.DirEntryReader, error) {
	if len(data) < types.DirEntrySize {
		return nil, fmt.Errorf("data too small for directory entry: %d bytes, need %d: %w",
			len(data), types.DirEntrySize, types.ErrShortRead)
	}

	nameField := data[:types.DirEntryNameSize]
	if nul := bytes.IndexByte(nameField, 0); nul >= 0 {
		nameField = nameField[:nul]
	}
	if len(nameField) == 0 {
		return nil, fmt.Errorf("%w: empty name", types.ErrInvalidEntry)
	}

	return &dirEntryReader{
		entry: &types.DirEntryT{
			Name:       string(nameField),
			InodeIndex: endian.Uint32(data[types.DirEntryNameSize:types.DirEntrySize]),
		},
	}, nil
}

func (dr *dirEntryReader) Name() string {
	return dr.entry.Name
}

func (dr *dirEntryReader) InodeIndex() uint32 {
	return dr.entry.InodeIndex
}
