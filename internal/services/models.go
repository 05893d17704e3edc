package services

import (
	"github.com/13m0n4de/easy-fs-extracter/internal/types"
)

// FileEntry describes one node encountered during a tree walk
type FileEntry struct {
	Inode    uint32
	Name     string
	Path     string
	IsDir    bool
	Size     uint32
	FileType types.FileType
}

// walkItem is one pending node on the restore work list
type walkItem struct {
	inode uint32
	path  string
	depth int
}
