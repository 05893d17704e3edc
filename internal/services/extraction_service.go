package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/13m0n4de/easy-fs-extracter/internal/parsers/easyfs"
	"github.com/13m0n4de/easy-fs-extracter/internal/types"
	"github.com/13m0n4de/easy-fs-extracter/pkg/app"
	"github.com/13m0n4de/easy-fs-extracter/pkg/app/report"
)

// DefaultMaxWalkDepth bounds directory nesting during restore. The walk
// refuses to descend past it so a crafted image cannot drive it forever.
const DefaultMaxWalkDepth = 64

// ExtractionService reconstructs directory trees and dumps file content
// from an opened image. It only ever reads the image; the host output
// directory is the only thing it writes.
type ExtractionService struct {
	image        *ImageReader
	resolver     *BlockResolver
	ctx          *app.Context
	maxWalkDepth int
}

// NewExtractionService creates an extraction service over the given image
func NewExtractionService(image *ImageReader, ctx *app.Context) *ExtractionService {
	return &ExtractionService{
		image:        image,
		resolver:     NewBlockResolver(image),
		ctx:          ctx,
		maxWalkDepth: DefaultMaxWalkDepth,
	}
}

// SetMaxWalkDepth overrides the restore-mode nesting bound
func (es *ExtractionService) SetMaxWalkDepth(depth int) {
	if depth > 0 {
		es.maxWalkDepth = depth
	}
}

// ReadFile resolves and concatenates an inode's data blocks, truncated to
// the inode's declared size. If the resolved blocks hold fewer bytes than
// the inode declares, the content is not returned at all: a short file
// written silently is worse than a reported failure.
func (es *ExtractionService) ReadFile(inode *types.DiskInodeT) ([]byte, error) {
	blocks, err := es.resolver.ResolveDataBlocks(inode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data blocks: %w", err)
	}

	content := make([]byte, 0, len(blocks)*types.BlockSize)
	for _, index := range blocks {
		blockData, err := es.image.ReadBlock(index)
		if err != nil {
			return nil, fmt.Errorf("failed to read data block %d: %w", index, err)
		}
		content = append(content, blockData...)
	}

	if len(content) < int(inode.Size) {
		return nil, fmt.Errorf("%w: resolved %d bytes, inode declares %d",
			types.ErrIncompleteData, len(content), inode.Size)
	}

	return content[:inode.Size], nil
}

// RestoreTree reconstructs the directory tree rooted at the given inode
// under outputDir. Per-entry failures are recorded on the report and do
// not stop the walk; only the root inode being unreadable fails the run.
//
// The walk is an explicit work list with a visited set rather than naked
// recursion: image-driven nesting depth and reference cycles are inputs to
// guard against, not to trust.
func (es *ExtractionService) RestoreTree(rootInode uint32, outputDir string, r *report.Report) error {
	visited := make(map[uint32]bool)
	worklist := []walkItem{{inode: rootInode, path: outputDir, depth: 0}}

	for len(worklist) > 0 {
		item := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if visited[item.inode] {
			r.AddSkip(item.path, item.inode, "inode already visited (cycle in directory tree)")
			continue
		}
		visited[item.inode] = true

		if item.depth > es.maxWalkDepth {
			r.AddSkip(item.path, item.inode, fmt.Sprintf("nesting exceeds depth limit %d", es.maxWalkDepth))
			continue
		}

		inode, err := es.image.ReadInode(item.inode)
		if err != nil {
			if item.inode == rootInode {
				return fmt.Errorf("failed to read root inode %d: %w", rootInode, err)
			}
			r.AddSkip(item.path, item.inode, err.Error())
			continue
		}

		switch inode.FileType {
		case types.FileTypeDirectory:
			children, err := es.restoreDirectory(item, inode, r)
			if err != nil {
				if item.inode == rootInode {
					return err
				}
				r.AddSkip(item.path, item.inode, err.Error())
				continue
			}
			worklist = append(worklist, children...)

		case types.FileTypeFile:
			if err := es.restoreFile(item, inode, r); err != nil {
				r.AddSkip(item.path, item.inode, err.Error())
			}

		default:
			r.AddSkip(item.path, item.inode, fmt.Sprintf("unsupported file type %d", inode.FileType))
		}
	}

	return nil
}

// restoreDirectory creates the host directory, decodes the directory's
// entries and returns the children to walk. The first two 32-byte entries
// are the conventional self and parent references and are skipped by
// offset. Malformed entries are recorded and do not fail the directory.
func (es *ExtractionService) restoreDirectory(item walkItem, inode *types.DiskInodeT, r *report.Report) ([]walkItem, error) {
	// MkdirAll tolerates a pre-existing directory
	if err := os.MkdirAll(item.path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	r.AddDirectory()
	es.ctx.Logf("restored directory %s", item.path)

	content, err := es.ReadFile(inode)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory content: %w", err)
	}

	var children []walkItem
	for offset := types.DirEntrySkipOffset; offset+types.DirEntrySize <= len(content); offset += types.DirEntrySize {
		entryReader, err := easyfs.NewDirEntryReader(content[offset:offset+types.DirEntrySize], es.image.Endianness())
		if err != nil {
			r.AddSkip(item.path, item.inode, fmt.Sprintf("entry at offset %d: %v", offset, err))
			continue
		}

		children = append(children, walkItem{
			inode: entryReader.InodeIndex(),
			path:  filepath.Join(item.path, entryReader.Name()),
			depth: item.depth + 1,
		})
	}

	return children, nil
}

// restoreFile extracts a regular file's content and writes it to the host
func (es *ExtractionService) restoreFile(item walkItem, inode *types.DiskInodeT, r *report.Report) error {
	content, err := es.ReadFile(inode)
	if err != nil {
		return err
	}

	if err := os.WriteFile(item.path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	r.AddFile(item.path, item.inode, uint64(len(content)))
	es.ctx.Logf("extracted file %s", item.path)
	return nil
}

// ListDirectory decodes a directory inode's entries without writing
// anything to the host. Self and parent entries are skipped. Child inodes
// that cannot be read still appear, with only name and index filled in.
func (es *ExtractionService) ListDirectory(inodeIndex uint32) ([]FileEntry, error) {
	inode, err := es.image.ReadInode(inodeIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to read inode %d: %w", inodeIndex, err)
	}
	if inode.FileType != types.FileTypeDirectory {
		return nil, fmt.Errorf("inode %d is a %s, not a directory", inodeIndex, inode.FileType)
	}

	content, err := es.ReadFile(inode)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory content: %w", err)
	}

	var entries []FileEntry
	for offset := types.DirEntrySkipOffset; offset+types.DirEntrySize <= len(content); offset += types.DirEntrySize {
		entryReader, err := easyfs.NewDirEntryReader(content[offset:offset+types.DirEntrySize], es.image.Endianness())
		if err != nil {
			continue
		}

		entry := FileEntry{
			Inode: entryReader.InodeIndex(),
			Name:  entryReader.Name(),
			Path:  entryReader.Name(),
		}
		if child, err := es.image.ReadInode(entry.Inode); err == nil {
			entry.IsDir = child.FileType == types.FileTypeDirectory
			entry.Size = child.Size
			entry.FileType = child.FileType
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ExtractAll flat-dumps every allocated non-directory inode from the inode
// bitmap into outputDir, named inode<index>. Directory placement is
// ignored; this mode recovers file content even when the tree is damaged.
func (es *ExtractionService) ExtractAll(outputDir string, r *report.Report) error {
	bitmapData, err := es.image.ReadInodeBitmap()
	if err != nil {
		return fmt.Errorf("failed to read inode bitmap: %w", err)
	}

	bitmapReader, err := easyfs.NewInodeBitmapReader(bitmapData)
	if err != nil {
		return fmt.Errorf("failed to parse inode bitmap: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, index := range bitmapReader.AllocatedIndices() {
		path := filepath.Join(outputDir, fmt.Sprintf("inode%d", index))

		inode, err := es.image.ReadInode(index)
		if err != nil {
			r.AddSkip(path, index, err.Error())
			continue
		}

		if inode.FileType != types.FileTypeFile {
			continue
		}

		content, err := es.ReadFile(inode)
		if err != nil {
			r.AddSkip(path, index, err.Error())
			continue
		}

		if err := os.WriteFile(path, content, 0o644); err != nil {
			r.AddSkip(path, index, err.Error())
			continue
		}

		r.AddFile(path, index, uint64(len(content)))
		es.ctx.Logf("extracted file %s", path)
	}

	return nil
}
