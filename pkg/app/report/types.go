package report

import (
	"time"

	"github.com/google/uuid"
)

// ExtractedFile records one file written to the host filesystem
type ExtractedFile struct {
	Path  string `json:"path" yaml:"path"`
	Inode uint32 `json:"inode" yaml:"inode"`
	Size  uint64 `json:"size" yaml:"size"`
}

// SkippedEntry records one inode or directory entry that was not extracted,
// with the reason it was skipped
type SkippedEntry struct {
	Path   string `json:"path" yaml:"path"`
	Inode  uint32 `json:"inode" yaml:"inode"`
	Reason string `json:"reason" yaml:"reason"`
}

// Report summarizes one extraction run: what was written, what was skipped
// and why. Per-entry failures land in Skipped; only a fatal error (such as
// a magic mismatch) prevents a report from being produced at all.
type Report struct {
	RunID       string          `json:"run_id" yaml:"run_id"`
	Mode        string          `json:"mode" yaml:"mode"`
	ImagePath   string          `json:"image_path" yaml:"image_path"`
	OutputPath  string          `json:"output_path" yaml:"output_path"`
	StartedAt   time.Time       `json:"started_at" yaml:"started_at"`
	Duration    time.Duration   `json:"duration" yaml:"duration"`
	Directories int             `json:"directories" yaml:"directories"`
	Extracted   []ExtractedFile `json:"extracted" yaml:"extracted"`
	Skipped     []SkippedEntry  `json:"skipped" yaml:"skipped"`
}

// New creates a report for a run that starts now
func New(mode, imagePath, outputPath string) *Report {
	return &Report{
		RunID:      uuid.NewString(),
		Mode:       mode,
		ImagePath:  imagePath,
		OutputPath: outputPath,
		StartedAt:  time.Now(),
	}
}

// AddFile records a successfully extracted file
func (r *Report) AddFile(path string, inode uint32, size uint64) {
	r.Extracted = append(r.Extracted, ExtractedFile{Path: path, Inode: inode, Size: size})
}

// AddDirectory counts a restored directory
func (r *Report) AddDirectory() {
	r.Directories++
}

// AddSkip records an entry that was not extracted and why
func (r *Report) AddSkip(path string, inode uint32, reason string) {
	r.Skipped = append(r.Skipped, SkippedEntry{Path: path, Inode: inode, Reason: reason})
}

// Finish stamps the run duration
func (r *Report) Finish() {
	r.Duration = time.Since(r.StartedAt)
}

// ImageInfo is the decoded superblock summary shown by the info command
type ImageInfo struct {
	ImagePath         string `json:"image_path" yaml:"image_path"`
	Magic             string `json:"magic" yaml:"magic"`
	TotalBlocks       uint32 `json:"total_blocks" yaml:"total_blocks"`
	InodeBitmapBlocks uint32 `json:"inode_bitmap_blocks" yaml:"inode_bitmap_blocks"`
	InodeAreaBlocks   uint32 `json:"inode_area_blocks" yaml:"inode_area_blocks"`
	DataBitmapBlocks  uint32 `json:"data_bitmap_blocks" yaml:"data_bitmap_blocks"`
	DataAreaBlocks    uint32 `json:"data_area_blocks" yaml:"data_area_blocks"`
}
