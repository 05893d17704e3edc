package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func createTestReport() *Report {
	r := New("restore", "fs.img", "output")
	r.AddDirectory()
	r.AddFile("output/docs/readme.txt", 3, 600)
	r.AddSkip("output/docs/broken", 9, "incomplete file data")
	r.Finish()
	return r
}

func TestFormatReport_Table(t *testing.T) {
	var buf bytes.Buffer
	err := FormatReport(&buf, createTestReport(), "table")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "output/docs/readme.txt")
	assert.Contains(t, out, "Skipped:")
	assert.Contains(t, out, "incomplete file data")
	assert.Contains(t, out, "1 files, 1 directories, 1 skipped")
}

func TestFormatReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := FormatReport(&buf, createTestReport(), "json")
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "restore", decoded.Mode)
	require.Len(t, decoded.Extracted, 1)
	assert.Equal(t, uint32(3), decoded.Extracted[0].Inode)
	assert.NotEmpty(t, decoded.RunID)
}

func TestFormatReport_YAML(t *testing.T) {
	var buf bytes.Buffer
	err := FormatReport(&buf, createTestReport(), "yaml")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "restore", decoded["mode"])
}

func TestFormatReport_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := FormatReport(&buf, createTestReport(), "xml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestFormatImageInfo(t *testing.T) {
	info := &ImageInfo{
		ImagePath:         "fs.img",
		Magic:             "0x3B800001",
		TotalBlocks:       4096,
		InodeBitmapBlocks: 1,
		InodeAreaBlocks:   256,
		DataBitmapBlocks:  1,
		DataAreaBlocks:    3837,
	}

	for _, format := range []string{"table", "json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, FormatImageInfo(&buf, info, format))
			assert.True(t, strings.Contains(buf.String(), "4096"))
		})
	}
}

func TestReportRunIDsAreUnique(t *testing.T) {
	a := New("extract", "fs.img", "output")
	b := New("extract", "fs.img", "output")
	assert.NotEqual(t, a.RunID, b.RunID)
}
