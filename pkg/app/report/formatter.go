package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// FormatReport renders a run report according to the output format
func FormatReport(w io.Writer, r *Report, format string) error {
	switch format {
	case "json":
		return formatJSON(w, r)
	case "yaml":
		return formatYAML(w, r)
	case "table":
		return formatReportTable(w, r)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// FormatImageInfo renders a superblock summary according to the output format
func FormatImageInfo(w io.Writer, info *ImageInfo, format string) error {
	switch format {
	case "json":
		return formatJSON(w, info)
	case "yaml":
		return formatYAML(w, info)
	case "table":
		return formatInfoTable(w, info)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func formatReportTable(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "PATH\tINODE\tSIZE\n")
	fmt.Fprintf(tw, "----\t-----\t----\n")
	for _, file := range r.Extracted {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", file.Path, file.Inode, file.Size)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, "\nSkipped:\n")
		for _, entry := range r.Skipped {
			fmt.Fprintf(w, "  %s (inode %d): %s\n", entry.Path, entry.Inode, entry.Reason)
		}
	}

	fmt.Fprintf(w, "\nRun %s (%s mode): %d files", r.RunID, r.Mode, len(r.Extracted))
	if r.Directories > 0 {
		fmt.Fprintf(w, ", %d directories", r.Directories)
	}
	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, ", %d skipped", len(r.Skipped))
	}
	fmt.Fprintf(w, " in %v\n", r.Duration)

	return nil
}

func formatInfoTable(w io.Writer, info *ImageInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Image:\t%s\n", info.ImagePath)
	fmt.Fprintf(tw, "Magic:\t%s\n", info.Magic)
	fmt.Fprintf(tw, "Total blocks:\t%d\n", info.TotalBlocks)
	fmt.Fprintf(tw, "Inode bitmap blocks:\t%d\n", info.InodeBitmapBlocks)
	fmt.Fprintf(tw, "Inode area blocks:\t%d\n", info.InodeAreaBlocks)
	fmt.Fprintf(tw, "Data bitmap blocks:\t%d\n", info.DataBitmapBlocks)
	fmt.Fprintf(tw, "Data area blocks:\t%d\n", info.DataAreaBlocks)

	return tw.Flush()
}

func formatJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func formatYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(v)
}
