package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/13m0n4de/easy-fs-extracter/internal/services"
	"github.com/13m0n4de/easy-fs-extracter/pkg/app/report"
)

var (
	extractImage string
	extractDest  string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Flat-dump every allocated file, named by inode index",
	Long: `Extract scans the inode bitmap and dumps the content of every
allocated non-directory inode into the destination directory as inode<N>,
ignoring directory placement entirely. Useful when the directory tree
itself is damaged but file content is intact.

Examples:
  # Dump all files from fs.img into ./output
  easy-fs-extracter extract

  # Dump from a specific image
  easy-fs-extracter extract --image disk.img --dest ./dump`,

	Run: func(cmd *cobra.Command, args []string) {
		if err := runExtract(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractImage, "image", "i", "", "path to the disk image (default fs.img)")
	extractCmd.Flags().StringVarP(&extractDest, "dest", "d", "", "destination directory (default output)")
}

func runExtract() error {
	imagePath := stringOrConfig(extractImage, "image")
	dest := stringOrConfig(extractDest, "output_dir")
	ctx := newAppContext()

	reader, err := services.NewImageReader(imagePath)
	if err != nil {
		return err
	}
	defer reader.Close()

	sb := reader.Superblock()
	ctx.Logf("superblock: magic 0x%08X, %d total blocks", sb.Magic, sb.TotalBlocks)

	service := services.NewExtractionService(reader, ctx)

	r := report.New("extract", imagePath, dest)
	err = service.ExtractAll(dest, r)
	r.Finish()

	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}
	if !ctx.Quiet {
		return report.FormatReport(os.Stdout, r, ctx.OutputFormat)
	}
	return nil
}
