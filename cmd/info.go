package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/13m0n4de/easy-fs-extracter/internal/services"
	"github.com/13m0n4de/easy-fs-extracter/pkg/app/report"
)

var infoImage string

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the image's decoded superblock",
	Long: `Info validates the superblock magic and prints the image geometry:
total block count and the bitmap and area block counts.

Examples:
  easy-fs-extracter info --image disk.img
  easy-fs-extracter info -o json`,

	Run: func(cmd *cobra.Command, args []string) {
		if err := runInfo(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&infoImage, "image", "i", "", "path to the disk image (default fs.img)")
}

func runInfo() error {
	imagePath := stringOrConfig(infoImage, "image")
	ctx := newAppContext()

	reader, err := services.NewImageReader(imagePath)
	if err != nil {
		return err
	}
	defer reader.Close()

	sb := reader.Superblock()
	info := &report.ImageInfo{
		ImagePath:         imagePath,
		Magic:             fmt.Sprintf("0x%08X", sb.Magic),
		TotalBlocks:       sb.TotalBlocks,
		InodeBitmapBlocks: sb.InodeBitmapBlocks,
		InodeAreaBlocks:   sb.InodeAreaBlocks,
		DataBitmapBlocks:  sb.DataBitmapBlocks,
		DataAreaBlocks:    sb.DataAreaBlocks,
	}

	return report.FormatImageInfo(os.Stdout, info, ctx.OutputFormat)
}
