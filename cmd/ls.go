package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/13m0n4de/easy-fs-extracter/internal/services"
)

var (
	lsImage string
	lsInode uint32
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List a directory inode's entries",
	Long: `Ls decodes one directory inode's entries without writing anything
to the host filesystem. By default it lists the root directory.

Examples:
  easy-fs-extracter ls
  easy-fs-extracter ls --image disk.img --inode 5`,

	Run: func(cmd *cobra.Command, args []string) {
		if err := runLs(cmd); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)

	lsCmd.Flags().StringVarP(&lsImage, "image", "i", "", "path to the disk image (default fs.img)")
	lsCmd.Flags().Uint32Var(&lsInode, "inode", 0, "directory inode index to list (default root)")
}

func runLs(cmd *cobra.Command) error {
	imagePath := stringOrConfig(lsImage, "image")
	ctx := newAppContext()

	inodeIndex := lsInode
	if !cmd.Flags().Changed("inode") {
		inodeIndex = viper.GetUint32("root_inode")
	}

	reader, err := services.NewImageReader(imagePath)
	if err != nil {
		return err
	}
	defer reader.Close()

	service := services.NewExtractionService(reader, ctx)
	entries, err := service.ListDirectory(inodeIndex)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "NAME\tINODE\tTYPE\tSIZE\n")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\n", entry.Name, entry.Inode, entry.FileType, entry.Size)
	}
	return w.Flush()
}
