package cmd

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/cgarz/WSMExtract/container"
	"github.com/cgarz/WSMExtract/util"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list <file>...",
	Short: "Lists the sections of WSM files",
	Long:  `Lists each file's sections with their lengths and offsets without extracting anything.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for i, path := range args {
			listFile(path)
			if i != len(args)-1 {
				util.InfoPrintf("\n")
			}
		}
	},
}

func listFile(path string) {
	util.InfoPrintf("Sections in: %s\n", path)
	chunks, err := container.ListChunks(path)
	if err != nil {
		util.ErrorPrintf("%v\n", err)
	}
	if len(chunks) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Section", "Length", "Offset"})
	for _, c := range chunks {
		t.AppendRow(table.Row{strings.TrimRight(c.FourCC, " "), c.Length, c.Offset})
	}
	t.Render()
}
