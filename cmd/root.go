package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wsme",
	Short: "WSM Extract (wsme)",
	Long:  `WSM Extract (wsme). A tool to extract the various sections of a WSM file.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
