package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cgarz/WSMExtract/constants"
	"github.com/cgarz/WSMExtract/container"
	"github.com/cgarz/WSMExtract/manifest"
	"github.com/cgarz/WSMExtract/section"
	"github.com/cgarz/WSMExtract/util"
)

var (
	extractSections string
	outputDir       string
	forceOverwrite  bool
	writeManifest   bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractSections, "extract", "e", "",
		"Comma separated list of sections (FourCC) to extract. Defaults to all sections."+
			" Valid sections: "+strings.Join(section.All().Names(), ",")+
			` (NOTE: the "IMG " section is actually a land.dat file. Not an img file)`)
	extractCmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"Output directory for extracted parts' subfolders. Defaults to the same folder as the input folder.")
	extractCmd.Flags().BoolVarP(&forceOverwrite, "force-overwrite", "f", false,
		"Allow overwriting files.")
	extractCmd.Flags().BoolVar(&writeManifest, "manifest", false,
		"Write a JSON manifest of the run into the output directory.")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract [flags] <file-or-folder>...",
	Short: "Extracts sections from WSM files",
	Long:  `Extracts the requested sections of one or more WSM files or folders (non recursive).`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	if outputDir != "" {
		info, err := os.Stat(outputDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("%q does not exist", outputDir)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("%q is not a directory", outputDir)
		}
	}

	save := section.All()
	if extractSections != "" {
		var err error
		save, err = section.Validate(strings.ToUpper(extractSections))
		if err != nil {
			return err
		}
	}

	util.InfoPrintf("Starting extraction process.\n")
	util.InfoPrintf("Saving sections: %s\n", strings.Join(save.Names(), ","))
	if len(args) > 1 {
		util.InfoPrintf("%d inputs to process\n", len(args))
	}
	util.InfoPrintf("\n")

	var run *manifest.Manifest
	if writeManifest {
		run = manifest.New(save.Names())
	}

	for inputIdx, input := range args {
		info, err := os.Stat(input)
		if err != nil {
			util.ErrorPrintf("Skipping non existent input: %s\n", input)
			continue
		}

		inputOutput := outputDir
		var filePaths []string
		if info.IsDir() {
			if len(args) > 1 {
				util.InfoPrintf("Processing input: %s\n", input)
			}
			if inputOutput == "" {
				inputOutput = input
			}
			filePaths, err = util.GatherContainerPaths(input)
			if err != nil {
				util.ErrorPrintf("Could not list %s: %v\n", input, err)
				continue
			}
			if len(filePaths) > 1 {
				util.InfoPrintf("%d files to process\n", len(filePaths))
			}
		} else {
			if inputOutput == "" {
				inputOutput = filepath.Dir(input)
			}
			filePaths = []string{input}
		}

		for fileIdx, filePath := range filePaths {
			if !util.HasContainerExtension(filePath) {
				util.InfoPrintf("Skipping non %s file extension for: %s\n", constants.FileExtension, filePath)
				continue
			}

			res, err := container.ProcessFile(filePath, inputOutput, save, forceOverwrite)
			if err != nil {
				return err
			}
			if run != nil {
				run.Add(res)
			}
			if fileIdx != len(filePaths)-1 {
				util.InfoPrintf("\n")
			}
		}
		if inputIdx != len(args)-1 {
			util.InfoPrintf("\n")
		}
	}

	if run != nil {
		dir := outputDir
		if dir == "" {
			dir = "."
		}
		path, err := run.Write(dir)
		if err != nil {
			return err
		}
		util.InfoPrintf("Manifest written: %s\n", path)
	}
	return nil
}
