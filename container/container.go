package container

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cgarz/WSMExtract/model"
	"github.com/cgarz/WSMExtract/section"
	"github.com/cgarz/WSMExtract/util"
)

// ProcessFile extracts the selected sections of one container file into a
// subdirectory of outputRoot named after the container. Structural problems
// with the file are logged and reported through FileResult.Processed; the
// returned error is reserved for the file not being openable, which callers
// treat as fatal.
func ProcessFile(path, outputRoot string, save section.Set, overwrite bool) (model.FileResult, error) {
	res := model.FileResult{Container: path}

	util.InfoPrintf("Processing: %s\n", path)
	in, err := os.Open(path)
	if err != nil {
		return res, err
	}
	defer in.Close()

	scanner, err := NewScanner(in)
	if err != nil {
		util.ErrorPrintf("%v. Skipping.\n", err)
		return res, nil
	}

	basename := util.Basename(path)
	outputDir := filepath.Join(outputRoot, basename)

	for {
		chunk, err := scanner.NextHeader()
		if err == io.EOF {
			res.Processed = true
			return res, nil
		}
		if err != nil {
			util.ErrorPrintf("%v. Skipping file.\n", err)
			return res, nil
		}

		if !save.Contains(chunk.FourCC) {
			if err := scanner.Skip(); err != nil {
				util.ErrorPrintf("%v. Skipping file.\n", err)
				return res, nil
			}
			continue
		}

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			util.ErrorPrintf("Could not create %s: %v. Skipping file.\n", outputDir, err)
			return res, nil
		}

		filename := section.Filename(basename, chunk.FourCC)
		outputPath := filepath.Join(outputDir, filename)

		if _, err := os.Stat(outputPath); err == nil && !overwrite {
			util.InfoPrintf("File exists but overwrite not set. Not saving: %s\n", filename)
			res.Skipped = append(res.Skipped, filename)
			if err := scanner.Skip(); err != nil {
				util.ErrorPrintf("%v. Skipping file.\n", err)
				return res, nil
			}
			continue
		}

		if err := saveChunk(scanner, outputPath); err != nil {
			util.ErrorPrintf("%v. Skipping file.\n", err)
			return res, nil
		}
		util.SavedPrintf("Saved: %s\n", filename)
		res.Saved = append(res.Saved, filename)
	}
}

func saveChunk(s *Scanner, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := s.Extract(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// ListChunks scans a container without extracting anything and returns its
// chunk headers in stream order. Chunks read before a structural error are
// returned alongside the error.
func ListChunks(path string) ([]model.ChunkInfo, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	scanner, err := NewScanner(in)
	if err != nil {
		return nil, err
	}

	var chunks []model.ChunkInfo
	for {
		chunk, err := scanner.NextHeader()
		if err == io.EOF {
			return chunks, nil
		}
		if err != nil {
			return chunks, err
		}
		if err := scanner.Skip(); err != nil {
			return chunks, err
		}
		chunks = append(chunks, chunk)
	}
}
