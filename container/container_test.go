package container

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/cgarz/WSMExtract/section"
	"github.com/stretchr/testify/assert"
)

type testChunk struct {
	fourCC  string
	payload []byte
}

// writeContainer builds a container file with the given signature and
// chunks. The declared total size field is deliberately wrong; extraction
// must never consult it.
func writeContainer(t *testing.T, dir, name, signature string, chunks ...testChunk) string {
	t.Helper()

	buf := new(bytes.Buffer)
	buf.WriteString(signature)
	binary.Write(buf, binary.LittleEndian, uint32(0xDEADBEEF))
	for _, c := range chunks {
		buf.WriteString(c.fourCC)
		binary.Write(buf, binary.LittleEndian, uint32(len(c.payload)))
		buf.Write(c.payload)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestExtractsSelectedSections(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	path := writeContainer(t, dir, "TOWN.WSM", "ATTM",
		testChunk{"VERS", []byte{1, 2}},
		testChunk{"WAM ", []byte("wam data")},
		testChunk{"IMG ", []byte("land data")},
	)

	res, err := ProcessFile(path, out, section.All(), false)

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(res.Processed)
	assert.Equal([]string{"TOWN.VERS", "TOWN.WAM", "LAND_TOWN.DAT"}, res.Saved)
	assert.Equal([]byte{1, 2}, readFile(t, filepath.Join(out, "TOWN", "TOWN.VERS")))
	assert.Equal([]byte("wam data"), readFile(t, filepath.Join(out, "TOWN", "TOWN.WAM")))
	assert.Equal([]byte("land data"), readFile(t, filepath.Join(out, "TOWN", "LAND_TOWN.DAT")))
}

func TestUnselectedSectionsAreSkipped(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	path := writeContainer(t, dir, "TOWN.WSM", "SNGM",
		testChunk{"WAM ", []byte("wam data")},
		testChunk{"VERS", []byte{7}},
	)

	save, err := section.Validate("VERS")
	if err != nil {
		t.Fatal(err)
	}
	res, err := ProcessFile(path, out, save, false)

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(res.Processed)
	assert.Equal([]string{"TOWN.VERS"}, res.Saved)
	assert.Equal([]byte{7}, readFile(t, filepath.Join(out, "TOWN", "TOWN.VERS")))
	assert.NoFileExists(filepath.Join(out, "TOWN", "TOWN.WAM"))
}

func TestInvalidSignatureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	path := writeContainer(t, dir, "TOWN.WSM", "XXXX",
		testChunk{"VERS", []byte{1}},
	)

	res, err := ProcessFile(path, out, section.All(), false)

	assert := assert.New(t)
	assert.NoError(err)
	assert.False(res.Processed)
	assert.Empty(res.Saved)
	assert.NoDirExists(filepath.Join(out, "TOWN"))
}

func TestUnknownSectionAbandonsRestOfFile(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	path := writeContainer(t, dir, "TOWN.WSM", "ATTM",
		testChunk{"VERS", []byte{1}},
		testChunk{"ZZZZ", []byte("junk")},
		testChunk{"GUID", []byte{2}},
	)

	res, err := ProcessFile(path, out, section.All(), false)

	assert := assert.New(t)
	assert.NoError(err)
	assert.False(res.Processed)
	assert.Equal([]string{"TOWN.VERS"}, res.Saved)
	assert.NoFileExists(filepath.Join(out, "TOWN", "TOWN.GUID"))
}

func TestOverwriteDisabledKeepsExistingFileAndStreamAlignment(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	path := writeContainer(t, dir, "TOWN.WSM", "ATTM",
		testChunk{"VERS", []byte("new vers")},
		testChunk{"GUID", []byte("guid data")},
	)

	existing := filepath.Join(out, "TOWN", "TOWN.VERS")
	if err := os.MkdirAll(filepath.Dir(existing), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(existing, []byte("old vers"), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := ProcessFile(path, out, section.All(), false)

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(res.Processed)
	assert.Equal([]string{"TOWN.VERS"}, res.Skipped)
	assert.Equal([]byte("old vers"), readFile(t, existing))
	// the skipped payload must still be consumed so the next chunk lines up
	assert.Equal([]string{"TOWN.GUID"}, res.Saved)
	assert.Equal([]byte("guid data"), readFile(t, filepath.Join(out, "TOWN", "TOWN.GUID")))
}

func TestOverwriteEnabledReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	path := writeContainer(t, dir, "TOWN.WSM", "ATTM",
		testChunk{"VERS", []byte("new vers")},
	)

	existing := filepath.Join(out, "TOWN", "TOWN.VERS")
	if err := os.MkdirAll(filepath.Dir(existing), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(existing, []byte("old vers"), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := ProcessFile(path, out, section.All(), true)

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(res.Processed)
	assert.Equal([]string{"TOWN.VERS"}, res.Saved)
	assert.Equal([]byte("new vers"), readFile(t, existing))
}

func TestTruncatedPayloadIsStructuralCorruption(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()

	// chunk declares 100 payload bytes but only 3 are present
	buf := new(bytes.Buffer)
	buf.WriteString("ATTM")
	binary.Write(buf, binary.LittleEndian, uint32(0))
	buf.WriteString("VERS")
	binary.Write(buf, binary.LittleEndian, uint32(100))
	buf.Write([]byte{1, 2, 3})
	path := filepath.Join(dir, "TOWN.WSM")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	// VERS is unselected so the truncation is hit on the skip path
	save, err := section.Validate("GUID")
	if err != nil {
		t.Fatal(err)
	}
	res, err := ProcessFile(path, out, save, false)

	assert := assert.New(t)
	assert.NoError(err)
	assert.False(res.Processed)
	assert.Empty(res.Saved)
}

func TestEmptyChunkStreamIsProcessedSuccessfully(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	path := writeContainer(t, dir, "TOWN.WSM", "SNGM")

	res, err := ProcessFile(path, out, section.All(), false)

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(res.Processed)
	assert.Empty(res.Saved)
}

func TestProcessFileOpenErrorIsFatal(t *testing.T) {
	_, err := ProcessFile(filepath.Join(t.TempDir(), "missing.WSM"), t.TempDir(), section.All(), false)

	assert := assert.New(t)
	assert.Error(err)
}

func TestListChunksReportsHeadersInStreamOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeContainer(t, dir, "TOWN.WSM", "ATTM",
		testChunk{"VERS", []byte{1, 2}},
		testChunk{"WAM ", []byte("wam data")},
	)

	chunks, err := ListChunks(path)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(chunks, 2)
	assert.Equal("VERS", chunks[0].FourCC)
	assert.Equal(uint32(2), chunks[0].Length)
	assert.Equal(int64(8), chunks[0].Offset)
	assert.Equal("WAM ", chunks[1].FourCC)
	assert.Equal(uint32(8), chunks[1].Length)
	assert.Equal(int64(18), chunks[1].Offset)
}

func TestListChunksStopsAtUnknownSection(t *testing.T) {
	dir := t.TempDir()
	path := writeContainer(t, dir, "TOWN.WSM", "ATTM",
		testChunk{"VERS", []byte{1}},
		testChunk{"ZZZZ", []byte("junk")},
	)

	chunks, err := ListChunks(path)

	assert := assert.New(t)
	assert.Error(err)
	assert.Len(chunks, 1)
	assert.Equal("VERS", chunks[0].FourCC)
}
