package container

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cgarz/WSMExtract/constants"
	"github.com/cgarz/WSMExtract/model"
	"github.com/cgarz/WSMExtract/section"
)

// Scanner walks the chunk stream of a container in a single forward pass.
// After NextHeader the caller must consume the payload through Extract or
// Skip before asking for the next header, so the cursor always sits on a
// chunk boundary.
type Scanner struct {
	r      io.Reader
	offset int64
	length uint32
}

// NewScanner checks the container signature and positions the cursor at the
// first chunk. The 4 byte declared total size after the signature is read
// and ignored; the format tolerates inaccurate size headers.
func NewScanner(r io.Reader) (*Scanner, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:constants.FourCCSize]); err != nil {
		return nil, fmt.Errorf("read signature: %w", err)
	}
	if !validSignature(string(header[:constants.FourCCSize])) {
		return nil, fmt.Errorf("file signature %q invalid", header[:constants.FourCCSize])
	}
	if _, err := io.ReadFull(r, header[constants.FourCCSize:]); err != nil {
		return nil, fmt.Errorf("read declared size: %w", err)
	}
	return &Scanner{r: r, offset: int64(len(header))}, nil
}

func validSignature(sig string) bool {
	for _, s := range constants.FileSignatures {
		if s == sig {
			return true
		}
	}
	return false
}

// NextHeader reads the next chunk's FourCC and length. A clean end of
// stream at a chunk boundary is reported as io.EOF. An unknown FourCC or a
// truncated header is structural corruption.
func (s *Scanner) NextHeader() (model.ChunkInfo, error) {
	var tag [constants.FourCCSize]byte
	if _, err := io.ReadFull(s.r, tag[:]); err != nil {
		if err == io.EOF {
			return model.ChunkInfo{}, io.EOF
		}
		return model.ChunkInfo{}, fmt.Errorf("read FourCC: %w", err)
	}

	fourCC := string(tag[:])
	if !section.Known(fourCC) {
		return model.ChunkInfo{}, fmt.Errorf("%q is not a valid %s section", fourCC, constants.FileExtension)
	}

	var length uint32
	if err := binary.Read(s.r, binary.LittleEndian, &length); err != nil {
		return model.ChunkInfo{}, fmt.Errorf("read chunk length: %w", err)
	}

	info := model.ChunkInfo{FourCC: fourCC, Length: length, Offset: s.offset}
	s.offset += int64(constants.FourCCSize) + 4
	s.length = length
	return info, nil
}

// consume advances the cursor past the current chunk's payload, copying the
// bytes into w. A short stream is an error so truncation never produces a
// silent partial payload.
func (s *Scanner) consume(w io.Writer) error {
	n, err := io.CopyN(w, s.r, int64(s.length))
	s.offset += n
	if err == io.EOF {
		return fmt.Errorf("chunk payload truncated: declared %d bytes, found %d", s.length, n)
	}
	return err
}

// Skip discards the current chunk's payload without retaining it.
func (s *Scanner) Skip() error {
	return s.consume(io.Discard)
}

// Extract copies the current chunk's payload into w.
func (s *Scanner) Extract(w io.Writer) error {
	return s.consume(w)
}
