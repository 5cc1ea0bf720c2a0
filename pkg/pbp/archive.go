package pbp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/rs/zerolog/log"

	common "github.com/SvenGDK/zPBPTool/pkg/common"
)

type PBPArchiverOptions struct {
	Verbose     bool
	ArchivePath string
	OutputFile  string
	OutputPath  string
	SourcePaths [common.SegmentCount]string
}

type PBPArchiver struct {
}

func NewPBPArchiver() *PBPArchiver {
	return &PBPArchiver{}
}

func (pa *PBPArchiver) EncodeHeader(header *common.PBPHeader) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, binary.LittleEndian, header); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (pa *PBPArchiver) DecodeHeader(headerBytes []byte) (*common.PBPHeader, error) {
	header := new(common.PBPHeader)
	buf := bytes.NewBuffer(headerBytes)
	if err := binary.Read(buf, binary.LittleEndian, header); err != nil {
		return nil, err
	}
	return header, nil
}

// ValidateHeader checks the signature tail and the version pair. The version
// rule is deliberately permissive: a header is rejected only when the high
// field is not 1 and the low field is nonzero. Containers that print as
// version 5.0 or 1.7 pass, and files in the wild depend on that, so the rule
// must not be tightened to a strict high==1 check.
func (pa *PBPArchiver) ValidateHeader(header *common.PBPHeader) error {
	if !bytes.Equal(header.Signature[1:], common.PBPSignature) {
		return common.ErrInvalidSignature
	}
	if header.Version[1] != 1 && header.Version[0] != 0 {
		return fmt.Errorf("%w: %d.%d", common.ErrInvalidVersion, header.Version[1], header.Version[0])
	}
	return nil
}

// Create builds a container from up to eight source files. An empty source
// path leaves that slot absent: its stored offset still records the running
// cursor, so it reads back as zero-length. Every present source is read into
// memory before the output file is created, which keeps unreadable inputs
// from leaving a partial container behind. A failure while writing the output
// itself is fatal and does leave a partial file; writes are not atomic.
func (pa *PBPArchiver) Create(opts PBPArchiverOptions) error {
	header := common.PBPHeader{
		Signature: [4]byte{0x00, 'P', 'B', 'P'},
		Version:   [2]uint16{common.PBPVersionLow, common.PBPVersionHigh},
	}

	var payloads [common.SegmentCount][]byte
	cursor := uint32(common.PBPHeaderLength)

	for i, src := range opts.SourcePaths {
		header.Offsets[i] = cursor

		if src == "" {
			continue
		}

		data, err := os.ReadFile(src)
		if err != nil {
			return fmt.Errorf("error reading source file %s: %w", src, err)
		}

		if opts.Verbose {
			log.Info().Msgf("packing %s from %s (%d bytes)", common.SegmentNames[i], src, len(data))
		}

		payloads[i] = data
		cursor += uint32(len(data))
	}

	outFile, err := os.Create(opts.OutputFile)
	if err != nil {
		return fmt.Errorf("error creating output file %s: %w", opts.OutputFile, err)
	}
	defer outFile.Close()

	headerBytes, err := pa.EncodeHeader(&header)
	if err != nil {
		return err
	}

	if _, err := outFile.Write(headerBytes); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	for i, data := range payloads {
		if len(data) == 0 {
			continue
		}
		if _, err := outFile.Write(data); err != nil {
			return fmt.Errorf("error writing %s: %w", common.SegmentNames[i], err)
		}
	}

	return nil
}

// Extract splits a container into its segment files. Header problems are
// fatal; a single segment with an out-of-range span, or one that fails to
// write, is skipped with a warning while the rest still extract.
func (pa *PBPArchiver) Extract(opts PBPArchiverOptions) error {
	content, err := os.ReadFile(opts.ArchivePath)
	if err != nil {
		return err
	}
	if len(content) < common.PBPHeaderLength {
		return common.ErrHeaderTooShort
	}

	header, err := pa.DecodeHeader(content[:common.PBPHeaderLength])
	if err != nil {
		return err
	}

	if err := pa.ValidateHeader(header); err != nil {
		return err
	}

	if err := os.MkdirAll(opts.OutputPath, 0755); err != nil {
		return fmt.Errorf("error creating directory %s: %w", opts.OutputPath, err)
	}

	fileLen := int64(len(content))
	for _, segment := range ResolveSegments(header.Offsets, fileLen) {
		if !segment.Present {
			continue
		}

		// Stored offsets are file-absolute; the payload lives at
		// offset minus header length within the buffer.
		corrected := int64(segment.Offset) - common.PBPHeaderLength
		if corrected < 0 || corrected+int64(segment.Length) > fileLen {
			log.Warn().Msgf("skipping %s: %v", segment.Name, common.ErrInvalidSegmentRange)
			continue
		}

		if opts.Verbose {
			log.Info().Msgf("extracting %s (%d bytes)", segment.Name, segment.Length)
		}

		outPath := filepath.Join(opts.OutputPath, segment.Name)
		if err := os.WriteFile(outPath, content[corrected:corrected+int64(segment.Length)], 0644); err != nil {
			log.Warn().Msgf("skipping %s: %v", segment.Name, err)
			continue
		}
	}

	return nil
}

// Inspect prints the header fields and the per-slot offset table to stdout.
// Absent slots are listed as NULL rather than omitted.
func (pa *PBPArchiver) Inspect(opts PBPArchiverOptions) error {
	file, err := os.Open(opts.ArchivePath)
	if err != nil {
		return err
	}
	defer file.Close()

	headerBytes := make([]byte, common.PBPHeaderLength)
	if _, err := io.ReadFull(file, headerBytes); err != nil {
		return common.ErrHeaderTooShort
	}

	header, err := pa.DecodeHeader(headerBytes)
	if err != nil {
		return err
	}

	if err := pa.ValidateHeader(header); err != nil {
		return err
	}

	stat, err := file.Stat()
	if err != nil {
		return fmt.Errorf("error reading file size: %w", err)
	}

	fmt.Printf("PBP Header:\n")
	fmt.Printf("\tSignature:\t%s\n", header.Signature[1:])
	fmt.Printf("\tVersion:\t%d.%d\n", header.Version[1], header.Version[0])
	fmt.Printf("Offsets:\n")
	for _, segment := range ResolveSegments(header.Offsets, stat.Size()) {
		if segment.Present {
			fmt.Printf("\t%s:\t%d\n", segment.Name, segment.Offset)
		} else {
			fmt.Printf("\t%s:\tNULL\n", segment.Name)
		}
	}

	return nil
}
