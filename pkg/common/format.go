package common

// PBPSignature is the expected tail of the signature field. The leading
// signature byte is reserved by the format and ignored on validation.
var PBPSignature = []byte{'P', 'B', 'P'}

const (
	PBPHeaderLength = 40
	SegmentCount    = 8
)

// Canonical version written by pack: stored low field 0, high field 1.
const (
	PBPVersionLow  uint16 = 0
	PBPVersionHigh uint16 = 1
)

// PBPHeader is the fixed 40-byte record at the start of every container.
// The layout is packed with no padding, so encoding the struct in
// little-endian order reproduces the on-disk bytes exactly.
//
// Offsets are file-absolute: segment payloads begin right after the header,
// and the first present segment's offset is PBPHeaderLength.
type PBPHeader struct {
	Signature [4]byte
	Version   [2]uint16
	Offsets   [8]uint32
}

// SegmentNames maps each slot index to its canonical output file name.
var SegmentNames = [SegmentCount]string{
	"PARAM.SFO",
	"ICON0.PNG",
	"ICON1.PMF",
	"PIC0.PNG",
	"PIC1.PNG",
	"SND0.AT3",
	"DATA.PSP",
	"DATA.PSAR",
}
