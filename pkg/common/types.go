package common

// Segment describes one resolved slot of a container. Offset is the
// file-absolute position stored in the header; Length is derived from the
// following slot's offset (or the file length for the last slot). A segment
// with Length zero is absent.
type Segment struct {
	Index   int
	Name    string
	Offset  uint32
	Length  uint32
	Present bool
}
