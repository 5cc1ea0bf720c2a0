package pbp

import (
	common "github.com/SvenGDK/zPBPTool/pkg/common"
)

// ResolveSegments derives presence and byte ranges for all eight slots from
// the header's offset table and the container's total length.
//
// The format carries no explicit presence flags. A slot is present only when
// the next slot's offset strictly exceeds its own; the last slot is bounded
// by the file length instead. Equal adjacent offsets therefore mean the
// earlier slot is absent, which is exactly how pack records empty slots.
func ResolveSegments(offsets [common.SegmentCount]uint32, fileLen int64) [common.SegmentCount]common.Segment {
	var segments [common.SegmentCount]common.Segment

	for i := 0; i < common.SegmentCount; i++ {
		start := offsets[i]

		var length uint32
		if i+1 < common.SegmentCount {
			if offsets[i+1] > start {
				length = offsets[i+1] - start
			}
		} else {
			if fileLen > int64(start) {
				length = uint32(fileLen - int64(start))
			}
		}

		segments[i] = common.Segment{
			Index:   i,
			Name:    common.SegmentNames[i],
			Offset:  start,
			Length:  length,
			Present: length > 0,
		}
	}

	return segments
}
