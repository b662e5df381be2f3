package model

type Action string

const (
	DefaultAction         Action = ""
	ExpectingSegmentCount Action = "expecting_segment_count"
)

const DefaultSegments = 10

type Session struct {
	Action   Action           `json:"action"`
	Segments int              `json:"segments"`
	Mode     SegmentationMode `json:"mode"`
}

func (s Session) SegmentsOrDefault() int {
	if s.Segments <= 0 {
		return DefaultSegments
	}
	return s.Segments
}
