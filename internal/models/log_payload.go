package models

// LogPayload is the persisted (and exported) JSON shape of one trial log.
type LogPayload struct {
	LogID            string           `json:"log_id"`
	Filename         string           `json:"filename"`
	FeedbackLocation FeedbackLocation `json:"feedbackLocation"`
}

// FeedbackLocation carries where and how the marking was made.
type FeedbackLocation struct {
	ImagePath     string       `json:"image_path"`
	Coarseness    int          `json:"coarseness"`
	ExportedAt    string       `json:"exported_at,omitempty"`
	SegmentSizePx *SegmentSize `json:"segment_size_px,omitempty"`
	ChosenPoints  ChosenPoints `json:"chosenPoints"`
}

// SegmentSize is the on-screen pixel size of one grid cell.
type SegmentSize struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// ChosenPoints holds the marked cells as parallel row/col lists.
type ChosenPoints struct {
	Row []int `json:"row"`
	Col []int `json:"col"`
}
