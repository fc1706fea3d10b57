package domain

func NewSegment(text string, ordinal int) Segment {
	return Segment{
		Text:    text,
		Ordinal: ordinal,
	}
}

// Segment is one request-sized piece of the input text. Ordinal is the
// segment's position in the original text and is the key used to restore
// ordering after the parallel fetch.
type Segment struct {
	Text    string
	Ordinal int
}

// SegmentAudio is the definitive outcome of one synthesis call. A failed
// call carries Err and no payload.
type SegmentAudio struct {
	Segment
	Payload []byte
	Err     error
}

// SynthesisResult is the output of a full synthesis run. AudioURL is only
// set when the run was persisted to an audio store.
type SynthesisResult struct {
	ID           string
	Speaker      string
	SegmentCount int
	Audio        []byte
	AudioURL     string
}

// SynthesisRecord is the metadata persisted for a completed synthesis.
type SynthesisRecord struct {
	ID           string
	Speaker      string
	SegmentCount int
	AudioBytes   int
	AudioURL     string
}
