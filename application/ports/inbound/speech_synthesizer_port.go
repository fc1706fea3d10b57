package inbound

import (
	"context"

	"generate-speech-api/domain"
)

// SpeechSynthesizerPort fans out one synthesis call per segment. Every
// segment read from segmentCh produces exactly one SegmentAudio on the
// returned channel, carrying either the decoded payload or the call's error.
// The error channel reports dispatch failures only.
type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, segmentCh <-chan domain.Segment, speaker string) (<-chan domain.SegmentAudio, <-chan error)
}
