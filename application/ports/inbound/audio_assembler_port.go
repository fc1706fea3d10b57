package inbound

import (
	"context"

	"generate-speech-api/domain"
)

// AudioAssemblerPort drains audioCh until it closes and concatenates the
// payloads in ascending ordinal order. It fails when any of the total
// ordinals lacks a payload; completion order never affects the output.
type AudioAssemblerPort interface {
	Assemble(ctx context.Context, audioCh <-chan domain.SegmentAudio, total int) ([]byte, error)
}
