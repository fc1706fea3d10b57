package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"generate-speech-api/domain"
	"generate-speech-api/infrastructure/adapters"
)

func collectedOutcomes(outcomes ...domain.SegmentAudio) <-chan domain.SegmentAudio {
	out := make(chan domain.SegmentAudio, len(outcomes))
	for _, outcome := range outcomes {
		out <- outcome
	}
	close(out)
	return out
}

func TestAudioAssembler_ZeroSegments(t *testing.T) {
	assembler := NewAudioAssembler(adapters.NewZerologWrapper())

	audio, err := assembler.Assemble(context.Background(), collectedOutcomes(), 0)
	if err != nil {
		t.Fatal("Expected vacuous success for zero segments, got:", err)
	}
	if len(audio) != 0 {
		t.Fatalf("Expected an empty buffer, got %d bytes", len(audio))
	}
}

func TestAudioAssembler_CredentialErrorWinsOverPartialFailure(t *testing.T) {
	assembler := NewAudioAssembler(adapters.NewZerologWrapper())

	_, err := assembler.Assemble(context.Background(), collectedOutcomes(
		domain.SegmentAudio{Segment: domain.NewSegment("a", 0), Err: fmt.Errorf("segment 0: %w", domain.ErrInvalidCredential)},
		domain.SegmentAudio{Segment: domain.NewSegment("b", 1), Payload: []byte("b-audio")},
	), 2)

	if !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatal("Expected the credential error to surface, got:", err)
	}
}

func TestAudioAssembler_ReportsEveryFailedOrdinal(t *testing.T) {
	assembler := NewAudioAssembler(adapters.NewZerologWrapper())

	_, err := assembler.Assemble(context.Background(), collectedOutcomes(
		domain.SegmentAudio{Segment: domain.NewSegment("c", 2), Err: domain.ErrMalformedResponse},
		domain.SegmentAudio{Segment: domain.NewSegment("b", 1), Payload: []byte("b-audio")},
		domain.SegmentAudio{Segment: domain.NewSegment("a", 0), Err: domain.ErrDecodeFailure},
	), 3)

	var partial *domain.PartialFailureError
	if !errors.As(err, &partial) {
		t.Fatal("Expected a partial failure error, got:", err)
	}
	if partial.Total != 3 || len(partial.Failed) != 2 || partial.Failed[0] != 0 || partial.Failed[1] != 2 {
		t.Fatalf("Unexpected partial failure detail: %+v", partial)
	}
}

func TestAudioAssembler_ConcatenatesByOrdinal(t *testing.T) {
	assembler := NewAudioAssembler(adapters.NewZerologWrapper())

	audio, err := assembler.Assemble(context.Background(), collectedOutcomes(
		domain.SegmentAudio{Segment: domain.NewSegment("c", 2), Payload: []byte("gamma")},
		domain.SegmentAudio{Segment: domain.NewSegment("a", 0), Payload: []byte("alpha")},
		domain.SegmentAudio{Segment: domain.NewSegment("b", 1), Payload: []byte("beta")},
	), 3)
	if err != nil {
		t.Fatal("Failed to assemble audio:", err)
	}
	if string(audio) != "alphabetagamma" {
		t.Fatalf("Expected payloads concatenated by ordinal, got %q", audio)
	}
}
