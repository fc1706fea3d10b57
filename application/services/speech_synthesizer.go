package services

import (
	"context"
	"sync"

	"generate-speech-api/application/ports/inbound"
	"generate-speech-api/application/ports/outbound"
	"generate-speech-api/domain"
)

type speechSynthesizer struct {
	logger         outbound.LoggerPort
	audioGenerator outbound.AudioGeneratorPort
	workerPool     outbound.TaskDispatcher
}

func NewSpeechSynthesizer(logger outbound.LoggerPort, audioGenerator outbound.AudioGeneratorPort,
	workerPool outbound.TaskDispatcher) inbound.SpeechSynthesizerPort {
	return &speechSynthesizer{
		logger:         logger,
		audioGenerator: audioGenerator,
		workerPool:     workerPool,
	}
}

// Synthesize launches one call per segment on the worker pool. A call that
// fails writes its error into the segment's outcome instead of cancelling
// its siblings: every in-flight call drains, and every ordinal gets exactly
// one SegmentAudio on the returned channel.
func (s *speechSynthesizer) Synthesize(ctx context.Context, segmentCh <-chan domain.Segment, speaker string) (<-chan domain.SegmentAudio, <-chan error) {
	out := make(chan domain.SegmentAudio)
	errCh := make(chan error, 5)

	err := s.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)

		var wg sync.WaitGroup

		for seg := range segmentCh {
			wg.Add(1)
			segment := seg
			err := s.workerPool.Submit(func() {
				defer wg.Done()

				payload, err := s.audioGenerator.Generate(ctx, outbound.GenerateAudioRequest{
					Text:    segment.Text,
					Speaker: speaker,
				})
				if err != nil {
					s.logger.ErrorWithFields(err, "Failed to synthesize segment", map[string]interface{}{
						"ordinal": segment.Ordinal,
						"text":    segment.Text,
					})
					out <- domain.SegmentAudio{Segment: segment, Err: err}
					return
				}

				s.logger.DebugWithFields("Segment synthesized", map[string]interface{}{
					"ordinal": segment.Ordinal,
					"bytes":   len(payload),
				})
				out <- domain.SegmentAudio{Segment: segment, Payload: payload}
			})

			if err != nil {
				wg.Done()
				out <- domain.SegmentAudio{Segment: segment, Err: err}
				select {
				case errCh <- err:
				default:
				}
			}
		}

		wg.Wait()
	})
	if err != nil {
		errCh <- err
		close(out)
		close(errCh)
	}

	return out, errCh
}
