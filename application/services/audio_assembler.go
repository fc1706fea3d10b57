package services

import (
	"bytes"
	"context"
	"errors"
	"sort"

	"generate-speech-api/application/ports/inbound"
	"generate-speech-api/application/ports/outbound"
	"generate-speech-api/domain"
)

type audioAssembler struct {
	logger outbound.LoggerPort
}

func NewAudioAssembler(logger outbound.LoggerPort) inbound.AudioAssemblerPort {
	return &audioAssembler{
		logger: logger,
	}
}

// Assemble collects every segment outcome into its ordinal's slot and, once
// the channel closes, concatenates the payloads in ascending ordinal order.
// It always drains the channel fully so that launched calls are never left
// blocked, and it only succeeds when every one of the total ordinals carries
// a payload. A credential rejection among the failures wins over the
// aggregate partial-failure error.
func (a *audioAssembler) Assemble(ctx context.Context, audioCh <-chan domain.SegmentAudio, total int) ([]byte, error) {
	slots := make([][]byte, total)
	delivered := make([]bool, total)
	var credentialErr error

	for segmentAudio := range audioCh {
		if segmentAudio.Ordinal < 0 || segmentAudio.Ordinal >= total {
			a.logger.WarnWithFields("Dropping segment outcome with out-of-range ordinal", map[string]interface{}{
				"ordinal": segmentAudio.Ordinal,
				"total":   total,
			})
			continue
		}
		if segmentAudio.Err != nil {
			if errors.Is(segmentAudio.Err, domain.ErrInvalidCredential) {
				credentialErr = segmentAudio.Err
			}
			continue
		}
		slots[segmentAudio.Ordinal] = segmentAudio.Payload
		delivered[segmentAudio.Ordinal] = true
	}

	if credentialErr != nil {
		return nil, credentialErr
	}

	failed := make([]int, 0)
	for ordinal, ok := range delivered {
		if !ok {
			failed = append(failed, ordinal)
		}
	}
	if len(failed) > 0 {
		sort.Ints(failed)
		return nil, &domain.PartialFailureError{Failed: failed, Total: total}
	}

	var audio bytes.Buffer
	for _, payload := range slots {
		audio.Write(payload)
	}

	return audio.Bytes(), nil
}
