package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"generate-speech-api/application/ports/inbound"
	"generate-speech-api/application/ports/outbound"
	"generate-speech-api/channel_utils"
	"generate-speech-api/domain"
)

type synthesisOrchestrator struct {
	logger         outbound.LoggerPort
	workerPool     outbound.TaskDispatcher
	segmenter      inbound.TextSegmenterPort
	synthesizer    inbound.SpeechSynthesizerPort
	assembler      inbound.AudioAssemblerPort
	audioGenerator outbound.AudioGeneratorPort
	audioStore     outbound.AudioStorePort
	synthesisCache outbound.SynthesisCachePort
}

// NewSynthesisOrchestrator wires the pipeline stages together. audioStore
// and synthesisCache may be nil, in which case the reassembled audio is
// returned without being persisted.
func NewSynthesisOrchestrator(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	segmenter inbound.TextSegmenterPort, synthesizer inbound.SpeechSynthesizerPort,
	assembler inbound.AudioAssemblerPort, audioGenerator outbound.AudioGeneratorPort,
	audioStore outbound.AudioStorePort, synthesisCache outbound.SynthesisCachePort) inbound.SynthesisOrchestratorPort {
	return &synthesisOrchestrator{
		logger:         logger,
		workerPool:     workerPool,
		segmenter:      segmenter,
		synthesizer:    synthesizer,
		assembler:      assembler,
		audioGenerator: audioGenerator,
		audioStore:     audioStore,
		synthesisCache: synthesisCache,
	}
}

func (o *synthesisOrchestrator) Synthesize(ctx context.Context, params inbound.SynthesizeParams) (*domain.SynthesisResult, error) {
	segments, err := o.segmenter.Split(params.Text, params.ByteLimit)
	if err != nil {
		return nil, err
	}

	result := &domain.SynthesisResult{
		ID:           uuid.NewString(),
		Speaker:      params.Speaker,
		SegmentCount: len(segments),
	}

	if len(segments) == 0 {
		result.Audio = []byte{}
		return result, nil
	}

	o.logger.InfoWithFields("Synthesizing segments", map[string]interface{}{
		"synthesis_id": result.ID,
		"segments":     len(segments),
		"speaker":      params.Speaker,
	})

	segmentCh, feedErrCh := o.feedSegments(segments)

	audioCh, synthesizerErrCh := o.synthesizer.Synthesize(ctx, segmentCh, params.Speaker)

	mergedErrCh, err := channel_utils.MergeChannels(o.workerPool, feedErrCh, synthesizerErrCh)
	if err != nil {
		return nil, err
	}

	audio, assembleErr := o.assembler.Assemble(ctx, audioCh, len(segments))

	for err := range mergedErrCh {
		if assembleErr == nil {
			assembleErr = err
		}
	}
	if assembleErr != nil {
		return nil, assembleErr
	}

	result.Audio = audio

	if o.audioStore != nil {
		url, err := o.audioStore.Save(ctx, *result)
		if err != nil {
			return nil, fmt.Errorf("failed to store synthesized audio: %w", err)
		}
		result.AudioURL = url
	}

	if o.synthesisCache != nil {
		record := domain.SynthesisRecord{
			ID:           result.ID,
			Speaker:      result.Speaker,
			SegmentCount: result.SegmentCount,
			AudioBytes:   len(audio),
			AudioURL:     result.AudioURL,
		}
		if err := o.synthesisCache.Save(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to record synthesis metadata: %w", err)
		}
	}

	return result, nil
}

// DescribeFirstRequest segments the text and renders the outbound request
// for the first segment without making any network call.
func (o *synthesisOrchestrator) DescribeFirstRequest(params inbound.SynthesizeParams) (string, error) {
	segments, err := o.segmenter.Split(params.Text, params.ByteLimit)
	if err != nil {
		return "", err
	}
	if len(segments) == 0 {
		return "", nil
	}

	return o.audioGenerator.DescribeRequest(outbound.GenerateAudioRequest{
		Text:    segments[0].Text,
		Speaker: params.Speaker,
	}), nil
}

func (o *synthesisOrchestrator) feedSegments(segments []domain.Segment) (<-chan domain.Segment, <-chan error) {
	out := make(chan domain.Segment)
	errCh := make(chan error, 1)

	err := o.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		for _, segment := range segments {
			out <- segment
		}
	})
	if err != nil {
		errCh <- err
		close(out)
		close(errCh)
	}

	return out, errCh
}
