package inbound

import (
	"context"

	"generate-speech-api/domain"
)

type SynthesizeParams struct {
	Text      string
	Speaker   string
	ByteLimit int
}

// SynthesisOrchestratorPort runs the whole pipeline: segment, fan out,
// reassemble, and persist when a store is configured. DescribeFirstRequest
// is the no-network variant that renders the outbound request for the first
// segment only.
type SynthesisOrchestratorPort interface {
	Synthesize(ctx context.Context, params SynthesizeParams) (*domain.SynthesisResult, error)
	DescribeFirstRequest(params SynthesizeParams) (string, error)
}
