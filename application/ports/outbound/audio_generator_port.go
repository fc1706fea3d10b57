package outbound

import (
	"context"
)

type GenerateAudioRequest struct {
	Text    string
	Speaker string
}

// AudioGeneratorPort turns one segment of text into decoded audio bytes.
// DescribeRequest renders the outbound request for the same input without
// touching the network, for offline inspection.
type AudioGeneratorPort interface {
	Generate(ctx context.Context, req GenerateAudioRequest) ([]byte, error)
	DescribeRequest(req GenerateAudioRequest) string
}
