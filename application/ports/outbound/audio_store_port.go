package outbound

import (
	"context"

	"generate-speech-api/domain"
)

// AudioStorePort persists a completed synthesis and returns the public URL
// of the stored object.
type AudioStorePort interface {
	Save(ctx context.Context, result domain.SynthesisResult) (string, error)
}
