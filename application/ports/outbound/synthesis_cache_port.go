package outbound

import (
	"context"

	"generate-speech-api/domain"
)

type SynthesisCachePort interface {
	Save(ctx context.Context, record domain.SynthesisRecord) error
}
