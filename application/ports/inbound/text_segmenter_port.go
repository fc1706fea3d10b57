package inbound

import (
	"generate-speech-api/domain"
)

// TextSegmenterPort splits text into segments whose UTF-8 byte length stays
// within byteLimit, except for a single token that alone exceeds the limit.
// Splitting never happens inside a whitespace-delimited token.
type TextSegmenterPort interface {
	Split(text string, byteLimit int) ([]domain.Segment, error)
}
