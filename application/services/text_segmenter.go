package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"generate-speech-api/application/ports/inbound"
	"generate-speech-api/application/ports/outbound"
	"generate-speech-api/domain"
)

// boundaryRunes are the characters that end a natural unit: sentence and
// clause punctuation, dashes, ellipsis, brackets, newline.
const boundaryRunes = ".,!?:;-—…(){}<>[]\n"

type textSegmenter struct {
	logger outbound.LoggerPort
}

func NewTextSegmenter(logger outbound.LoggerPort) inbound.TextSegmenterPort {
	return &textSegmenter{
		logger: logger,
	}
}

// Split partitions text into byte-bounded segments. Units are accumulated
// greedily; a unit moves to a fresh segment once it no longer fits, and a
// unit that alone exceeds the limit falls back to whitespace-delimited
// tokens. A single token over the limit is emitted whole as its own
// oversized segment.
func (s *textSegmenter) Split(text string, byteLimit int) ([]domain.Segment, error) {
	if byteLimit <= 0 {
		return nil, fmt.Errorf("byte limit must be positive, got %d", byteLimit)
	}

	segments := make([]domain.Segment, 0)
	var current strings.Builder
	currentBytes := 0

	flush := func() {
		if current.Len() == 0 {
			return
		}
		segment := domain.NewSegment(current.String(), len(segments))
		s.logger.DebugWithFields("segment created", map[string]interface{}{
			"ordinal": segment.Ordinal,
			"bytes":   currentBytes,
			"text":    segment.Text,
		})
		segments = append(segments, segment)
		current.Reset()
		currentBytes = 0
	}

	for _, unit := range s.scanUnits(text) {
		if strings.TrimSpace(unit) == "" {
			continue
		}
		unitBytes := len(unit)

		if unitBytes > byteLimit {
			for _, token := range strings.Fields(unit) {
				tokenBytes := len(token)
				if currentBytes+tokenBytes+1 > byteLimit {
					flush()
					current.WriteString(token)
					currentBytes = tokenBytes
				} else if currentBytes == 0 {
					current.WriteString(token)
					currentBytes = tokenBytes
				} else {
					current.WriteByte(' ')
					current.WriteString(token)
					currentBytes += tokenBytes + 1
				}
			}
			continue
		}

		if currentBytes+unitBytes+1 > byteLimit {
			flush()
		}
		current.WriteString(unit)
		currentBytes += unitBytes
	}

	flush()

	return segments, nil
}

// scanUnits walks text once and cuts it after every boundary character,
// keeping any whitespace that follows the boundary attached to the unit so
// that concatenating all units reproduces the input exactly. Text after the
// last boundary forms the final unit.
func (s *textSegmenter) scanUnits(text string) []string {
	units := make([]string, 0)
	start := 0
	i := 0

	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if !strings.ContainsRune(boundaryRunes, r) {
			continue
		}
		for i < len(text) {
			next, nextSize := utf8.DecodeRuneInString(text[i:])
			if !unicode.IsSpace(next) {
				break
			}
			i += nextSize
		}
		units = append(units, text[start:i])
		start = i
	}

	if start < len(text) {
		units = append(units, text[start:])
	}

	return units
}
