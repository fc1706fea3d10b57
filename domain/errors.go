package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredential means the speech endpoint rejected the session
	// credential. It is surfaced to the caller over a plain partial failure.
	ErrInvalidCredential = errors.New("speech endpoint rejected the session credential")

	// ErrMalformedResponse means the call succeeded at the transport level
	// but the response carried no audio payload.
	ErrMalformedResponse = errors.New("speech response is missing the audio payload")

	// ErrDecodeFailure means a segment's encoded payload could not be
	// decoded into raw audio bytes.
	ErrDecodeFailure = errors.New("segment audio payload failed to decode")

	// ErrTransportFailure means a single synthesis call failed before a
	// usable response body was obtained.
	ErrTransportFailure = errors.New("speech request failed in transport")
)

// PartialFailureError reports a synthesis run where some segments failed.
// No audio is emitted in that case, even for the segments that succeeded.
type PartialFailureError struct {
	Failed []int
	Total  int
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("synthesis incomplete: %d of %d segments failed (ordinals %v)", len(e.Failed), e.Total, e.Failed)
}
