package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// DefaultByteLimit is the maximum UTF-8 byte length of a single
	// outgoing request text.
	DefaultByteLimit = 300

	DefaultSpeaker = "en_us_002"
)

type TikTokConfig struct {
	ApiUrl    string
	SessionID string
	ByteLimit int
	Speaker   string
}

func GetTikTokConfig() (*TikTokConfig, error) {
	apiUrl := os.Getenv("TIKTOK_API_BASEURL")
	if apiUrl == "" {
		return nil, fmt.Errorf("TIKTOK_API_BASEURL must be set")
	}
	sessionID := os.Getenv("TIKTOK_SESSIONID")
	if sessionID == "" {
		return nil, fmt.Errorf("TIKTOK_SESSIONID must be set")
	}

	byteLimit := DefaultByteLimit
	if raw := os.Getenv("TTS_BYTE_LIMIT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("TTS_BYTE_LIMIT must be a positive integer")
		}
		byteLimit = parsed
	}

	speaker := os.Getenv("TTS_DEFAULT_SPEAKER")
	if speaker == "" {
		speaker = DefaultSpeaker
	}

	return &TikTokConfig{
		ApiUrl:    apiUrl,
		SessionID: sessionID,
		ByteLimit: byteLimit,
		Speaker:   speaker,
	}, nil
}
