package adapters

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"generate-speech-api/application/ports/outbound"
	"generate-speech-api/config"
	"generate-speech-api/domain"
)

const (
	speechInvokePath = "/media/api/text/speech/invoke/"
	speechUserAgent  = "com.zhiliaoapp.musically/2022600030 (Linux; U; Android 7.1.2; es_ES; SM-G988N; Build/NRD90M;tt-ok/3.12.13.1)"

	// The endpoint answers with this message when the session cookie is
	// missing or expired; it must not be treated as a generic failure.
	invalidSessionMessage = "Couldn't load speech. Try again."
)

// textReplacer rewrites characters the speech endpoint mispronounces or
// rejects into ASCII-safe equivalents. Applied per segment at request time.
var textReplacer = strings.NewReplacer(
	"+", "plus",
	"&", "and",
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

func sanitizeText(text string) string {
	return textReplacer.Replace(text)
}

type speechResponse struct {
	Message   string `json:"message"`
	StatusMsg string `json:"status_msg"`
	Data      struct {
		VStr string `json:"v_str"`
	} `json:"data"`
}

type tiktokSpeechClient struct {
	ContentFetcher
	logger       outbound.LoggerPort
	tiktokConfig *config.TikTokConfig
}

func NewTikTokSpeechClient(contentFetcher ContentFetcher, tiktokConfig *config.TikTokConfig,
	logger outbound.LoggerPort) outbound.AudioGeneratorPort {
	return &tiktokSpeechClient{
		ContentFetcher: contentFetcher,
		logger:         logger,
		tiktokConfig:   tiktokConfig,
	}
}

// Generate synthesizes one segment and returns its decoded audio bytes.
// The base64 payload is decoded here, per segment, so that reassembly
// concatenates raw bytes and never relies on padding aligning across
// segment boundaries.
func (t *tiktokSpeechClient) Generate(ctx context.Context, req outbound.GenerateAudioRequest) ([]byte, error) {
	httpReq, err := t.getRequest(ctx, req.Text, req.Speaker)
	if err != nil {
		t.logger.ErrorWithFields(err, "Failed to construct the speech request", map[string]interface{}{
			"text": req.Text,
		})
		return nil, err
	}

	payload, err := t.FetchContent(httpReq)
	if err != nil {
		return nil, err
	}

	var response speechResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		t.logger.Error(err, "Failed to decode the speech response body")
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	if response.Message == invalidSessionMessage {
		return nil, domain.ErrInvalidCredential
	}

	if response.Data.VStr == "" {
		t.logger.ErrorWithFields(nil, "Speech response carries no audio payload", map[string]interface{}{
			"status_msg": response.StatusMsg,
		})
		return nil, domain.ErrMalformedResponse
	}

	audio, err := base64.StdEncoding.DecodeString(response.Data.VStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeFailure, err)
	}

	return audio, nil
}

// DescribeRequest renders the request path and query for a segment without
// making any network call.
func (t *tiktokSpeechClient) DescribeRequest(req outbound.GenerateAudioRequest) string {
	return DescribeSpeechRequest(req.Text, req.Speaker)
}

// DescribeSpeechRequest is the no-credential variant used for offline
// inspection; it needs neither a session nor an API root.
func DescribeSpeechRequest(text string, speaker string) string {
	return speechInvokePath + "?" + speechQuery(text, speaker).Encode()
}

func (t *tiktokSpeechClient) getRequest(ctx context.Context, text string, speaker string) (*http.Request, error) {
	endpoint, err := url.Parse(t.tiktokConfig.ApiUrl + speechInvokePath)
	if err != nil {
		return nil, err
	}
	endpoint.RawQuery = speechQuery(text, speaker).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", speechUserAgent)
	req.Header.Set("Cookie", "sessionid="+t.tiktokConfig.SessionID)

	return req, nil
}

func speechQuery(text string, speaker string) url.Values {
	return url.Values{
		"text_speaker":     {speaker},
		"req_text":         {sanitizeText(text)},
		"speaker_map_type": {"0"},
		"aid":              {"1233"},
	}
}
