package adapters

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"generate-speech-api/application/ports/outbound"
	"generate-speech-api/config"
	"generate-speech-api/domain"
)

func newSpeechClientForTest(t *testing.T, handler http.HandlerFunc) outbound.AudioGeneratorPort {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := NewZerologWrapper()
	return NewTikTokSpeechClient(NewContentFetcher(logger), &config.TikTokConfig{
		ApiUrl:    server.URL,
		SessionID: "test-session",
	}, logger)
}

func TestTikTokSpeechClient_Generate(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("stitched-audio-bytes"))

	client := newSpeechClientForTest(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Error("Expected a POST request, got", r.Method)
		}
		if r.URL.Path != "/media/api/text/speech/invoke/" {
			t.Error("Unexpected request path:", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("text_speaker") != "en_us_002" {
			t.Error("Unexpected speaker:", query.Get("text_speaker"))
		}
		if query.Get("req_text") != "Hansel and Gretel plus ae" {
			t.Error("Text was not sanitized:", query.Get("req_text"))
		}
		if query.Get("speaker_map_type") != "0" || query.Get("aid") != "1233" {
			t.Error("Missing fixed query parameters")
		}
		if cookie, err := r.Cookie("sessionid"); err != nil || cookie.Value != "test-session" {
			t.Error("Session cookie was not sent")
		}
		w.Write([]byte(`{"data":{"v_str":"` + encoded + `"}}`))
	})

	audio, err := client.Generate(context.Background(), outbound.GenerateAudioRequest{
		Text:    "Hansel & Gretel + ä",
		Speaker: "en_us_002",
	})
	if err != nil {
		t.Fatal("Failed to generate audio:", err)
	}
	if string(audio) != "stitched-audio-bytes" {
		t.Fatalf("Payload was not decoded, got %q", audio)
	}
}

func TestTikTokSpeechClient_InvalidSession(t *testing.T) {
	client := newSpeechClientForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"Couldn't load speech. Try again."}`))
	})

	_, err := client.Generate(context.Background(), outbound.GenerateAudioRequest{Text: "Hello", Speaker: "en_us_002"})
	if !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatal("Expected an invalid credential error, got:", err)
	}
}

func TestTikTokSpeechClient_MissingPayload(t *testing.T) {
	client := newSpeechClientForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status_msg":"rate limited","data":{}}`))
	})

	_, err := client.Generate(context.Background(), outbound.GenerateAudioRequest{Text: "Hello", Speaker: "en_us_002"})
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Fatal("Expected a malformed response error, got:", err)
	}
}

func TestTikTokSpeechClient_UndecodablePayload(t *testing.T) {
	client := newSpeechClientForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"v_str":"%%%"}}`))
	})

	_, err := client.Generate(context.Background(), outbound.GenerateAudioRequest{Text: "Hello", Speaker: "en_us_002"})
	if !errors.Is(err, domain.ErrDecodeFailure) {
		t.Fatal("Expected a decode failure, got:", err)
	}
}

func TestTikTokSpeechClient_TransportFailure(t *testing.T) {
	client := newSpeechClientForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Generate(context.Background(), outbound.GenerateAudioRequest{Text: "Hello", Speaker: "en_us_002"})
	if !errors.Is(err, domain.ErrTransportFailure) {
		t.Fatal("Expected a transport failure, got:", err)
	}
}

func TestSanitizeText(t *testing.T) {
	sanitized := sanitizeText("Hänsel & Größe + Füße")
	if sanitized != "Haensel and Groesse plus Fuesse" {
		t.Fatalf("Unexpected sanitization result %q", sanitized)
	}
}

func TestDescribeSpeechRequest(t *testing.T) {
	descriptor := DescribeSpeechRequest("Hello world", "en_us_002")
	expected := "/media/api/text/speech/invoke/?aid=1233&req_text=Hello+world&speaker_map_type=0&text_speaker=en_us_002"
	if descriptor != expected {
		t.Fatalf("Expected %q, got %q", expected, descriptor)
	}

	if DescribeSpeechRequest("Hello world", "en_us_002") != descriptor {
		t.Fatal("Descriptor is not deterministic")
	}
}
