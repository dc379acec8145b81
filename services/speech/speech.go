package speech

import (
	"context"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"
)

// Transcriber converts request audio to plain text. Implementations return an
// error on failure; callers degrade to an empty transcript, never crash.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, languageCode string) (string, error)
}

// GoogleTranscriber uses the Google Cloud Speech-to-Text API. Audio is
// expected as LINEAR16, 16 kHz, mono.
type GoogleTranscriber struct {
	CredentialsFile string
}

func NewGoogleTranscriber(credentialsFile string) *GoogleTranscriber {
	return &GoogleTranscriber{CredentialsFile: credentialsFile}
}

func (g *GoogleTranscriber) Transcribe(ctx context.Context, audio []byte, languageCode string) (string, error) {
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(g.CredentialsFile))
	if err != nil {
		return "", fmt.Errorf("failed to initialize speech client: %w", err)
	}
	defer client.Close()

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			LanguageCode:      languageCode,
			AudioChannelCount: 1,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	var sb strings.Builder
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			sb.WriteString(result.Alternatives[0].Transcript)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
