package adapters

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"

	"generate-speech-api/application/ports/outbound"
	"generate-speech-api/config"
	"generate-speech-api/domain"
)

type s3AudioStore struct {
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3AudioStore(s3Svc *s3.S3, s3Config *config.S3Config) outbound.AudioStorePort {
	return &s3AudioStore{
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

func (s *s3AudioStore) Save(ctx context.Context, result domain.SynthesisResult) (string, error) {
	objectKey := s.getObjectKey(result)

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(result.Audio),
		ContentLength: aws.Int64(int64(len(result.Audio))),
		ContentType:   aws.String("audio/mpeg"),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		log.Error().
			Err(err).
			Str("bucket", s.s3Config.BucketName).
			Str("key", objectKey).
			Msg("Failed to upload audio to S3")
		return "", err
	}

	s3Url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, objectKey)
	log.Debug().
		Str("s3Url", s3Url).
		Msg("Successfully uploaded audio to S3")

	return s3Url, nil
}

func (s *s3AudioStore) getObjectKey(result domain.SynthesisResult) string {
	return fmt.Sprintf("synthesis/%s/%s.mp3", result.Speaker, result.ID)
}
