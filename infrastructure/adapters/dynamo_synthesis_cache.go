package adapters

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"generate-speech-api/application/ports/outbound"
	"generate-speech-api/config"
	"generate-speech-api/domain"
)

type dynamoSynthesisItem struct {
	SynthesisId  string `dynamodbav:"synthesis_id"`
	Speaker      string `dynamodbav:"speaker"`
	SegmentCount int    `dynamodbav:"segment_count"`
	AudioBytes   int    `dynamodbav:"audio_bytes"`
	AudioUrl     string `dynamodbav:"audio_url"`
	TTL          int64  `dynamodbav:"ttl"`
}

type dynamoSynthesisCache struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoSynthesisCache(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB,
	dynamoConfig *config.DynamoConfig) outbound.SynthesisCachePort {
	return &dynamoSynthesisCache{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (c *dynamoSynthesisCache) Save(ctx context.Context, record domain.SynthesisRecord) error {
	item := dynamoSynthesisItem{
		SynthesisId:  record.ID,
		Speaker:      record.Speaker,
		SegmentCount: record.SegmentCount,
		AudioBytes:   record.AudioBytes,
		AudioUrl:     record.AudioURL,
		TTL:          time.Now().Add(time.Duration(c.dynamoConfig.TtlMinutes) * time.Minute).Unix(),
	}
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to marshal synthesis record", map[string]interface{}{
			"synthesis_id": record.ID,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(c.dynamoConfig.TableName),
	}

	_, err = c.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to save synthesis record", map[string]interface{}{
			"synthesis_id": record.ID,
		})
		return err
	}

	return nil
}
