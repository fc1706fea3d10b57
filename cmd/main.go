package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"generate-speech-api/application/services"
	"generate-speech-api/config"
	"generate-speech-api/infrastructure/adapters"
	"generate-speech-api/infrastructure/gin_interface/controllers"
	"generate-speech-api/middleware"
)

func main() {
	config.LoadDotenv()

	tiktokConfig, err := config.GetTikTokConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get tiktok config")
	}

	poolConfig, err := config.GetWorkerPoolConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get worker pool config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}

	jwksUrl := os.Getenv("JWKS_URL")
	if jwksUrl == "" {
		log.Fatal().Msg("JWKS_URL is not set!")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(poolConfig.Size, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	s3Client := s3.New(sess)
	dynamoClient := dynamodb.New(sess)

	contentFetcher := adapters.NewContentFetcher(zeroLogger)
	speechClient := adapters.NewTikTokSpeechClient(contentFetcher, tiktokConfig, zeroLogger)

	audioStore := adapters.NewS3AudioStore(s3Client, s3Config)
	synthesisCache := adapters.NewDynamoSynthesisCache(zeroLogger, dynamoClient, dynamoConfig)

	segmenter := services.NewTextSegmenter(zeroLogger)
	synthesizer := services.NewSpeechSynthesizer(zeroLogger, speechClient, workerPool)
	assembler := services.NewAudioAssembler(zeroLogger)

	orchestrator := services.NewSynthesisOrchestrator(zeroLogger, workerPool, segmenter, synthesizer,
		assembler, speechClient, audioStore, synthesisCache)

	synthesisController := controllers.NewSynthesisController(zeroLogger, orchestrator, tiktokConfig)

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	authHandler, err := middleware.NewAuthHandler(jwksUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create auth handler!")
	}

	router.Use(authHandler.AuthMiddleware())

	synthesisController.RegisterRoutes(router)

	err = router.Run(":8080")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
