package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"generate-speech-api/application/ports/inbound"
	"generate-speech-api/application/ports/outbound"
	"generate-speech-api/config"
	"generate-speech-api/domain"
	"generate-speech-api/infrastructure/gin_interface/dto"
)

type SynthesisController interface {
	Synthesize(c *gin.Context)
	DescribeRequest(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type synthesisController struct {
	logger       outbound.LoggerPort
	orchestrator inbound.SynthesisOrchestratorPort
	tiktokConfig *config.TikTokConfig
}

func NewSynthesisController(logger outbound.LoggerPort, orchestrator inbound.SynthesisOrchestratorPort,
	tiktokConfig *config.TikTokConfig) SynthesisController {
	return &synthesisController{
		logger:       logger,
		orchestrator: orchestrator,
		tiktokConfig: tiktokConfig,
	}
}

func (s *synthesisController) Synthesize(c *gin.Context) {
	var request dto.SynthesizeRequest
	newCtx, cancel := context.WithCancel(c)
	defer cancel()
	if err := c.ShouldBindJSON(&request); err != nil {
		err = c.AbortWithError(http.StatusBadRequest, err)
		if err != nil {
			s.logger.Error(err, "failed to abort with error")
		}
		return
	}

	speaker := request.Speaker
	if speaker == "" {
		speaker = s.tiktokConfig.Speaker
	}

	result, err := s.orchestrator.Synthesize(newCtx, inbound.SynthesizeParams{
		Text:      strings.TrimSpace(request.Text),
		Speaker:   speaker,
		ByteLimit: s.tiktokConfig.ByteLimit,
	})
	if err != nil {
		s.abortSynthesisError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SynthesizeResponse{
		SynthesisID:  result.ID,
		AudioURL:     result.AudioURL,
		SegmentCount: result.SegmentCount,
		AudioBytes:   len(result.Audio),
	})
}

func (s *synthesisController) DescribeRequest(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "text query parameter is required"})
		return
	}
	speaker := c.Query("speaker")
	if speaker == "" {
		speaker = s.tiktokConfig.Speaker
	}

	descriptor, err := s.orchestrator.DescribeFirstRequest(inbound.SynthesizeParams{
		Text:      text,
		Speaker:   speaker,
		ByteLimit: s.tiktokConfig.ByteLimit,
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.DescribeRequestResponse{Request: descriptor})
}

func (s *synthesisController) RegisterRoutes(g *gin.Engine) {
	g.POST("/synthesize", s.Synthesize)
	g.GET("/synthesize/request", s.DescribeRequest)
	g.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// abortSynthesisError maps failures of the synthesis run onto status codes:
// upstream rejections and incomplete runs are gateway errors, everything
// else is internal.
func (s *synthesisController) abortSynthesisError(c *gin.Context, err error) {
	var partial *domain.PartialFailureError
	switch {
	case errors.Is(err, domain.ErrInvalidCredential):
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.As(err, &partial):
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		s.logger.Error(err, "synthesis failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
