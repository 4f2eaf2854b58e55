package http

import (
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/validators"
)

type Handler struct {
	services *service.Services

	// validator checks request payloads before they reach the service layer.
	validator validators.Validator

	// tokenDuration mirrors the session token lifetime and drives both the
	// session cookie max-age and the sliding renewal threshold.
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		validator:     validators.NewBlogValidator(),
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}
