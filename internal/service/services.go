package service

import (
	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	PostService    PostService
	AppInfoService AppInfoService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, cfg.App, logger),
		PostService:    NewPostValidationService().Wrap(NewPostService(repositories.PostRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
