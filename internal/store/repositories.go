package store

import (
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
)

// Repositories bundles all persistence-layer contracts behind a single
// injection point for the service layer.
type Repositories struct {
	UserRepository UserRepository
	PostRepository PostRepository
}

// NewRepositories constructs all repositories backed by the given database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		PostRepository: NewPostRepository(db, logger),
	}
}
