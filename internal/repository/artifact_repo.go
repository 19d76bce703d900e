package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"invoicedesk/internal/model"

	"github.com/google/uuid"
)

// ErrArtifactNotFound is returned when a token has been released or never existed.
var ErrArtifactNotFound = errors.New("artifact not found")

// ArtifactRepository keeps transient export blobs addressable by token.
type ArtifactRepository interface {
	Create(ctx context.Context, artifact *model.Artifact) error
	FindByToken(ctx context.Context, token string) (*model.Artifact, error)
	Delete(ctx context.Context, token string) error
	Count(ctx context.Context) int
}

type artifactRepository struct {
	mu    sync.RWMutex
	items map[string]model.Artifact
	now   func() time.Time
}

func NewArtifactRepository() ArtifactRepository {
	return &artifactRepository{
		items: make(map[string]model.Artifact),
		now:   time.Now,
	}
}

func (r *artifactRepository) Create(ctx context.Context, artifact *model.Artifact) error {
	if artifact.Token == "" {
		artifact.Token = uuid.NewString()
	}
	if artifact.CreatedAt.IsZero() {
		artifact.CreatedAt = r.now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[artifact.Token] = *artifact
	return nil
}

func (r *artifactRepository) FindByToken(ctx context.Context, token string) (*model.Artifact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[token]
	if !ok {
		return nil, ErrArtifactNotFound
	}
	return &a, nil
}

func (r *artifactRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[token]; !ok {
		return ErrArtifactNotFound
	}
	delete(r.items, token)
	return nil
}

func (r *artifactRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
