package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vocab-trainer/internal/adapter"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

type clientProfileService struct {
	adapter adapter.ServerAdapter
	session ClientSessionService
}

func NewClientProfileService(serverAdapter adapter.ServerAdapter, session ClientSessionService) ClientProfileService {
	return &clientProfileService{adapter: serverAdapter, session: session}
}

func (p *clientProfileService) Get(ctx context.Context) (models.UserProfile, error) {
	userID, err := currentUserID(p.session)
	if err != nil {
		return models.UserProfile{}, err
	}

	profile, err := p.adapter.GetUser(ctx, userID)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}
