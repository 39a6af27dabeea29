package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vocab-trainer/internal/adapter"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

type clientDictionaryService struct {
	adapter adapter.ServerAdapter
	session ClientSessionService
}

func NewClientDictionaryService(serverAdapter adapter.ServerAdapter, session ClientSessionService) ClientDictionaryService {
	return &clientDictionaryService{adapter: serverAdapter, session: session}
}

func (d *clientDictionaryService) List(ctx context.Context) ([]models.Dictionary, error) {
	userID, err := currentUserID(d.session)
	if err != nil {
		return nil, err
	}

	dictionaries, err := d.adapter.ListDictionaries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list dictionaries: %w", err)
	}
	return dictionaries, nil
}

func (d *clientDictionaryService) Create(ctx context.Context, name string) (models.Dictionary, error) {
	userID, err := currentUserID(d.session)
	if err != nil {
		return models.Dictionary{}, err
	}

	created, err := d.adapter.CreateDictionary(ctx, models.NewDictionaryRequest{Owner: userID, Name: name})
	if err != nil {
		return models.Dictionary{}, fmt.Errorf("create dictionary: %w", err)
	}
	return created, nil
}

func (d *clientDictionaryService) Delete(ctx context.Context, id int64) error {
	if err := d.adapter.DeleteDictionary(ctx, id); err != nil {
		return fmt.Errorf("delete dictionary %d: %w", id, err)
	}
	return nil
}

func currentUserID(session ClientSessionService) (int64, error) {
	s := session.Session()
	if !s.SignedIn() {
		return 0, ErrNotSignedIn
	}
	return s.UserID, nil
}
