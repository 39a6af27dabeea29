package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vocab-trainer/internal/config"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/internal/service"
	"github.com/MKhiriev/go-vocab-trainer/internal/store"
)

func TestNewHandlers(t *testing.T) {
	services := service.NewServices(store.NewMemoryVocabularyStorage(), logger.Nop())

	handlers, err := NewHandlers(services, &config.ServerConfig{HTTPAddress: "localhost:8000"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)

	_, err = NewHandlers(services, &config.ServerConfig{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
