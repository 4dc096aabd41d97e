package identity

import (
	"context"
	"strings"

	"github.com/shopfront/backend/internal/domain/shared"
	"github.com/shopfront/backend/internal/infrastructure/statestore"
	"go.uber.org/zap"
)

// DefaultDeliveryLocation is shown until the user picks a location
const DefaultDeliveryLocation = "New York 10001"

// PreferenceService stores small per-user UI preferences. Today that is
// only the delivery location shown in the storefront header.
type PreferenceService struct {
	store  statestore.Store
	logger *zap.Logger
}

// NewPreferenceService creates a preference service over the given store
func NewPreferenceService(store statestore.Store, logger *zap.Logger) *PreferenceService {
	return &PreferenceService{store: store, logger: logger}
}

// DeliveryLocation returns the stored delivery location, falling back to
// the default when none was ever set or the store is unreadable.
func (s *PreferenceService) DeliveryLocation(ctx context.Context) string {
	value, err := s.store.Get(ctx, statestore.KeyDeliveryLocation)
	if err != nil {
		if err != statestore.ErrKeyNotFound {
			s.logger.Warn("failed to read delivery location", zap.Error(err))
		}
		return DefaultDeliveryLocation
	}
	if strings.TrimSpace(value) == "" {
		return DefaultDeliveryLocation
	}
	return value
}

// SetDeliveryLocation stores a new delivery location
func (s *PreferenceService) SetDeliveryLocation(ctx context.Context, location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return shared.NewDomainError("INVALID_LOCATION", "Delivery location cannot be empty")
	}
	return s.store.Set(ctx, statestore.KeyDeliveryLocation, location)
}

// ClearDeliveryLocation removes the stored location, restoring the default
func (s *PreferenceService) ClearDeliveryLocation(ctx context.Context) error {
	err := s.store.Delete(ctx, statestore.KeyDeliveryLocation)
	if err == statestore.ErrKeyNotFound {
		return nil
	}
	return err
}
