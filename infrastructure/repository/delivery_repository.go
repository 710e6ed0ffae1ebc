// Package repository provides gorm-backed persistence for delivery history.
package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ngmachado/web3-hooks/domain/entities"
	"github.com/ngmachado/web3-hooks/domain/errors"
	"github.com/ngmachado/web3-hooks/domain/interfaces"
	"gorm.io/gorm"
)

const defaultHistoryLimit = 50

// deliveryRepository implements the DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository creates a new delivery repository.
func NewDeliveryRepository(db *gorm.DB) interfaces.DeliveryRepository {
	return &deliveryRepository{db: db}
}

// Migrate creates or updates the deliveries table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Delivery{}); err != nil {
		return &errors.RepositoryError{
			Operation: "Migrate",
			Entity:    "Delivery",
			Err:       err,
		}
	}
	return nil
}

// Save stores a delivered notification, assigning an ID and timestamp when missing.
func (r *deliveryRepository) Save(ctx context.Context, delivery *entities.Delivery) error {
	if delivery.ID == "" {
		delivery.ID = uuid.NewString()
	}
	if delivery.SentAt.IsZero() {
		delivery.SentAt = time.Now().UTC()
	}
	delivery.TokenAddress = strings.ToLower(delivery.TokenAddress)

	if err := r.db.WithContext(ctx).Create(delivery).Error; err != nil {
		return &errors.RepositoryError{
			Operation: "Save",
			Entity:    "Delivery",
			Err:       err,
		}
	}

	return nil
}

// FindRecent returns the latest deliveries, newest first.
func (r *deliveryRepository) FindRecent(ctx context.Context, limit int) ([]entities.Delivery, error) {
	var deliveries []entities.Delivery

	err := r.db.WithContext(ctx).
		Order("sent_at DESC").
		Limit(normalizeLimit(limit)).
		Find(&deliveries).Error
	if err != nil {
		return nil, &errors.RepositoryError{
			Operation: "FindRecent",
			Entity:    "Delivery",
			Err:       err,
		}
	}

	return deliveries, nil
}

// FindByToken returns the latest deliveries for one token, newest first.
func (r *deliveryRepository) FindByToken(
	ctx context.Context,
	tokenAddress string,
	limit int,
) ([]entities.Delivery, error) {
	var deliveries []entities.Delivery

	err := r.db.WithContext(ctx).
		Where("token_address = ?", strings.ToLower(tokenAddress)).
		Order("sent_at DESC").
		Limit(normalizeLimit(limit)).
		Find(&deliveries).Error
	if err != nil {
		return nil, &errors.RepositoryError{
			Operation: "FindByToken",
			Entity:    "Delivery",
			Err:       err,
		}
	}

	return deliveries, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultHistoryLimit
	}
	return limit
}
