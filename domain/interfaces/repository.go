package interfaces

import (
	"context"

	"github.com/ngmachado/web3-hooks/domain/entities"
)

// DeliveryRepository handles delivery history persistence
type DeliveryRepository interface {
	// Save stores a delivered notification
	Save(ctx context.Context, delivery *entities.Delivery) error

	// FindRecent returns the latest deliveries, newest first
	FindRecent(ctx context.Context, limit int) ([]entities.Delivery, error)

	// FindByToken returns the latest deliveries for one token, newest first
	FindByToken(ctx context.Context, tokenAddress string, limit int) ([]entities.Delivery, error)
}
