package entities

import "time"

// Delivery records a notification that reached the chat channel.
type Delivery struct {
	ID              string    `gorm:"type:uuid;primaryKey"`
	TokenAddress    string    `gorm:"type:varchar(42);index:idx_deliveries_token"`
	EventType       EventType `gorm:"type:varchar(16);not null"`
	TransactionHash string    `gorm:"type:varchar(66)"`
	Account         string    `gorm:"type:varchar(42)"`
	Amount          BigInt    `gorm:"type:numeric"`
	BlockNumber     uint64    `gorm:"not null"`
	Message         string    `gorm:"type:text"`
	SentAt          time.Time `gorm:"not null;index:idx_deliveries_sent_at"`
}

// TableName overrides the default table name.
func (Delivery) TableName() string {
	return "deliveries"
}
