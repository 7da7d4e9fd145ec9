// Package trackingrepo reads public tracking tokens.
package trackingrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// TokenDTO is one row of order_tracking_tokens.
type TokenDTO struct {
	Token     string `gorm:"type:uuid;primaryKey"`
	OrderID   int64
	IsActive  bool
	ExpiresAt *time.Time
	CreatedAt time.Time
}

// TableName specifies the database table name for tracking tokens.
func (TokenDTO) TableName() string {
	return "order_tracking_tokens"
}

// GormTrackingTokenRepository implements ports.TrackingTokenRepository.
type GormTrackingTokenRepository struct {
	db *gorm.DB
}

func NewGormTrackingTokenRepository(db *gorm.DB) *GormTrackingTokenRepository {
	return &GormTrackingTokenRepository{db: db}
}

// Get looks the token up by value.
func (r *GormTrackingTokenRepository) Get(ctx context.Context, value kernel.UUID) (tracking.Token, error) {
	if err := value.Validate(); err != nil {
		return tracking.Token{}, err
	}

	var dto TokenDTO
	if err := r.db.WithContext(ctx).First(&dto, "token = ?", value.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tracking.Token{}, errs.NewObjectNotFoundError("tracking_token", value.String())
		}
		return tracking.Token{}, err
	}

	return tracking.Token{
		Value:     value,
		OrderID:   dto.OrderID,
		Active:    dto.IsActive,
		ExpiresAt: dto.ExpiresAt,
	}, nil
}

// Add stores a token. Tokens are issued elsewhere; this is used by seeding and tests.
func (r *GormTrackingTokenRepository) Add(ctx context.Context, t tracking.Token) error {
	if err := t.Value.Validate(); err != nil {
		return err
	}
	dto := TokenDTO{
		Token:     t.Value.String(),
		OrderID:   t.OrderID,
		IsActive:  t.Active,
		ExpiresAt: t.ExpiresAt,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}
