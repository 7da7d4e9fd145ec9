package courierrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

var candidateStatuses = []string{courier.Available.String(), courier.Busy.String()}

// GormCourierRepository implements ports.CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id int64) (*courier.Courier, error) {
	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves the courier linked to a staff account.
func (r *GormCourierRepository) GetByUserID(ctx context.Context, userID int64) (*courier.Courier, error) {
	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", userID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListCandidates retrieves the restaurant's active couriers that are
// available or busy, ordered by id.
func (r *GormCourierRepository) ListCandidates(ctx context.Context, restaurantID int64) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_active AND status IN ?", restaurantID, candidateStatuses).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// SavePosition overwrites the position snapshot and the last seen time.
// Other columns are left untouched.
func (r *GormCourierRepository) SavePosition(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"latitude":             dto.Latitude,
			"longitude":            dto.Longitude,
			"accuracy":             dto.Accuracy,
			"heading":              dto.Heading,
			"speed":                dto.Speed,
			"position_captured_at": dto.PositionCapturedAt,
			"last_seen_at":         dto.LastSeenAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", dto.ID)
	}
	return nil
}
