// Package courierrepo maps courier aggregates to the couriers table.
package courierrepo

import (
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierDTO represents the database structure of a courier, including the
// overwritten position snapshot.
type CourierDTO struct {
	ID                 int64 `gorm:"primaryKey"`
	UserID             int64 `gorm:"uniqueIndex"`
	RestaurantID       int64 `gorm:"index"`
	Name               string
	Phone              string
	IsActive           bool
	Status             string
	Transport          string
	Latitude           *float64
	Longitude          *float64
	Accuracy           *float64
	Heading            *float64
	Speed              *float64
	PositionCapturedAt *time.Time
	LastSeenAt         *time.Time
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:           c.ID(),
		UserID:       c.UserID(),
		RestaurantID: c.RestaurantID(),
		Name:         c.Name(),
		Phone:        c.Phone(),
		IsActive:     c.IsActive(),
		Status:       c.Status().String(),
		Transport:    c.Transport().String(),
		LastSeenAt:   c.LastSeenAt(),
	}
	if p := c.Position(); p != nil {
		lat, lng := p.Location().Latitude(), p.Location().Longitude()
		captured := p.CapturedAt()
		dto.Latitude = &lat
		dto.Longitude = &lng
		dto.Accuracy = p.Accuracy()
		dto.Heading = p.Heading()
		dto.Speed = p.Speed()
		dto.PositionCapturedAt = &captured
	}
	return dto
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	var pos *courier.Position
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, err := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return nil, err
		}
		var captured time.Time
		if dto.PositionCapturedAt != nil {
			captured = *dto.PositionCapturedAt
		}
		p, err := courier.NewPosition(loc, dto.Accuracy, dto.Heading, dto.Speed, captured)
		if err != nil {
			return nil, err
		}
		pos = &p
	}

	return courier.RestoreCourier(courier.RestoreParams{
		ID:           dto.ID,
		UserID:       dto.UserID,
		RestaurantID: dto.RestaurantID,
		Name:         dto.Name,
		Phone:        dto.Phone,
		Active:       dto.IsActive,
		Status:       courier.Status(dto.Status),
		Transport:    courier.Transport(dto.Transport),
		Position:     pos,
		LastSeenAt:   dto.LastSeenAt,
	})
}

func toDomainList(dtos []CourierDTO) ([]*courier.Courier, error) {
	out := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
