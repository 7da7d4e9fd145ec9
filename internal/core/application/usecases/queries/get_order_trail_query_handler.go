package queries

import (
	"context"
	"database/sql"
	"time"

	"dispatch/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetOrderTrailQueryHandler reads the location log of one order.
type GetOrderTrailQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderTrailQueryHandler(db *gorm.DB) GetOrderTrailQueryHandler {
	return GetOrderTrailQueryHandler{db: db}
}

// Handle returns at most query.Limit() points in recording order.
// An order without a trail yields an empty slice.
func (h GetOrderTrailQueryHandler) Handle(ctx context.Context, query GetOrderTrailQuery) ([]TrailPoint, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	points := make([]TrailPoint, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			courier_id,
			latitude,
			longitude,
			accuracy,
			heading,
			speed,
			recorded_at
		FROM courier_location_log
		WHERE order_id = ?
		ORDER BY recorded_at, id
		LIMIT ?
	`, query.OrderID(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p                      TrailPoint
			lat, lng               float64
			accuracy, heading, spd sql.NullFloat64
		)
		if err = rows.Scan(&p.CourierID, &lat, &lng, &accuracy, &heading, &spd, &p.RecordedAt); err != nil {
			return nil, err
		}

		loc, locErr := kernel.NewLocation(lat, lng)
		if locErr != nil {
			return nil, locErr
		}
		p.Location = loc
		p.Accuracy = nullable(accuracy)
		p.Heading = nullable(heading)
		p.Speed = nullable(spd)
		p.RecordedAt = p.RecordedAt.In(time.UTC)
		points = append(points, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return points, nil
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
