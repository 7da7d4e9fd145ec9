package queries

import (
	"context"
	"database/sql"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// ListCouriersQueryHandler reads the courier board with a single SQL
// statement, bypassing the aggregates.
type ListCouriersQueryHandler struct {
	db *gorm.DB
}

// NewListCouriersQueryHandler creates a handler for courier board queries.
func NewListCouriersQueryHandler(db *gorm.DB) ListCouriersQueryHandler {
	return ListCouriersQueryHandler{db: db}
}

// Handle returns the restaurant's couriers sorted by name, then id.
// ActiveOrders counts assigned orders that are neither delivered nor cancelled.
func (h ListCouriersQueryHandler) Handle(
	ctx context.Context,
	query ListCouriersQuery,
) ([]ListCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]ListCouriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.is_active,
			c.status,
			c.transport,
			c.latitude,
			c.longitude,
			c.last_seen_at,
			(
				SELECT count(*)
				FROM orders o
				WHERE o.courier_id = c.id
				  AND o.status NOT IN ('delivered', 'cancelled')
			) AS active_orders
		FROM couriers c
		WHERE c.restaurant_id = ?
		ORDER BY c.name, c.id
	`, query.RestaurantID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			row        ListCouriersQueryResponse
			status     string
			transport  string
			lat, lng   sql.NullFloat64
			lastSeenAt sql.NullTime
		)

		err = rows.Scan(
			&row.ID,
			&row.Name,
			&row.Active,
			&status,
			&transport,
			&lat,
			&lng,
			&lastSeenAt,
			&row.ActiveOrders,
		)
		if err != nil {
			return nil, err
		}

		row.Status = courier.Status(status)
		row.Transport = courier.Transport(transport)
		if lat.Valid && lng.Valid {
			loc, locErr := kernel.NewLocation(lat.Float64, lng.Float64)
			if locErr != nil {
				return nil, locErr
			}
			row.Location = &loc
		}
		if lastSeenAt.Valid {
			t := lastSeenAt.Time.In(time.UTC)
			row.LastSeenAt = &t
		}
		couriers = append(couriers, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
