package orderrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	inTransitStatuses = []string{order.PickedUp.String(), order.InTransit.String()}
	terminalStatuses  = []string{order.Delivered.String(), order.Cancelled.String()}
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the mutable columns of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(dto.mutableColumns())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	return r.first(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order and holds its row lock until the
// transaction of r ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormOrderRepository) first(db *gorm.DB, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := db.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListInTransitByCourier retrieves the courier's picked up and in transit orders.
func (r *GormOrderRepository) ListInTransitByCourier(ctx context.Context, courierID int64) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ? AND status IN ?", courierID, inTransitStatuses).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// CountActiveByCourier counts non-terminal orders per courier.
func (r *GormOrderRepository) CountActiveByCourier(ctx context.Context, courierIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int, len(courierIDs))
	if len(courierIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		CourierID int64
		Active    int
	}
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("courier_id, count(*) AS active").
		Where("courier_id IN ? AND status NOT IN ?", courierIDs, terminalStatuses).
		Group("courier_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.CourierID] = row.Active
	}
	return counts, nil
}

// ListAwaitingCourier returns ids of ready, unassigned delivery orders, oldest first.
func (r *GormOrderRepository) ListAwaitingCourier(ctx context.Context, limit int) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("delivery_type = ? AND status = ? AND courier_id IS NULL", string(order.TypeDelivery), order.Ready.String()).
		Order("id").
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
