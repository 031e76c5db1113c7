// Package orderrepo persists order aggregates in the orders table.
package orderrepo

import (
	"encoding/json"
	"time"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is the row layout of the orders table. Status is stored by wire name so the
// table stays readable without the enum.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      int64           `gorm:"not null;index"`
	RestaurantID    int64           `gorm:"not null;index"`
	Status          string          `gorm:"type:varchar(16);not null;index"`
	Items           datatypes.JSON  `gorm:"type:jsonb;not null"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DeliveryAddress string          `gorm:"type:text;not null"`
	IsDeleted       bool            `gorm:"not null;default:false"`
	IsArchived      bool            `gorm:"not null;default:false"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt       time.Time       `gorm:"not null;autoUpdateTime:false"`
	Version         int64           `gorm:"not null;default:1"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one element of the items JSON column.
type LineItemDTO struct {
	MenuItemID int64           `json:"menuItemId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	items := make([]LineItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, LineItemDTO{
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Decimal(),
		})
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:              o.ID().Bytes(),
		CustomerID:      o.CustomerID(),
		RestaurantID:    o.RestaurantID(),
		Status:          o.Status().String(),
		Items:           datatypes.JSON(raw),
		TotalAmount:     o.Total().Decimal(),
		DeliveryAddress: o.DeliveryAddress(),
		IsDeleted:       o.IsDeleted(),
		IsArchived:      o.IsArchived(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		Version:         o.Version(),
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items, err := decodeLineItems(dto.Items)
	if err != nil {
		return nil, err
	}

	lineItems := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		price, priceErr := kernel.NewMoney(item.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		lineItem, itemErr := order.NewLineItem(item.MenuItemID, item.Name, item.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, lineItem)
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:           id,
		CustomerID:   dto.CustomerID,
		RestaurantID: dto.RestaurantID,
		Status:       status,
		Items:        lineItems,
		Total:        total,
		Address:      dto.DeliveryAddress,
		IsDeleted:    dto.IsDeleted,
		IsArchived:   dto.IsArchived,
		CreatedAt:    dto.CreatedAt.UTC(),
		UpdatedAt:    dto.UpdatedAt.UTC(),
		Version:      dto.Version,
	})
}

func decodeLineItems(raw []byte) ([]LineItemDTO, error) {
	var items []LineItemDTO
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}
