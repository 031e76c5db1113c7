package order

import (
	"errors"
	"fmt"
	"strings"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem")

// LineItem is one menu item of an order.
type LineItem struct {
	menuItemID int64
	name       string
	quantity   int
	unitPrice  kernel.Money
	guard      guard.ConstructorGuard
}

// NewLineItem validates and builds a line item. Every invalid field is reported,
// joined with errors.Join; the name is trimmed.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("12.50")
//	item, err := order.NewLineItem(7, "Margherita", 2, price)
//	if err != nil {
//	    return err
//	}
//	item.Subtotal() // 25.00
func NewLineItem(menuItemID int64, name string, quantity int, unitPrice kernel.Money) (LineItem, error) {
	name = strings.TrimSpace(name)

	var errList []error
	if menuItemID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("menu item id",
			fmt.Errorf("%d is not greater than 0", menuItemID)))
	}
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("line item name"))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if err := unitPrice.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		menuItemID: menuItemID,
		name:       name,
		quantity:   quantity,
		unitPrice:  unitPrice,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line item was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

func (li LineItem) MenuItemID() int64 {
	return li.menuItemID
}

func (li LineItem) Name() string {
	return li.name
}

// Quantity is always at least 1.
func (li LineItem) Quantity() int {
	return li.quantity
}

func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Subtotal is the unit price multiplied by the quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.unitPrice.Decimal().Mul(decimal.NewFromInt(int64(li.quantity)))
}
