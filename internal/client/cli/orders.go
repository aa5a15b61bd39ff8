package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/router"
)

func (a *App) orderDetailPage(ctx context.Context, rawID string) error {
	id, err := a.parseID("order", rawID)
	if err != nil {
		return err
	}
	o, err := a.shop.Order(ctx, id)
	if err != nil {
		a.printError(err)
		return err
	}

	a.title(fmt.Sprintf("Order %d", o.ID))
	fmt.Fprintf(a.out, "Status: %s\n", o.Status)
	if o.OrderDate != "" {
		fmt.Fprintf(a.out, "Date: %s\n", o.OrderDate)
	}
	if o.ShippingAddress != "" {
		fmt.Fprintf(a.out, "Ship to: %s\n", o.ShippingAddress)
	}
	rows := make([][]string, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		name := "?"
		if it.Product != nil {
			name = it.Product.Name
		}
		rows = append(rows, []string{name, strconv.Itoa(it.Quantity), it.Price.String()})
	}
	fmt.Fprint(a.out, a.styles.table([]string{"Product", "Qty", "Price"}, rows))
	fmt.Fprintf(a.out, "Total: %s\n", o.TotalAmount)
	a.hint("Type 'summary %d', 'confirm %d' or 'cancel %d'.", o.ID, o.ID, o.ID)
	return nil
}

// OrderSummary prints the backend's per-line breakdown of an order.
func (a *App) OrderSummary(ctx context.Context, orderID string) error {
	return a.withOrder(ctx, orderID, func(id int64) error {
		return a.printOrderSummary(ctx, id)
	})
}

func (a *App) printOrderSummary(ctx context.Context, id int64) error {
	s, err := a.shop.OrderSummary(ctx, id)
	if err != nil {
		a.printError(err)
		return err
	}

	a.title(fmt.Sprintf("Order %d summary", s.OrderID))
	fmt.Fprintf(a.out, "Status: %s\n", s.Status)
	if s.ShippingAddress != "" {
		fmt.Fprintf(a.out, "Ship to: %s\n", s.ShippingAddress)
	}
	rows := make([][]string, 0, len(s.Items))
	for _, it := range s.Items {
		rows = append(rows, []string{it.ProductName, strconv.Itoa(it.Quantity), it.Price.String(), it.Subtotal.String()})
	}
	fmt.Fprint(a.out, a.styles.table([]string{"Product", "Qty", "Price", "Subtotal"}, rows))
	fmt.Fprintf(a.out, "Total: %s\n", s.TotalAmount)
	return nil
}

func (a *App) CancelOrder(ctx context.Context, orderID string) error {
	return a.changeOrder(ctx, orderID, a.shop.CancelOrder)
}

func (a *App) ConfirmOrder(ctx context.Context, orderID string) error {
	return a.changeOrder(ctx, orderID, a.shop.ConfirmOrder)
}

func (a *App) changeOrder(ctx context.Context, orderID string, change func(context.Context, int64) (*models.Order, error)) error {
	return a.withOrder(ctx, orderID, func(id int64) error {
		o, err := change(ctx, id)
		if err != nil {
			a.printError(err)
			return err
		}
		fmt.Fprintf(a.out, "Order %d is now %s.\n", o.ID, o.Status)
		return nil
	})
}

// withOrder parses raw and runs fn on the order id. A logged-out user is
// sent to the order's page instead so the guard handles them.
func (a *App) withOrder(ctx context.Context, raw string, fn func(id int64) error) error {
	id, err := a.parseID("order", raw)
	if err != nil {
		return err
	}
	if !a.isLoggedIn() {
		return a.Navigate(ctx, a.link(router.RouteOrderDetail, id))
	}
	return fn(id)
}
