package cli

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// Search lists products whose name or description matches keyword.
func (a *App) Search(ctx context.Context, keyword string) error {
	a.title("Search: " + keyword)
	products, err := a.shop.SearchProducts(ctx, keyword)
	if err != nil {
		a.printError(err)
		return err
	}
	a.printProducts(products)
	return nil
}

// AddToCart puts quantity (default 1) of a product in the cart. Logged-out
// users are sent through the cart route so the guard handles them.
func (a *App) AddToCart(ctx context.Context, productID string, quantity string) error {
	if !a.isLoggedIn() {
		return a.Navigate(ctx, "/cart")
	}

	id, err := a.parseID("product", productID)
	if err != nil {
		return err
	}
	qty := 1
	if quantity != "" {
		if qty, err = a.parseQuantity(quantity); err != nil {
			return err
		}
	}

	item, err := a.shop.AddToCart(ctx, models.CartItemRequest{ProductID: id, Quantity: qty})
	if err != nil {
		a.printError(err)
		return err
	}
	name := strconv.FormatInt(id, 10)
	if item != nil && item.Product != nil {
		name = item.Product.Name
	}
	fmt.Fprintf(a.out, "Added %d x %s to your cart.\n", qty, name)
	return nil
}

// UpdateCartItem sets the quantity of a cart line.
func (a *App) UpdateCartItem(ctx context.Context, itemID string, quantity string) error {
	if !a.isLoggedIn() {
		return a.Navigate(ctx, "/cart")
	}
	id, err := a.parseID("cart item", itemID)
	if err != nil {
		return err
	}
	qty, err := a.parseQuantity(quantity)
	if err != nil {
		return err
	}
	if err := a.shop.UpdateCartItem(ctx, id, qty); err != nil {
		a.printError(err)
		return err
	}
	fmt.Fprintf(a.out, "Item %d now has quantity %d.\n", id, qty)
	return nil
}

func (a *App) RemoveFromCart(ctx context.Context, itemID string) error {
	if !a.isLoggedIn() {
		return a.Navigate(ctx, "/cart")
	}
	id, err := a.parseID("cart item", itemID)
	if err != nil {
		return err
	}
	if err := a.shop.RemoveFromCart(ctx, id); err != nil {
		a.printError(err)
		return err
	}
	fmt.Fprintf(a.out, "Removed item %d from your cart.\n", id)
	return nil
}

func (a *App) ClearCart(ctx context.Context) error {
	if !a.isLoggedIn() {
		return a.Navigate(ctx, "/cart")
	}
	if err := a.shop.ClearCart(ctx); err != nil {
		a.printError(err)
		return err
	}
	fmt.Fprintln(a.out, "Your cart is empty.")
	return nil
}

func (a *App) parseQuantity(raw string) (int, error) {
	qty, err := strconv.Atoi(raw)
	if err != nil || qty < 1 {
		fmt.Fprintf(a.out, "Invalid quantity: %s\n", raw)
		return 0, ErrInvalidQuantity
	}
	return qty, nil
}

// cartTotal sums price*quantity exactly and formats it with two decimals.
func cartTotal(items []models.CartItem) (string, error) {
	total := new(big.Rat)
	for _, it := range items {
		if it.Product == nil || it.Product.Price == "" {
			continue
		}
		price, ok := new(big.Rat).SetString(it.Product.Price.String())
		if !ok {
			return "", fmt.Errorf("invalid price %q for product %d", it.Product.Price, it.Product.ID)
		}
		total.Add(total, price.Mul(price, big.NewRat(int64(it.Quantity), 1)))
	}
	return total.FloatString(2), nil
}
