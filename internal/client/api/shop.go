package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	if err := c.get(ctx, "/products/"+strconv.FormatInt(id, 10), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/products/category/"+url.PathEscape(category), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) SearchProducts(ctx context.Context, keyword string) ([]models.Product, error) {
	q := url.Values{"keyword": {keyword}}
	var products []models.Product
	if err := c.get(ctx, "/products/search?"+q.Encode(), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SortedProducts lists the catalogue ordered by sortBy ("price" or "name").
func (c *Client) SortedProducts(ctx context.Context, sortBy string, ascending bool) ([]models.Product, error) {
	q := url.Values{"sortBy": {sortBy}, "ascending": {strconv.FormatBool(ascending)}}
	var products []models.Product
	if err := c.get(ctx, "/products/sort?"+q.Encode(), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Cart(ctx context.Context) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := c.get(ctx, "/cart", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AddToCart(ctx context.Context, req models.CartItemRequest) (*models.CartItem, error) {
	var item models.CartItem
	if err := c.post(ctx, "/cart/add", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	body := models.CartItemRequest{Quantity: quantity}
	return c.Do(ctx, http.MethodPut, "/cart/"+strconv.FormatInt(itemID, 10), body, nil)
}

func (c *Client) RemoveFromCart(ctx context.Context, itemID int64) error {
	return c.Do(ctx, http.MethodDelete, "/cart/"+strconv.FormatInt(itemID, 10), nil, nil)
}

func (c *Client) ClearCart(ctx context.Context) error {
	return c.Do(ctx, http.MethodDelete, "/cart", nil, nil)
}

func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.get(ctx, "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) Order(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	if err := c.get(ctx, "/orders/"+strconv.FormatInt(id, 10), &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrder turns the current cart into an order.
func (c *Client) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	var o models.Order
	if err := c.post(ctx, "/orders", req, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) CancelOrder(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	if err := c.post(ctx, "/orders/"+strconv.FormatInt(id, 10)+"/cancel", nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) ConfirmOrder(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	if err := c.post(ctx, "/orders/"+strconv.FormatInt(id, 10)+"/confirm", nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) OrderSummary(ctx context.Context, id int64) (*models.OrderSummary, error) {
	var s models.OrderSummary
	if err := c.get(ctx, "/orders/"+strconv.FormatInt(id, 10)+"/summary", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Reviews lists a product's reviews. The endpoint is public.
func (c *Client) Reviews(ctx context.Context, productID int64) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.get(ctx, "/reviews/products/"+strconv.FormatInt(productID, 10), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) AddReview(ctx context.Context, productID int64, req models.ReviewRequest) (*models.Review, error) {
	var r models.Review
	if err := c.post(ctx, "/reviews/products/"+strconv.FormatInt(productID, 10), req, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) Addresses(ctx context.Context) ([]models.Address, error) {
	var addrs []models.Address
	if err := c.get(ctx, "/profile/addresses", &addrs); err != nil {
		return nil, err
	}
	return addrs, nil
}

// Ping checks that the backend answers on a public endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.get(ctx, "/products", nil)
}
