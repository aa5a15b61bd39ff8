package cli

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/router"
)

const defaultPaymentMethod = "CREDIT_CARD"

// Navigate sends target through the router guard and shows the resulting
// page. A refused navigation shows the login page instead and remembers
// target for after the login.
func (a *App) Navigate(ctx context.Context, target string) error {
	d := a.router.Resolve(target)
	if !d.Allowed() {
		a.logger.Debug(ctx, "navigation redirected", "path", d.Path, "redirect", d.Redirect)
		fmt.Fprintf(a.out, "%s requires login.\n", d.Path)
		a.pending = d.Path
		d = a.router.Resolve(d.Redirect)
	} else {
		a.pending = ""
	}

	a.current = d.Path
	if d.Route == nil {
		fmt.Fprintf(a.out, "Page not found: %s\n", d.Path)
		return nil
	}
	a.logger.Debug(ctx, "navigated", "path", d.Path, "route", d.Route.Name)

	switch d.Route.Name {
	case router.RouteHome:
		return a.homePage(ctx)
	case router.RouteLogin:
		return a.Login(ctx)
	case router.RouteRegister:
		return a.Register(ctx)
	case router.RouteProductList:
		return a.productListPage(ctx, d.Query)
	case router.RouteProductDetail:
		return a.productDetailPage(ctx, d.Params["id"])
	case router.RouteCart:
		return a.cartPage(ctx)
	case router.RouteProfile:
		return a.profilePage(ctx)
	case router.RouteOrders:
		return a.ordersPage(ctx)
	case router.RouteOrderDetail:
		return a.orderDetailPage(ctx, d.Params["id"])
	case router.RouteCheckout:
		return a.checkoutPage(ctx)
	case router.RouteAPITest:
		return a.apiTestPage(ctx)
	}
	fmt.Fprintf(a.out, "No page for route %s\n", d.Route.Name)
	return nil
}

func (a *App) printError(err error) {
	msg := api.Normalize(err, "").Message
	fmt.Fprintln(a.out, a.styles.err.Render("Error: "+msg))
	if apiErr, ok := api.AsError(err); ok && apiErr.Unauthorized() {
		fmt.Fprintln(a.out, a.styles.muted.Render("The server rejected your session. Try 'logout' and 'login' again."))
	}
}

func (a *App) title(s string) {
	fmt.Fprintln(a.out, a.styles.title.Render(s))
}

func (a *App) hint(format string, args ...any) {
	fmt.Fprintln(a.out, a.styles.muted.Render(fmt.Sprintf(format, args...)))
}

// link builds the path of a named route with an id parameter.
func (a *App) link(name string, id int64) string {
	u, err := a.router.URL(name, "id", strconv.FormatInt(id, 10))
	if err != nil {
		a.logger.Warn(context.Background(), "cannot build link", "route", name, "error", err)
		return ""
	}
	return u
}

// parseID reads a numeric id typed by the user. kind names it in the
// message, e.g. "product".
func (a *App) parseID(kind, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid %s id: %s\n", kind, raw)
		return 0, err
	}
	return id, nil
}

func (a *App) homePage(_ context.Context) error {
	a.title("Storefront")
	rows := make([][]string, 0)
	for _, r := range a.router.Routes() {
		if r.Name == router.RouteProductDetail || r.Name == router.RouteOrderDetail {
			continue
		}
		access := ""
		if r.RequiresAuth {
			access = "login required"
		}
		rows = append(rows, []string{r.Path, r.Name, access})
	}
	fmt.Fprint(a.out, a.styles.table([]string{"Path", "Page", ""}, rows))
	return nil
}

// productListPage lists the catalogue. The query narrows it:
// ?category=<name> filters, ?sort=<field>[&order=desc] sorts.
func (a *App) productListPage(ctx context.Context, q url.Values) error {
	var (
		products []models.Product
		err      error
	)
	switch category, sortBy := q.Get("category"), q.Get("sort"); {
	case category != "":
		a.title("Products in " + category)
		products, err = a.shop.ProductsByCategory(ctx, category)
	case sortBy != "":
		a.title("Products by " + sortBy)
		products, err = a.shop.SortedProducts(ctx, sortBy, q.Get("order") != "desc")
	default:
		a.title("Products")
		products, err = a.shop.Products(ctx)
	}
	if err != nil {
		a.printError(err)
		return err
	}
	a.printProducts(products)
	if len(products) > 0 {
		a.hint("Open one with 'go %s'.", a.link(router.RouteProductDetail, products[0].ID))
	}
	return nil
}

func (a *App) printProducts(products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products found.")
		return
	}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10), p.Name, p.Category, p.Price.String(), strconv.Itoa(p.Stock),
		})
	}
	fmt.Fprint(a.out, a.styles.table([]string{"ID", "Name", "Category", "Price", "Stock"}, rows))
}

// productDetailPage loads the product and its reviews together.
func (a *App) productDetailPage(ctx context.Context, rawID string) error {
	id, err := a.parseID("product", rawID)
	if err != nil {
		return err
	}

	var (
		p       *models.Product
		reviews []models.Review
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p, err = a.shop.Product(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = a.shop.Reviews(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		a.printError(err)
		return err
	}

	a.title(p.Name)
	fmt.Fprintf(a.out, "Price: %s\n", p.Price)
	fmt.Fprintf(a.out, "Stock: %d\n", p.Stock)
	if p.Category != "" {
		fmt.Fprintf(a.out, "Category: %s\n", p.Category)
	}
	if p.Brand != "" {
		fmt.Fprintf(a.out, "Brand: %s\n", p.Brand)
	}
	if p.ReviewCount > 0 {
		fmt.Fprintf(a.out, "Rating: %.1f (%d reviews)\n", p.AverageRating, p.ReviewCount)
	}
	if p.Description != "" {
		fmt.Fprintln(a.out, p.Description)
	}
	a.printReviews(reviews)
	a.hint("Type 'add %d' to put it in your cart or 'review %d <1-5> [comment]' to rate it.", p.ID, p.ID)
	return nil
}

func (a *App) cartPage(ctx context.Context) error {
	a.title("Cart")
	items, err := a.shop.Cart(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	if err := a.printCart(items); err != nil {
		return err
	}
	if len(items) > 0 {
		a.hint("Change it with 'qty <item> <n>', 'remove <item>' or 'clear-cart'.")
	}
	return nil
}

func (a *App) printCart(items []models.CartItem) error {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return nil
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		name, price := "?", ""
		if it.Product != nil {
			name, price = it.Product.Name, it.Product.Price.String()
		}
		rows = append(rows, []string{strconv.FormatInt(it.ID, 10), name, strconv.Itoa(it.Quantity), price})
	}
	fmt.Fprint(a.out, a.styles.table([]string{"Item", "Product", "Qty", "Price"}, rows))

	total, err := cartTotal(items)
	if err != nil {
		a.printError(err)
		return err
	}
	fmt.Fprintf(a.out, "Total: %s\n", total)
	return nil
}

func (a *App) profilePage(ctx context.Context) error {
	a.title("Profile")
	if err := a.WhoAmI(ctx); err != nil {
		return err
	}

	addresses, err := a.shop.Addresses(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	if len(addresses) == 0 {
		fmt.Fprintln(a.out, "No saved addresses.")
		return nil
	}
	fmt.Fprintln(a.out, "Addresses:")
	for _, addr := range addresses {
		mark := ""
		if addr.IsDefault {
			mark = " (default)"
		}
		fmt.Fprintf(a.out, "  %s%s\n", addr, mark)
	}
	return nil
}

func (a *App) ordersPage(ctx context.Context) error {
	a.title("Orders")
	orders, err := a.shop.Orders(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders yet.")
		return nil
	}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			strconv.FormatInt(o.ID, 10), o.OrderDate, o.Status, o.TotalAmount.String(), strconv.Itoa(len(o.OrderItems)),
		})
	}
	fmt.Fprint(a.out, a.styles.table([]string{"ID", "Date", "Status", "Total", "Items"}, rows))
	a.hint("Open one with 'go %s'.", a.link(router.RouteOrderDetail, orders[0].ID))
	return nil
}

// checkoutPage loads the cart and saved addresses together, then asks for a
// shipping address and payment method and places the order.
func (a *App) checkoutPage(ctx context.Context) error {
	a.title("Checkout")

	var (
		items     []models.CartItem
		addresses []models.Address
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = a.shop.Cart(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		addresses, err = a.shop.Addresses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		a.printError(err)
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return nil
	}
	if err := a.printCart(items); err != nil {
		return err
	}

	for i, addr := range addresses {
		fmt.Fprintf(a.out, "  [%d] %s\n", i+1, addr)
	}
	choice, err := getSimpleText(a.reader, "Shipping address (number from the list or a full address, empty to cancel)", a.out)
	if err != nil {
		return err
	}
	if choice == "" {
		fmt.Fprintln(a.out, "Checkout cancelled.")
		return nil
	}
	shipping := choice
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(addresses) {
		shipping = addresses[n-1].String()
	}

	payment, err := getSimpleText(a.reader, "Payment method (default "+defaultPaymentMethod+")", a.out)
	if err != nil {
		return err
	}
	if payment == "" {
		payment = defaultPaymentMethod
	}

	order, err := a.shop.CreateOrder(ctx, models.OrderRequest{ShippingAddress: shipping, PaymentMethod: payment})
	if err != nil {
		a.printError(err)
		return err
	}
	fmt.Fprintf(a.out, "Order %d placed: %s, total %s\n", order.ID, order.Status, order.TotalAmount)
	a.hint("Track it with 'go %s'.", a.link(router.RouteOrderDetail, order.ID))
	return nil
}

func (a *App) apiTestPage(ctx context.Context) error {
	a.title("API test")
	if err := a.shop.Ping(ctx); err != nil {
		a.printError(err)
		return err
	}
	base := ""
	if a.config != nil {
		base = " at " + a.config.APIBaseURL
	}
	fmt.Fprintf(a.out, "Backend reachable%s.\n", base)
	return nil
}
