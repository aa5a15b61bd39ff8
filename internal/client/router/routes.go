package router

// Route names used by the CLI to pick a page.
const (
	RouteHome          = "Home"
	RouteLogin         = "Login"
	RouteRegister      = "Register"
	RouteProductList   = "ProductList"
	RouteProductDetail = "ProductDetail"
	RouteCart          = "Cart"
	RouteProfile       = "Profile"
	RouteOrders        = "Orders"
	RouteOrderDetail   = "OrderDetail"
	RouteCheckout      = "Checkout"
	RouteAPITest       = "ApiTest"
)

// DefaultRoutes is the shop's navigation table.
func DefaultRoutes() []Route {
	return []Route{
		{Path: "/", Name: RouteHome},
		{Path: "/login", Name: RouteLogin},
		{Path: "/register", Name: RouteRegister},
		{Path: "/products", Name: RouteProductList},
		{Path: "/products/:id", Name: RouteProductDetail},
		{Path: "/cart", Name: RouteCart, RequiresAuth: true},
		{Path: "/profile", Name: RouteProfile, RequiresAuth: true},
		{Path: "/orders", Name: RouteOrders, RequiresAuth: true},
		{Path: "/orders/:id", Name: RouteOrderDetail, RequiresAuth: true},
		{Path: "/checkout", Name: RouteCheckout, RequiresAuth: true},
		{Path: "/api-test", Name: RouteAPITest},
	}
}
