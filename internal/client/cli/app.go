package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/router"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// Session is the part of session.Store the pages use.
type Session interface {
	IsLoggedIn() bool
	Token() string
	User() *models.User
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Logout(ctx context.Context)
}

// Shop is the part of api.Client the pages use.
type Shop interface {
	Products(ctx context.Context) ([]models.Product, error)
	Product(ctx context.Context, id int64) (*models.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]models.Product, error)
	SearchProducts(ctx context.Context, keyword string) ([]models.Product, error)
	SortedProducts(ctx context.Context, sortBy string, ascending bool) ([]models.Product, error)
	Reviews(ctx context.Context, productID int64) ([]models.Review, error)
	AddReview(ctx context.Context, productID int64, req models.ReviewRequest) (*models.Review, error)

	Cart(ctx context.Context) ([]models.CartItem, error)
	AddToCart(ctx context.Context, req models.CartItemRequest) (*models.CartItem, error)
	UpdateCartItem(ctx context.Context, itemID int64, quantity int) error
	RemoveFromCart(ctx context.Context, itemID int64) error
	ClearCart(ctx context.Context) error

	Orders(ctx context.Context) ([]models.Order, error)
	Order(ctx context.Context, id int64) (*models.Order, error)
	OrderSummary(ctx context.Context, id int64) (*models.OrderSummary, error)
	CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error)
	CancelOrder(ctx context.Context, id int64) (*models.Order, error)
	ConfirmOrder(ctx context.Context, id int64) (*models.Order, error)

	Addresses(ctx context.Context) ([]models.Address, error)
	Ping(ctx context.Context) error
}

// Navigator resolves a path to a guarded navigation decision and builds
// paths of named routes.
type Navigator interface {
	Resolve(target string) router.Decision
	Routes() []router.Route
	URL(name string, pairs ...string) (string, error)
}

type App struct {
	config  *config.Config
	session Session
	shop    Shop
	router  Navigator
	logger  logging.Logger

	reader *bufio.Reader
	out    io.Writer
	styles styles

	// current is the last page shown; pending is where to go after a
	// login that a guard redirect asked for.
	current string
	pending string
}

func NewApp(c *config.Config, s Session, shop Shop, nav Navigator, logger logging.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	return &App{
		config:  c,
		session: s,
		shop:    shop,
		router:  nav,
		logger:  logger.With("component", "cli"),
		reader:  bufio.NewReader(in),
		out:     out,
		styles:  newStyles(out),
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Username + " "
	} else if a.isLoggedIn() {
		s = "signed-in "
	}
	if a.current != "" {
		s += a.current
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run shows the home page and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to the storefront CLI (type 'help' for commands)")
	if err := a.Navigate(ctx, "/"); err != nil {
		return err
	}
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}
