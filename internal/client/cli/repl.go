package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Navigate(ctx context.Context, target string) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Search(ctx context.Context, keyword string) error
	AddToCart(ctx context.Context, productID string, quantity string) error
	UpdateCartItem(ctx context.Context, itemID string, quantity string) error
	RemoveFromCart(ctx context.Context, itemID string) error
	ClearCart(ctx context.Context) error
	OrderSummary(ctx context.Context, orderID string) error
	CancelOrder(ctx context.Context, orderID string) error
	ConfirmOrder(ctx context.Context, orderID string) error
	Review(ctx context.Context, productID, rating, comment string) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
//
//	Always:
//	  - help                  show available commands
//	  - go <path>             navigate, e.g. "go /products/42"
//	  - search <keyword>      search the catalogue
//	  - exit | quit           leave the program
//
//	Not logged in:
//	  - register | login
//
//	Logged in:
//	  - add <id> [qty]        put a product in the cart
//	  - qty <item> <n>        change a cart line's quantity
//	  - remove <item>         drop a cart line
//	  - clear-cart            empty the cart
//	  - summary <order>       show an order's breakdown
//	  - confirm <order>       confirm an order
//	  - cancel <order>        cancel an order
//	  - review <id> <1-5> [comment]
//	  - whoami | logout
//
// Handler errors are reported by the handlers themselves and ignored here.
// The loop exits on EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: go <path>, search <keyword>, add <id> [qty], qty <item> <n>, remove <item>, clear-cart, " +
					"summary <order>, confirm <order>, cancel <order>, review <id> <1-5> [comment], whoami, logout, exit")
			} else {
				printlnFn("Available commands: go <path>, search <keyword>, register, login, exit")
			}

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <path>")
				continue
			}
			_ = a.Navigate(ctx, args[0])

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <keyword>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <id> [qty]")
				continue
			}
			qty := ""
			if len(args) > 1 {
				qty = args[1]
			}
			_ = a.AddToCart(ctx, args[0], qty)

		case "qty":
			if len(args) < 2 {
				printlnFn("Usage: qty <item> <n>")
				continue
			}
			_ = a.UpdateCartItem(ctx, args[0], args[1])

		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <item>")
				continue
			}
			_ = a.RemoveFromCart(ctx, args[0])

		case "clear-cart":
			_ = a.ClearCart(ctx)

		case "summary", "confirm", "cancel":
			if len(args) == 0 {
				printlnFn("Usage: " + cmd + " <order>")
				continue
			}
			switch cmd {
			case "summary":
				_ = a.OrderSummary(ctx, args[0])
			case "confirm":
				_ = a.ConfirmOrder(ctx, args[0])
			default:
				_ = a.CancelOrder(ctx, args[0])
			}

		case "review":
			if len(args) < 2 {
				printlnFn("Usage: review <id> <1-5> [comment]")
				continue
			}
			_ = a.Review(ctx, args[0], args[1], strings.Join(args[2:], " "))

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
