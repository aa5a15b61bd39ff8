package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Navigate(ctx context.Context, target string) error {
	f.calls = append(f.calls, "go "+target)
	return nil
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Search(ctx context.Context, keyword string) error {
	f.calls = append(f.calls, "search "+keyword)
	return nil
}
func (f *fakeExec) AddToCart(ctx context.Context, productID, quantity string) error {
	f.calls = append(f.calls, "add "+productID+" "+quantity)
	return nil
}

func (f *fakeExec) UpdateCartItem(ctx context.Context, itemID, quantity string) error {
	f.calls = append(f.calls, "qty "+itemID+" "+quantity)
	return nil
}
func (f *fakeExec) RemoveFromCart(ctx context.Context, itemID string) error {
	f.calls = append(f.calls, "remove "+itemID)
	return nil
}
func (f *fakeExec) ClearCart(ctx context.Context) error {
	f.calls = append(f.calls, "clear-cart")
	return nil
}
func (f *fakeExec) OrderSummary(ctx context.Context, orderID string) error {
	f.calls = append(f.calls, "summary "+orderID)
	return nil
}
func (f *fakeExec) CancelOrder(ctx context.Context, orderID string) error {
	f.calls = append(f.calls, "cancel "+orderID)
	return nil
}
func (f *fakeExec) ConfirmOrder(ctx context.Context, orderID string) error {
	f.calls = append(f.calls, "confirm "+orderID)
	return nil
}
func (f *fakeExec) Review(ctx context.Context, productID, rating, comment string) error {
	f.calls = append(f.calls, "review "+productID+" "+rating+" "+comment)
	return nil
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"go /products/42",
		"login",
		"search red mug",
		"add 7",
		"add 7 3",
		"qty 5 2",
		"remove 5",
		"clear-cart",
		"summary 9",
		"confirm 9",
		"cancel 9",
		"review 7 4 solid and heavy",
		"whoami",
		"logout",
		"register",
		"",
		"exit",
		"go /never",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(input))

	assert.Equal(t, []string{
		"go /products/42",
		"login",
		"search red mug",
		"add 7 ",
		"add 7 3",
		"qty 5 2",
		"remove 5",
		"clear-cart",
		"summary 9",
		"confirm 9",
		"cancel 9",
		"review 7 4 solid and heavy",
		"whoami",
		"logout",
		"register",
	}, exec.calls)
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	lines := silencePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("go\nsearch\nadd\nqty 5\nremove\ncancel\nreview 7\nfoobar\nquit\n")))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Usage: go <path>")
	assert.Contains(t, *lines, "Usage: search <keyword>")
	assert.Contains(t, *lines, "Usage: add <id> [qty]")
	assert.Contains(t, *lines, "Usage: qty <item> <n>")
	assert.Contains(t, *lines, "Usage: remove <item>")
	assert.Contains(t, *lines, "Usage: cancel <order>")
	assert.Contains(t, *lines, "Usage: review <id> <1-5> [comment]")
	assert.Contains(t, *lines, "Unknown command: foobar")
	assert.Contains(t, *lines, "Bye!")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("go /cart")))

	assert.Equal(t, []string{"go /cart"}, exec.calls)
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := silencePrintln(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, bufio.NewReader(strings.NewReader("help\n")))
	runREPL(context.Background(), &fakeExec{loggedIn: true}, func() string { return "" }, bufio.NewReader(strings.NewReader("help\n")))

	joined := strings.Join(*lines, "\n")
	assert.Contains(t, joined, "register, login")
	assert.Contains(t, joined, "whoami, logout")
}
