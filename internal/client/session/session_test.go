package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// ---- helpers ----

func setupRepo(t *testing.T) *metadata.SQLiteRepository {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return metadata.NewSQLiteRepository(db)
}

func storedToken(t *testing.T, repo metadata.Repository) []byte {
	t.Helper()
	v, err := repo.Get(context.Background(), common.TokenKey)
	require.NoError(t, err)
	return v
}

// ---- fakes ----

type fakeAuth struct {
	RegisterResp *models.AuthResponse
	RegisterErr  error
	LoginResp    *models.AuthResponse
	LoginErr     error

	LastRegister models.RegisterRequest
	LastLogin    models.Credentials
}

func (f *fakeAuth) Register(_ context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.LastRegister = req
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeAuth) Login(_ context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	f.LastLogin = creds
	return f.LoginResp, f.LoginErr
}

// brokenRepo fails every call.
type brokenRepo struct{ err error }

func (b brokenRepo) Get(context.Context, string) ([]byte, error) { return nil, b.err }
func (b brokenRepo) Set(context.Context, string, []byte) error { return b.err }
func (b brokenRepo) Delete(context.Context, string) error { return b.err }

func okResponse(token string) *models.AuthResponse {
	return &models.AuthResponse{Token: token, User: &models.User{ID: 1, Username: "alice", Email: "alice@example.org"}}
}

// ---- tests ----

func TestLogin_Success_SetsMemoryAndStorage(t *testing.T) {
	repo := setupRepo(t)
	fa := &fakeAuth{LoginResp: okResponse("t1")}
	s := New(fa, repo, nil)

	resp, err := s.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "t1", resp.Token)

	assert.True(t, s.IsLoggedIn())
	assert.Equal(t, "t1", s.Token())
	require.NotNil(t, s.User())
	assert.Equal(t, "alice", s.User().Username)
	assert.Equal(t, []byte("t1"), storedToken(t, repo))
	assert.Equal(t, models.Credentials{Username: "alice", Password: "pw"}, fa.LastLogin)
}

func TestLogin_MalformedResponse_NoMutation(t *testing.T) {
	tests := []struct {
		name string
		resp *models.AuthResponse
	}{
		{name: "missing token", resp: &models.AuthResponse{User: &models.User{ID: 1}}},
		{name: "missing user", resp: &models.AuthResponse{Token: "t1"}},
		{name: "empty body", resp: &models.AuthResponse{}},
		{name: "nil response", resp: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := setupRepo(t)
			s := New(&fakeAuth{LoginResp: tt.resp}, repo, nil)

			_, err := s.Login(context.Background(), models.Credentials{Username: "alice"})

			apiErr, ok := api.AsError(err)
			require.True(t, ok)
			assert.Equal(t, "Invalid response format", apiErr.Message)
			assert.False(t, s.IsLoggedIn())
			assert.Nil(t, s.User())
			assert.Nil(t, storedToken(t, repo))
		})
	}
}

func TestLogin_BackendError_KeepsMessageAndStatus(t *testing.T) {
	repo := setupRepo(t)
	backendErr := &api.Error{Message: "Invalid username or password", Status: http.StatusUnauthorized}
	s := New(&fakeAuth{LoginErr: backendErr}, repo, nil)

	_, err := s.Login(context.Background(), models.Credentials{Username: "alice", Password: "bad"})

	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid username or password", apiErr.Message)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.False(t, s.IsLoggedIn())
	assert.Nil(t, storedToken(t, repo))
}

func TestLogin_ErrorWithoutMessage_UsesFallback(t *testing.T) {
	s := New(&fakeAuth{LoginErr: &api.Error{Status: 500}}, setupRepo(t), nil)

	_, err := s.Login(context.Background(), models.Credentials{})

	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Login failed", apiErr.Message)
	assert.Equal(t, 500, apiErr.Status)
}

func TestLogin_StorageFailure_NoMutation(t *testing.T) {
	s := New(&fakeAuth{LoginResp: okResponse("t1")}, brokenRepo{err: errors.New("disk full")}, nil)

	_, err := s.Login(context.Background(), models.Credentials{Username: "alice"})

	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Contains(t, apiErr.Message, "disk full")
	assert.False(t, s.IsLoggedIn())
	assert.Nil(t, s.User())
}

func TestLogin_OverwritesPreviousSession(t *testing.T) {
	repo := setupRepo(t)
	fa := &fakeAuth{LoginResp: okResponse("t1")}
	s := New(fa, repo, nil)
	ctx := context.Background()

	_, err := s.Login(ctx, models.Credentials{Username: "alice"})
	require.NoError(t, err)

	fa.LoginResp = &models.AuthResponse{Token: "t2", User: &models.User{ID: 2, Username: "bob"}}
	_, err = s.Login(ctx, models.Credentials{Username: "bob"})
	require.NoError(t, err)

	assert.Equal(t, "t2", s.Token())
	assert.Equal(t, "bob", s.User().Username)
	assert.Equal(t, []byte("t2"), storedToken(t, repo))
}

func TestRegister_DoesNotLogIn(t *testing.T) {
	repo := setupRepo(t)
	fa := &fakeAuth{RegisterResp: okResponse("t-reg")}
	s := New(fa, repo, nil)

	req := models.RegisterRequest{Username: "alice", Password: "pw", Email: "alice@example.org"}
	resp, err := s.Register(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "t-reg", resp.Token)
	assert.Equal(t, req, fa.LastRegister)
	assert.False(t, s.IsLoggedIn())
	assert.Nil(t, storedToken(t, repo))
}

func TestRegister_Error(t *testing.T) {
	t.Run("backend message kept", func(t *testing.T) {
		s := New(&fakeAuth{RegisterErr: &api.Error{Message: "Username already exists", Status: 400}}, setupRepo(t), nil)
		_, err := s.Register(context.Background(), models.RegisterRequest{Username: "alice"})

		apiErr, ok := api.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "Username already exists", apiErr.Message)
		assert.Equal(t, 400, apiErr.Status)
	})

	t.Run("empty message gets fallback", func(t *testing.T) {
		s := New(&fakeAuth{RegisterErr: errors.New("")}, setupRepo(t), nil)
		_, err := s.Register(context.Background(), models.RegisterRequest{Username: "alice"})

		apiErr, ok := api.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "Registration failed", apiErr.Message)
	})
}

func TestLogout_ClearsMemoryAndStorage(t *testing.T) {
	repo := setupRepo(t)
	s := New(&fakeAuth{LoginResp: okResponse("t1")}, repo, nil)
	ctx := context.Background()

	_, err := s.Login(ctx, models.Credentials{Username: "alice"})
	require.NoError(t, err)

	s.Logout(ctx)

	assert.False(t, s.IsLoggedIn())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
	assert.Nil(t, storedToken(t, repo))

	// logging out twice is harmless
	s.Logout(ctx)
	assert.False(t, s.IsLoggedIn())
}

func TestLogout_StorageFailureStillClearsMemory(t *testing.T) {
	repo := setupRepo(t)
	s := New(&fakeAuth{LoginResp: okResponse("t1")}, repo, nil)
	_, err := s.Login(context.Background(), models.Credentials{})
	require.NoError(t, err)

	s.storage = brokenRepo{err: errors.New("locked")}
	s.Logout(context.Background())

	assert.False(t, s.IsLoggedIn())
}

func TestRestore(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	first := New(&fakeAuth{LoginResp: okResponse("t1")}, repo, nil)
	_, err := first.Login(ctx, models.Credentials{})
	require.NoError(t, err)

	// a fresh store over the same storage is the "page reload" case
	second := New(&fakeAuth{}, repo, nil)
	assert.False(t, second.IsLoggedIn())
	require.NoError(t, second.Restore(ctx))
	assert.True(t, second.IsLoggedIn())
	assert.Equal(t, "t1", second.Token())
	assert.Nil(t, second.User())

	first.Logout(ctx)
	require.NoError(t, second.Restore(ctx))
	assert.False(t, second.IsLoggedIn())
}

func TestRestore_StorageError(t *testing.T) {
	s := New(&fakeAuth{}, brokenRepo{err: errors.New("corrupt")}, nil)
	err := s.Restore(context.Background())
	require.ErrorContains(t, err, "restore session")
	assert.False(t, s.IsLoggedIn())
}

func TestUser_ReturnsCopy(t *testing.T) {
	s := New(&fakeAuth{LoginResp: okResponse("t1")}, setupRepo(t), nil)
	_, err := s.Login(context.Background(), models.Credentials{})
	require.NoError(t, err)

	u := s.User()
	u.Username = "mallory"
	assert.Equal(t, "alice", s.User().Username)
}

func TestStore_ConcurrentReadsDuringLogin(t *testing.T) {
	s := New(&fakeAuth{LoginResp: okResponse("t1")}, setupRepo(t), nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.IsLoggedIn()
				_ = s.User()
			}
		}()
	}
	_, err := s.Login(ctx, models.Credentials{})
	require.NoError(t, err)
	s.Logout(ctx)
	wg.Wait()
}

// The HTTP client reads its bearer token from the store, so login and
// logout are visible on the very next request.
func TestStore_DrivesClientAuthorization(t *testing.T) {
	var mu sync.Mutex
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("Authorization"))
		mu.Unlock()
		if r.URL.Path == "/api/auth/login" {
			_, _ = w.Write([]byte(`{"token":"t1","user":{"id":1,"username":"alice"}}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	s := New(nil, setupRepo(t), nil)
	client := api.New(srv.URL+"/api", s)
	s.SetAuthenticator(client)
	ctx := context.Background()

	_, err := client.Cart(ctx)
	require.NoError(t, err)
	_, err = s.Login(ctx, models.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	_, err = client.Cart(ctx)
	require.NoError(t, err)
	s.Logout(ctx)
	_, err = client.Cart(ctx)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"", "", "Bearer t1", ""}, seen)
}
