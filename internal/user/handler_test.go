package user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cinefeed/cinefeed/internal/token"
)

func testHandler(t *testing.T) (*Handler, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	svc := NewUserService(nil, repo, BcryptHasher{Cost: 4})
	tokens := token.NewManager("test-secret", time.Hour)
	return NewHandler(svc, tokens, zap.NewNop().Sugar()), repo
}

func doJSON(h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestRegister_TwiceYieldsConflict(t *testing.T) {
	t.Parallel()

	h, _ := testHandler(t)
	body := `{"email":"a@b.com","username":"a","password":"p","country":"X"}`

	rec := doJSON(h.Register, http.MethodPost, "/users/register", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "User created")

	rec = doJSON(h.Register, http.MethodPost, "/users/register", body)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "User already has an account")
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()

	h, repo := testHandler(t)
	rec := doJSON(h.Register, http.MethodPost, "/users/register", `{"email":"a@b.com","username":"a"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Missing parameters")
	require.Equal(t, 0, repo.createCalls)
}

func TestLogin_UniformNotFoundShape(t *testing.T) {
	t.Parallel()

	h, _ := testHandler(t)
	rec := doJSON(h.Register, http.MethodPost, "/users/register",
		`{"email":"a@b.com","username":"a","password":"p","country":"X"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	unknown := doJSON(h.Login, http.MethodPost, "/users/login", `{"email":"x@b.com","password":"p"}`)
	wrongPw := doJSON(h.Login, http.MethodPost, "/users/login", `{"email":"a@b.com","password":"bad"}`)

	require.Equal(t, http.StatusNotFound, unknown.Code)
	require.Equal(t, http.StatusNotFound, wrongPw.Code)
	require.JSONEq(t, unknown.Body.String(), wrongPw.Body.String())
}

func TestLogin_ReturnsTokenAndUsername(t *testing.T) {
	t.Parallel()

	h, _ := testHandler(t)
	doJSON(h.Register, http.MethodPost, "/users/register",
		`{"email":"a@b.com","username":"alice","password":"p","country":"X"}`)

	rec := doJSON(h.Login, http.MethodPost, "/users/login", `{"email":"a@b.com","password":"p"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"token"`)
	require.Contains(t, rec.Body.String(), `"username":"alice"`)
}

func TestEditPassword_RequiresClaims(t *testing.T) {
	t.Parallel()

	h, _ := testHandler(t)
	rec := doJSON(h.EditPassword, http.MethodPut, "/profile",
		`{"oldPassword":"p","newPassword":"q"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEditPassword_SameOldAndNew(t *testing.T) {
	t.Parallel()

	h, _ := testHandler(t)
	doJSON(h.Register, http.MethodPost, "/users/register",
		`{"email":"a@b.com","username":"a","password":"p","country":"X"}`)

	req := httptest.NewRequest(http.MethodPut, "/profile",
		strings.NewReader(`{"oldPassword":"p","newPassword":"p"}`))
	req = req.WithContext(token.NewContext(context.Background(), &token.Claims{UserID: "1", Email: "a@b.com"}))
	rec := httptest.NewRecorder()
	h.EditPassword(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "New password cannot be equal to old password")
}
