package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	h "eventadmin/internal/delivery/http/helpers"
	"eventadmin/internal/delivery/http/middleware"
	"eventadmin/internal/domain"
)

func newAuthController(t *testing.T, svc domain.AuthService) *AuthController {
	t.Helper()
	return NewAuthController(testLogger(), svc, testRenderer(t), time.Hour, false)
}

func TestAuthController_LoginForm(t *testing.T) {
	t.Run("renders the form", func(t *testing.T) {
		c := newAuthController(t, &fakeAuthService{})

		rec := httptest.NewRecorder()
		c.LoginForm(rec, httptest.NewRequest(http.MethodGet, "/users/login", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `name="password"`)
	})

	t.Run("surfaces the pending flash message", func(t *testing.T) {
		c := newAuthController(t, &fakeAuthService{})

		setter := httptest.NewRecorder()
		h.SetFlash(setter, "Invalid username or password.")
		req := httptest.NewRequest(http.MethodGet, "/users/login", nil)
		req.AddCookie(setter.Result().Cookies()[0])

		rec := httptest.NewRecorder()
		c.LoginForm(rec, req)

		assert.Contains(t, rec.Body.String(), "Invalid username or password.")
	})

	t.Run("logged-in browser is redirected", func(t *testing.T) {
		c := newAuthController(t, &fakeAuthService{})

		req := httptest.NewRequest(http.MethodGet, "/users/login", nil)
		ctx := middleware.SetPrincipal(req.Context(), &domain.Principal{UserID: "u1", Username: "alice"})
		rec := httptest.NewRecorder()
		c.LoginForm(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/users", rec.Header().Get("Location"))
	})
}

func TestAuthController_Login(t *testing.T) {
	form := url.Values{"username": {"alice"}, "password": {"secret"}}

	t.Run("success sets the session cookie and lands on the list", func(t *testing.T) {
		c := newAuthController(t, &fakeAuthService{loginToken: "signed-token"})

		rec := httptest.NewRecorder()
		c.Login(rec, postForm("/users/login", form))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/users", rec.Header().Get("Location"))
		var session *http.Cookie
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == h.SessionCookieName {
				session = cookie
			}
		}
		require.NotNil(t, session)
		assert.Equal(t, "signed-token", session.Value)
		assert.True(t, session.HttpOnly)
	})

	t.Run("bad credentials flash and return to the form", func(t *testing.T) {
		c := newAuthController(t, &fakeAuthService{loginErr: domain.ErrInvalidCredentials})

		rec := httptest.NewRecorder()
		c.Login(rec, postForm("/users/login", form))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/users/login", rec.Header().Get("Location"))
		require.NotEmpty(t, rec.Result().Cookies(), "flash cookie should be set")
		for _, cookie := range rec.Result().Cookies() {
			assert.NotEqual(t, h.SessionCookieName, cookie.Name)
		}
	})

	t.Run("unexpected failure renders the error page", func(t *testing.T) {
		c := newAuthController(t, &fakeAuthService{loginErr: assert.AnError})

		rec := httptest.NewRecorder()
		c.Login(rec, postForm("/users/login", form))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestAuthController_Logout(t *testing.T) {
	t.Run("revokes the session, clears the cookie, goes to the root", func(t *testing.T) {
		svc := &fakeAuthService{}
		c := newAuthController(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/users/logout", nil)
		req.AddCookie(&http.Cookie{Name: h.SessionCookieName, Value: "signed-token"})
		rec := httptest.NewRecorder()
		c.Logout(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Equal(t, []string{"signed-token"}, svc.loggedOut)
		cleared := false
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == h.SessionCookieName && cookie.MaxAge < 0 {
				cleared = true
			}
		}
		assert.True(t, cleared)
	})

	t.Run("without a cookie still clears and redirects", func(t *testing.T) {
		svc := &fakeAuthService{}
		c := newAuthController(t, svc)

		rec := httptest.NewRecorder()
		c.Logout(rec, httptest.NewRequest(http.MethodGet, "/users/logout", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Empty(t, svc.loggedOut)
	})
}
