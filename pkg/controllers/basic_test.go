package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicController_Hello(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doGet(r, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello World!", w.Body.String())
}

func TestBasicController_BlogByPath(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doGet(r, "/blog/5")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Blog 5", w.Body.String())

	w = doGet(r, "/blog/007")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Blog 7", w.Body.String())

	for _, target := range []string{"/blog/abc", "/blog/-5", "/blog/+5", "/blog/5.0", "/blog/99999999999999999999"} {
		w = doGet(r, target)
		assert.Equal(t, http.StatusNotFound, w.Code, target)
	}
}

func TestBasicController_BlogByQuery(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		target string
		want   string
	}{
		{"/blog?blog_id=7", "Blog 7"},
		{"/blog", "Blog 1"},
		{"/blog?blog_id=x", "Blog 1"},
	}
	for _, tt := range tests {
		w := doGet(r, tt.target)
		assert.Equal(t, http.StatusOK, w.Code, tt.target)
		assert.Equal(t, tt.want, w.Body.String(), tt.target)
	}
}

func TestBasicController_LoginAndProfile(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doGet(r, "/login")
	assert.Equal(t, "login page!", w.Body.String())

	w = doGet(r, "/profile")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = doGet(r, "/profile?name=")
	assert.Equal(t, http.StatusFound, w.Code)

	w = doGet(r, "/profile?name=a")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "name a", w.Body.String())
	require.NotEmpty(t, w.Result().Cookies())
}
