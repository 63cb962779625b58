package web

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/guijosegon/portfolio/internal/domain/port/driven"
)

// cookieMaxAge keeps preferences for a year; they have no expiry of their own.
const cookieMaxAge = 365 * 24 * 60 * 60

var _ driven.KeyValueStore = (*cookieStore)(nil)

// cookieStore is a KeyValueStore over the visitor's cookies, scoped to one
// request/response pair. Values written during the request are visible to
// later reads in the same request.
type cookieStore struct {
	w       http.ResponseWriter
	r       *http.Request
	secure  bool
	written map[string]string
}

func newCookieStore(w http.ResponseWriter, r *http.Request, secure bool) *cookieStore {
	return &cookieStore{w: w, r: r, secure: secure, written: map[string]string{}}
}

func (s *cookieStore) Get(_ context.Context, key string) (string, bool, error) {
	if v, ok := s.written[key]; ok {
		return v, true, nil
	}

	cookie, err := s.r.Cookie(key)
	if err != nil {
		// http.ErrNoCookie is the only error Cookie returns.
		return "", false, nil
	}

	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return "", false, fmt.Errorf("decode cookie %s: %w", key, err)
	}
	return value, true, nil
}

func (s *cookieStore) Set(_ context.Context, key, value string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    url.QueryEscape(value),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secure,
	})
	s.written[key] = value
	return nil
}
