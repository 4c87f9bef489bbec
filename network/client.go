// Package network holds the HTTP client used for tiramisu's own requests.
package network

import (
	"net/http"
	"time"

	"github.com/grngxd/tiramisu/constant"
)

// UserAgent identifies tiramisu to remote services.
var UserAgent = constant.Tiramisu + "/" + constant.Version

// Client is shared by every outgoing request of the application.
var Client = &http.Client{
	Timeout:   10 * time.Second,
	Transport: &userAgent{base: newTransport()},
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 10 * time.Second
	return t
}

type userAgent struct {
	base http.RoundTripper
}

func (u *userAgent) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return u.base.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", UserAgent)
	return u.base.RoundTrip(req)
}
