package http

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const identityHeader = "X-User-Id"

// Identity resolves the caller's user id from a request. The engine never
// sees how identity was established, so the header scheme can be swapped for
// a verified one without touching it.
type Identity interface {
	// Resolve returns the caller's id, or false when the request is anonymous.
	Resolve(c echo.Context) (string, bool)
}

// HeaderIdentity trusts the X-User-Id header as-is. This is the stand-in for
// a real authentication layer.
type HeaderIdentity struct{}

func (HeaderIdentity) Resolve(c echo.Context) (string, bool) {
	id := strings.TrimSpace(c.Request().Header.Get(identityHeader))
	return id, id != ""
}
