package ui

import (
	"net/url"
	"strings"
)

// LogoutURL is the OpenID Connect end-session link for issuer, returning
// the browser to redirect afterwards.
func LogoutURL(issuer, redirect string) string {
	return strings.TrimRight(issuer, "/") +
		"/protocol/openid-connect/logout?redirect_uri=" + url.QueryEscape(redirect)
}
