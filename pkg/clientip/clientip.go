// Package clientip resolves the originating client address of an HTTP
// request behind common reverse proxies.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// proxyHeaders are consulted in order before falling back to RemoteAddr.
var proxyHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP returns the normalized client IP, or "" when nothing parses.
// X-Forwarded-For may hold a list; the first valid entry wins. The headers
// are client-controlled unless a proxy in front rewrites them.
func GetIP(r *http.Request) string {
	for _, h := range proxyHeaders {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	return RemoteIP(r)
}

// RemoteIP returns the peer address of the connection and ignores every
// forwarding header.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
