package backend

import (
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// DefaultPort is where the backend listens when no override is configured.
const DefaultPort = 5000

// ResolveBaseURL picks the API root. An explicit override wins. Otherwise the
// backend is assumed on the page's own hostname at port, under /api. Echoing
// the hostname keeps a page served from 127.0.0.1 on 127.0.0.1, so the
// backend's cookies are never split between it and localhost.
func ResolveBaseURL(override string, port int, page *url.URL) string {
	if o := strings.TrimSpace(override); o != "" {
		return strings.TrimRight(o, "/")
	}

	scheme := "http"
	host := "localhost"
	if page != nil {
		if page.Scheme != "" {
			scheme = page.Scheme
		}
		if h := page.Hostname(); h != "" {
			host = h
		}
	}
	if port <= 0 {
		port = DefaultPort
	}

	return scheme + "://" + net.JoinHostPort(host, strconv.Itoa(port)) + "/api"
}

// loopbackHosts are always accepted as page hosts.
var loopbackHosts = []string{"localhost", "127.0.0.1", "::1"}

// PageURL reconstructs the URL the browser used to reach this server. Host
// and X-Forwarded-Proto come from the client, so a hostname that is neither
// loopback nor listed in trusted becomes localhost, and only http or https is
// taken as the scheme.
func PageURL(r *http.Request, trusted []string) *url.URL {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		switch p := strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0])); p {
		case "http", "https":
			scheme = p
		}
	}

	return &url.URL{Scheme: scheme, Host: pageHost(r.Host, trusted), Path: r.URL.Path}
}

// pageHost normalizes hostport, replacing an untrusted hostname with localhost.
func pageHost(hostport string, trusted []string) string {
	u := url.URL{Host: hostport}
	name := strings.ToLower(strings.TrimSuffix(u.Hostname(), "."))
	if !trustedHost(name, trusted) {
		name = "localhost"
	}
	if u.Port() != "" {
		return net.JoinHostPort(name, u.Port())
	}
	if strings.Contains(name, ":") {
		return "[" + name + "]"
	}
	return name
}

func trustedHost(name string, trusted []string) bool {
	if name == "" {
		return false
	}
	for _, h := range loopbackHosts {
		if strings.EqualFold(name, h) {
			return true
		}
	}
	for _, h := range trusted {
		if strings.EqualFold(name, strings.TrimSuffix(strings.TrimSpace(h), ".")) {
			return true
		}
	}
	return false
}
