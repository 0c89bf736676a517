package infrastructure

import (
	"crypto/tls"
	"net/http"
	"strings"
)

// selfSignedTransport relaxes certificate verification for HTTPS requests to a fixed set of
// hosts known to terminate TLS with self-signed certificates. Everything else goes through
// base untouched.
type selfSignedTransport struct {
	hosts    map[string]struct{}
	base     http.RoundTripper
	insecure http.RoundTripper
}

// NewTransport wraps base (http.DefaultTransport when nil). Entries in selfSigned may be a
// bare hostname, which matches any port, or host:port. With no entries base is returned as is.
func NewTransport(selfSigned []string, base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	hosts := make(map[string]struct{}, len(selfSigned))
	for _, host := range selfSigned {
		if trimmed := strings.ToLower(strings.TrimSpace(host)); trimmed != "" {
			hosts[trimmed] = struct{}{}
		}
	}
	if len(hosts) == 0 {
		return base
	}
	return &selfSignedTransport{hosts: hosts, base: base, insecure: insecureClone(base)}
}

func (t *selfSignedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.isSelfSigned(req) {
		return t.insecure.RoundTrip(req)
	}
	return t.base.RoundTrip(req)
}

func (t *selfSignedTransport) isSelfSigned(req *http.Request) bool {
	if req == nil || req.URL == nil || !strings.EqualFold(req.URL.Scheme, "https") {
		return false
	}
	if _, ok := t.hosts[strings.ToLower(req.URL.Host)]; ok {
		return true
	}
	_, ok := t.hosts[strings.ToLower(req.URL.Hostname())]
	return ok
}

func insecureClone(base http.RoundTripper) http.RoundTripper {
	transport, ok := base.(*http.Transport)
	if !ok {
		transport, ok = http.DefaultTransport.(*http.Transport)
	}
	if !ok || transport == nil {
		transport = &http.Transport{Proxy: http.ProxyFromEnvironment}
	}
	clone := transport.Clone()
	if clone.TLSClientConfig == nil {
		clone.TLSClientConfig = &tls.Config{}
	}
	clone.TLSClientConfig.InsecureSkipVerify = true
	return clone
}
