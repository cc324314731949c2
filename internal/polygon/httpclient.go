package polygon

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient builds the HTTP client shared by all Polygon requests.
//
// Configuration:
//   - Proxy: honored from the environment (HTTP_PROXY etc.).
//   - Dialer.Timeout: TCP connect timeout, shorter than the default.
//   - MaxIdleConns / IdleConnTimeout: idle pool sizing; a CLI run reuses at
//     most a couple of connections, serve mode benefits from the pool.
//   - TLSHandshakeTimeout: upper bound on the HTTPS handshake.
//   - Client.Timeout: overall per-request timeout. Zero means none: a fetch
//     blocks until the transport gives up or the response completes, which is
//     the CLI's default behavior (HTTP_TIMEOUT_SECONDS=0).
//
// http.DefaultClient is not used; it carries none of the transport limits
// above.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
