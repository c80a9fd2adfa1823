package http

import "net/http"

// apiKeyTransport sets a static header on every outbound request. Used for
// vendor credentials carried in non-Authorization headers (x-api-key).
type apiKeyTransport struct {
	header    string
	value     string
	transport http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqCopy := req.Clone(req.Context())

	if t.value != "" {
		reqCopy.Header.Set(t.header, t.value)
	}

	return t.transport.RoundTrip(reqCopy)
}

func WithAPIKeyHeader(header, value string) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &apiKeyTransport{
			header:    header,
			value:     value,
			transport: rt,
		}
	})
}
