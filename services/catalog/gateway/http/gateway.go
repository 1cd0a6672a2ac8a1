package gateway_http

import (
	httpclient "github.com/dmpt/absensi/internal/pkg/http"
)

// HTTPGateway implements catalog.CatalogGW against the backend REST API
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates a new HTTP gateway for the catalog service
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}
