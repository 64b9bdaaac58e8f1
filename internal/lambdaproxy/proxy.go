// Package lambdaproxy adapts API Gateway proxy events to the standard
// http.Handler interface so the same router serves Lambda and plain HTTP.
package lambdaproxy

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// Proxy translates APIGatewayProxyRequest events into http.Requests,
// dispatches them to the wrapped handler, and converts the response back.
type Proxy struct {
	handler http.Handler
}

// New creates a Proxy around an http.Handler.
func New(handler http.Handler) *Proxy {
	return &Proxy{handler: handler}
}

// Handle processes a single API Gateway proxy event.
func (p *Proxy) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := p.toRequest(ctx, event)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	rec := newResponseRecorder()
	p.handler.ServeHTTP(rec, req)

	return rec.result(), nil
}

// toRequest builds an http.Request from the proxy event.
func (p *Proxy) toRequest(ctx context.Context, event events.APIGatewayProxyRequest) (*http.Request, error) {
	path := event.Path
	if path == "" {
		path = "/"
	}

	u := url.URL{Path: path}

	query := url.Values{}
	for key, value := range event.QueryStringParameters {
		query.Set(key, value)
	}
	for key, values := range event.MultiValueQueryStringParameters {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	u.RawQuery = query.Encode()

	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode request body: %w", err)
		}
		body = string(decoded)
	}

	req, err := http.NewRequestWithContext(ctx, event.HTTPMethod, u.String(), strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	for key, value := range event.Headers {
		req.Header.Set(key, value)
	}
	for key, values := range event.MultiValueHeaders {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	if host := req.Header.Get("Host"); host != "" {
		req.Host = host
	}
	if sourceIP := event.RequestContext.Identity.SourceIP; sourceIP != "" {
		req.RemoteAddr = sourceIP + ":0"
	}
	req.ContentLength = int64(len(body))

	return req, nil
}

// responseRecorder captures the handler's response for conversion into
// an APIGatewayProxyResponse.
type responseRecorder struct {
	status  int
	headers http.Header
	body    bytes.Buffer
}

func newResponseRecorder() *responseRecorder {
	return &responseRecorder{
		status:  http.StatusOK,
		headers: make(http.Header),
	}
}

func (r *responseRecorder) Header() http.Header {
	return r.headers
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	return r.body.Write(b)
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
}

func (r *responseRecorder) result() events.APIGatewayProxyResponse {
	headers := make(map[string]string, len(r.headers))
	multiValueHeaders := make(map[string][]string, len(r.headers))

	for key, values := range r.headers {
		if len(values) > 0 {
			headers[key] = values[len(values)-1]
		}
		multiValueHeaders[key] = values
	}

	return events.APIGatewayProxyResponse{
		StatusCode:        r.status,
		Headers:           headers,
		MultiValueHeaders: multiValueHeaders,
		Body:              r.body.String(),
	}
}
