package testutil

import "net/http"

// WithBearer sets an Authorization bearer header on the request.
func WithBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}
