package middleware

import (
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/endpoint"
)

type Pipeline struct {
	FormGuard *FormGuard
}

// Chain applies a list of middleware handlers to a final ApiHandler.
// It builds the chain in reverse, so the first middleware
// in the list is the outermost one, executing first.
func (m Pipeline) Chain(h endpoint.ApiHandler, handlers ...endpoint.Middleware) endpoint.ApiHandler {
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}

	return h
}
