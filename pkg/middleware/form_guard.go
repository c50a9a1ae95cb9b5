package middleware

import (
	baseHttp "net/http"
	"time"

	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/endpoint"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/limiter"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

// FormGuard shields the public lead forms from abusive submitters. It keys
// an in-memory failure limiter by client IP: rejected submissions count as
// failures, and an IP that keeps producing them inside the window is cut
// off with 429 before it reaches the pipeline again.
type FormGuard struct {
	rateLimiter *limiter.MemoryLimiter
}

func MakeFormGuard() *FormGuard {
	return &FormGuard{
		rateLimiter: limiter.NewMemoryLimiter(1*time.Minute, 10),
	}
}

func (g *FormGuard) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		key := g.limiterKey(r)

		if g.rateLimiter.TooMany(key) {
			return endpoint.TooManyRequestsError("Too many requests. Please, try again later.")
		}

		err := next(w, r)

		if err != nil && err.Status >= baseHttp.StatusBadRequest && err.Status < baseHttp.StatusInternalServerError {
			g.rateLimiter.Fail(key)
		}

		return err
	}
}

func (g *FormGuard) limiterKey(r *baseHttp.Request) string {
	meta := portal.ExtractClientMeta(r)

	if meta.IP != nil {
		return *meta.IP
	}

	return portal.UnknownUserAgent
}
