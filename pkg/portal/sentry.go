package portal

import (
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/rmourey26/resendit-asset-intel-website-blog/metal/env"
)

type Sentry struct {
	Handler *sentryhttp.Handler
	Options *sentryhttp.Options
	Env     *env.Environment
}
