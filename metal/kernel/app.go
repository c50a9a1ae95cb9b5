package kernel

import (
	baseHttp "net/http"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/metal/env"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/llogs"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/middleware"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

type App struct {
	router    *Router
	sentry    *portal.Sentry
	logs      llogs.Driver
	validator *portal.Validator
	env       *env.Environment
	db        *database.Connection
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	db := MakeDbConnection(env)

	app := App{
		env:       env,
		validator: validator,
		logs:      MakeLogs(env),
		sentry:    MakeSentry(env),
		db:        db,
	}

	router := Router{
		Env:  env,
		Db:   db,
		Mux:  baseHttp.NewServeMux(),
		Mail: MakeMailService(env),
		Auth: MakeAuthProvider(env),
		Pipeline: middleware.Pipeline{
			FormGuard: middleware.MakeFormGuard(),
		},
	}

	app.SetRouter(router)

	return &app, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	router := *a.router

	router.Forms()
	router.Mailer()
	router.Posts()
	router.Taxonomy()
	router.Ping()
	router.Metrics()
}
