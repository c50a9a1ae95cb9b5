package main

import (
	"log/slog"
	baseHttp "net/http"

	_ "github.com/lib/pq"

	"github.com/rmourey26/resendit-asset-intel-website-blog/metal/kernel"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/portal"
)

var app *kernel.App

func init() {
	validate := portal.GetDefaultValidator()

	secrets, err := kernel.Ignite("./.env", validate)
	if err != nil {
		panic("bootstrapping error > " + err.Error())
	}

	if app, err = kernel.MakeApp(secrets, validate); err != nil {
		panic("bootstrapping error > " + err.Error())
	}
}

func main() {
	defer app.CloseDB()
	defer app.CloseLogs()

	app.Boot()

	if err := app.GetDB().Ping(); err != nil {
		panic("Error reaching the database: " + err.Error())
	}

	address := app.GetEnv().Network.GetHostURL()
	slog.Info("Starting new server on " + address)

	if err := baseHttp.ListenAndServe(address, app.GetHandler()); err != nil {
		slog.Error("Error starting server", "error", err)
		panic("Error starting server." + err.Error())
	}
}
