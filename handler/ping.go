package handler

import (
	"net/http"
	"time"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/endpoint"
)

type PingHandler struct {
	db *database.Connection
}

func MakePingHandler(db *database.Connection) PingHandler {
	return PingHandler{db: db}
}

func (h PingHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	if err := h.db.Ping(); err != nil {
		return endpoint.LogInternalError("database ping failed", err)
	}

	now := time.Now().UTC()

	return endpoint.RespondOk(w, map[string]string{
		"message": "pong",
		"date":    now.Format("2006-01-02"),
		"time":    now.Format("15:04:05"),
	})
}
