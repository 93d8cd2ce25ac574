package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"tiergate/internal/adapter/repo"
	"tiergate/internal/infra"
)

// App bundles the dependencies shared by the HTTP handlers.
type App struct {
	SQL       infra.SQLExecutor
	Logger    zerolog.Logger
	JWTSecret string

	premium *repo.PremiumStatusRepo
}

// NewApp wires the handler container around the given SQL executor.
func NewApp(sql infra.SQLExecutor, logger zerolog.Logger, jwtSecret string) *App {
	return &App{
		SQL:       sql,
		Logger:    logger,
		JWTSecret: jwtSecret,
		premium:   repo.NewPremiumStatusRepo(sql),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]string{"code": errCode, "message": message})
}
