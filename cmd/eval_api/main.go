// Package main FormaRank Evaluation API
// @title FormaRank Evaluation API
// @version 1.0
// @description Ranking-quality metric evaluation over tabular datasets
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/formarank/formarank/docs"
	"github.com/formarank/formarank/internal/router"
	"github.com/formarank/formarank/internal/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	s := server.NewServer(echo.New(), cfg)

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "FormaRank Evaluation API is running")
	})

	evalRouter := router.NewEvaluateRouter(s.Echo)
	evalRouter.Bind()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
