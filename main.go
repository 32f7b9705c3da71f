package main

import (
	"context"

	"rentora/app"
	"rentora/config"
	"rentora/db"
	"rentora/routes"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	app.BootstrapFirstAdmin(context.Background(),
		application.Config, db.NewRepo(application.DB), application.Log)

	application.Log.Info().Str("port", application.Config.Port).Msg("listening")
	if err := r.Run(":" + application.Config.Port); err != nil {
		application.Log.Fatal().Err(err).Msg("server")
	}
}
