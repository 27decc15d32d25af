package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nalshehri/ExamControl/config"
	"github.com/nalshehri/ExamControl/database"
	"github.com/nalshehri/ExamControl/routes"
	"github.com/nalshehri/ExamControl/scheduler"
)

func main() {
	cfg := config.Load()

	// DB must be up before the server; fail early otherwise.
	database.Connect(cfg)

	sched := scheduler.New(database.DB)
	sched.Start()
	defer sched.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
