package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dreyes/vitrina/internal/stubapi"
)

// The stub stands in for the real backend during development, so it listens
// on the same port and allows cross-origin requests the way the backend does.
func main() {
	addr := os.Getenv("STUB_ADDR")
	if addr == "" {
		addr = ":5000"
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	stubapi.NewHandler().Register(e)

	if err := e.Start(addr); err != nil {
		log.Fatalf("stub api stopped: %v", err)
	}
}
