package main

import (
	_ "coolseason/docs"
	"coolseason/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           CoolSeason Estimate API
// @version         1.0
// @description     HVAC sales estimates: load sizing, tiered pricing templates and proposal composition.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
