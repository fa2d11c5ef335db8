package main

import (
	"context"
	"fmt"
	"log"

	"manufacturing-mcp/config"
	"manufacturing-mcp/controllers/idgen"
	"manufacturing-mcp/database"
	"manufacturing-mcp/middleware"
	"manufacturing-mcp/migration"
	"manufacturing-mcp/routes"
	"manufacturing-mcp/tools"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	if err := database.RunSeeders(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	if config.ServeMode == "http" {
		idgen.Init()

		app := fiber.New()
		config.SetupCORS(app)
		app.Use(middleware.RequestID)
		routes.SetupRoutes(app, db)

		port := config.APP_PORT
		fmt.Println("Server listening on port " + port)

		if err := app.Listen(":" + port); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Default mode: expose the analytical tool set over stdio.
	if err := tools.Serve(context.Background(), db); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
