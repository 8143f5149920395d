package main

import (
	"context"
	"embed"
	"fmt"
	"log"

	"promptdesk/internal/database"
	"promptdesk/internal/events"
	"promptdesk/internal/llm"
	"promptdesk/internal/services"
	"promptdesk/internal/utils"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"gorm.io/gorm/logger"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	if err := utils.LoadEnv(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	app := NewApp()

	db, err := database.Init(database.Config{
		LogLevel: logger.Warn,
	})
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}

	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	// Create each service
	dbService := services.NewDbServices(db)
	keyringService := services.NewKeyringService()
	catalogService := services.NewCatalogService(dbService.Settings)
	router := llm.NewRouter(dbService.Settings, services.NewClientFactory(keyringService, catalogService))
	chatService := services.NewChatService(dbService.Settings, dbService.Training, router)

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "PromptDesk",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "PromptDesk",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup: func(ctx context.Context) {
			app.startup(ctx)
			events.EnableRuntimeEmitter()
			dbService.Settings.Startup(ctx)
			dbService.Training.Startup(ctx)
			chatService.Startup(ctx)

			if err := catalogService.Startup(ctx); err != nil {
				fmt.Println("Error starting catalog service:", err)
			}
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			dbService.Settings,
			dbService.Training,
			catalogService,
			chatService,
			keyringService,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
