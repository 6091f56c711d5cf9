package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/adilbekov/catalog-admin/internal/client"
	"github.com/adilbekov/catalog-admin/internal/config"
	"github.com/adilbekov/catalog-admin/internal/editor"
	"github.com/adilbekov/catalog-admin/internal/handler"
	"github.com/adilbekov/catalog-admin/internal/queue"
	"github.com/adilbekov/catalog-admin/internal/router"
	"github.com/adilbekov/catalog-admin/internal/store"
	"github.com/adilbekov/catalog-admin/internal/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// In-memory collections seeded with the demo data. The seeded admin
	// gets a real credential so the panel is usable out of the box.
	adminHash, err := utils.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}
	products := store.NewProductStore()
	users := store.NewUserStore()
	categories := store.NewCategoryStore()
	store.SeedProducts(products)
	store.SeedCategories(categories)
	store.SeedUsers(users, cfg.AdminEmail, adminHash)

	settings := store.NewSettingsStore(
		store.GeneralSettings{
			SiteName:            cfg.SiteName,
			ItemsPerPage:        cfg.ItemsPerPage,
			EnableNotifications: cfg.Notifications,
			DarkMode:            cfg.DarkMode,
		},
		store.APISettings{
			BaseURL:    cfg.APIBaseURL,
			Key:        cfg.APIKey,
			TimeoutSec: cfg.APITimeoutSec,
		},
	)

	// Audit pipeline. Without a broker URL events are dropped silently.
	var audit queue.Publisher = queue.NopPublisher{}
	if cfg.AMQPURL != "" {
		audit = queue.NewAMQPPublisher(cfg.AMQPURL)
		go queue.StartAuditConsumer(cfg.AMQPURL)
	}

	backend := client.NewStubClient(client.Config{
		BaseURL: cfg.APIBaseURL,
		APIKey:  cfg.APIKey,
		Timeout: time.Duration(cfg.APITimeoutSec) * time.Second,
	})

	h := router.Handlers{
		Auth:       handler.NewAuthHandler(cfg, users),
		Products:   handler.NewProductHandler(editor.NewProductEditor(products, categories), products, audit),
		Users:      handler.NewUserHandler(editor.NewUserEditor(users, cfg.BcryptCost), users, audit),
		Categories: handler.NewCategoryHandler(editor.NewCategoryEditor(categories), categories, audit),
		Dashboard:  handler.NewDashboardHandler(products, users, categories),
		Settings:   handler.NewSettingsHandler(settings, backend),
	}

	e := echo.New()
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response cache disabled")
	}
	router.Register(e, cfg, h, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
