package protocal

import (
	"flag"
	"log"
	"os"
	"os/signal"

	"chatter-notify/configs"
	httpAdapter "chatter-notify/internal/adapters/input/http"
	"chatter-notify/internal/adapters/output/chatter"
	"chatter-notify/internal/adapters/output/memory"
	"chatter-notify/internal/adapters/output/postgres"
	"chatter-notify/internal/application"
	"chatter-notify/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))
	dbConGorm, err := gorm.ConnectToPostgreSQL(
		configs.GetViper().Postgres.Host,
		configs.GetViper().Postgres.Port,
		configs.GetViper().Postgres.Username,
		configs.GetViper().Postgres.Password,
		configs.GetViper().Postgres.DbName,
		configs.GetViper().Postgres.SSLMode,
	)
	if err != nil {
		return err
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			gorm.DisconnectPostgres(dbConGorm.Postgres)
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Wire up the hexagonal architecture layers
	// Output adapters: session store, Chatter client, history repository.
	// The session store is constructed here and injected so every client
	// sharing credentials in this process reuses one login.
	sessionStore := memory.NewSessionStore()
	chatterClient, err := chatter.NewClientAdapter(configs.GetViper().Salesforce, sessionStore)
	if err != nil {
		logrus.Fatalf("Failed to create Chatter client: %v", err)
	}
	postgresRepo := postgres.NewNotificationRepository(dbConGorm.Postgres)
	// Application service (use case)
	srv := application.NewNotifyService(chatterClient, postgresRepo)
	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(srv, dbConGorm.Postgres)

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)

	magnolia := app.Group("/v1/api")
	{
		magnolia.Post("/notification", hdl.PostNotification)
		magnolia.Delete("/notification/:id", hdl.DeleteNotification)
		magnolia.Get("/notification", hdl.ListNotifications)
	}

	err = app.Listen(":" + configs.GetViper().App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listerning on port: ", configs.GetViper().App.Port)
	return nil
}
