package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"pharmacy/cmd"
	httpin "pharmacy/internal/adapters/in/http"
	"pharmacy/internal/jobs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		configs.DBUser, configs.DBPassword, configs.DBHost, configs.DBPort,
		configs.DBName, configs.DBSslMode)

	runMigrations(dbURL, configs.MigrationsPath)

	gormDB, err := gorm.Open(postgresdriver.Open(dbURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateSweepAbandonedPaymentsCommandHandler(),
		configs.PaymentSweepSpec,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		MigrationsPath:         goDotEnvVariable("MIGRATIONS_PATH"),
		RazorpayKeyID:          goDotEnvVariable("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:      goDotEnvVariable("RAZORPAY_KEY_SECRET"),
		RazorpayCallbackSecret: goDotEnvVariable("RAZORPAY_CALLBACK_SECRET"),
		PaymentSweepSpec:       goDotEnvVariable("PAYMENT_SWEEP_SPEC"),
		AbandonedPaymentTTL:    goDotEnvVariable("ABANDONED_PAYMENT_TTL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func runMigrations(dbURL, migrationsPath string) {
	m, err := migrate.New("file://"+migrationsPath, dbURL)
	if err != nil {
		log.Fatalf("Error preparing migrations: %v", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("Error applying migrations: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(app.CreateServerHandlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
