package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Idriss-Abidi/booktook/internal/api"
	"github.com/Idriss-Abidi/booktook/internal/events"
	"github.com/Idriss-Abidi/booktook/internal/repository"
	"github.com/Idriss-Abidi/booktook/internal/service"
	"github.com/Idriss-Abidi/booktook/internal/token"
	"github.com/Idriss-Abidi/booktook/internal/tracing"
	_ "github.com/Idriss-Abidi/booktook/migrations"
)

func main() {
	if err := godotenv.Load(".env.dev"); err != nil {
		fmt.Println("No .env.dev file found, reading from environment variables")
	}

	api.SetupGlobalHandler("booktook")

	shutdownTracer, err := tracing.InitTracerProvider("booktook")
	if err != nil {
		log.Fatalf("Failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		handleMigrations()
		return
	}

	db := connectDB()
	defer db.Close()

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}
	eventPublisher, err := events.NewNatsPublisher(natsURL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	log.Println("Successfully connected to NATS.")

	tokenTTL := 240 * time.Hour
	if raw := os.Getenv("JWT_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid JWT_TTL: %v", err)
		}
		tokenTTL = parsed
	}

	tokens, err := token.NewProvider(os.Getenv("JWT_SECRET"), tokenTTL)
	if err != nil {
		log.Fatalf("Failed to initialize token provider: %v", err)
	}

	userRepo := repository.NewPostgresUserRepository(db)
	bookRepo := repository.NewPostgresBookRepository(db)
	donationRepo := repository.NewPostgresDonationRepository(db)

	userService := service.NewUserService(userRepo, tokens, eventPublisher)
	bookService := service.NewBookService(bookRepo, userRepo, eventPublisher)
	donationService := service.NewDonationService(donationRepo, userRepo, eventPublisher)

	authHandler := api.NewAuthHandler(userService)
	userHandler := api.NewUserHandler(userService)
	bookHandler := api.NewBookHandler(bookService)
	donationHandler := api.NewDonationHandler(donationService)

	app := fiber.New()
	app.Use(otelfiber.Middleware())
	app.Use(api.PrometheusMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "booktook"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	authRequired := api.AuthMiddleware(tokens)

	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Get("/user-info", authRequired, userHandler.GetUserInfo)
	app.Get("/all-users", userHandler.GetAllUsers)
	app.Put("/user/:userId/make-admin", authRequired, userHandler.MakeAdmin)
	app.Put("/user/:id", authRequired, userHandler.UpdateUser)

	books := app.Group("/books")
	books.Get("/search", bookHandler.SearchBooks)
	books.Get("/user/:userId", bookHandler.GetBooksByUser)
	books.Get("/", bookHandler.GetAllBooks)
	books.Get("/:id", bookHandler.GetBookByID)
	books.Post("/", authRequired, bookHandler.CreateBook)
	books.Put("/:id", authRequired, bookHandler.UpdateBook)
	books.Delete("/:id", authRequired, bookHandler.DeleteBook)

	donations := app.Group("/api/donations")
	donations.Get("/active", donationHandler.GetActiveDonations)
	donations.Get("/upcoming", donationHandler.GetUpcomingDonations)
	donations.Get("/user/:userId", donationHandler.GetDonationsByUser)
	donations.Get("/:id", donationHandler.GetDonationByID)
	donations.Post("/", authRequired, donationHandler.CreateDonation)
	donations.Put("/:id", authRequired, donationHandler.UpdateDonation)
	donations.Patch("/:id/toggle-status", authRequired, donationHandler.ToggleDonationStatus)
	donations.Delete("/:id", authRequired, donationHandler.DeleteDonation)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Listening booktook on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func connectDB() *sqlx.DB {
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPassword, dbHost, dbPort, dbName,
	)

	db, err := sqlx.Connect("pgx", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Successfully connected to the database.")
	return db
}

func handleMigrations() {
	fmt.Println("Running database migrations...")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPassword, dbHost, dbPort, dbName,
	)

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("failed to connect to database for migration: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("goose: failed to run migrations: %v", err)
	}

	fmt.Println("Migrations applied successfully!")
}
