package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/doctors-portal-api/internal/auth"
	"github.com/harentsoaR/doctors-portal-api/internal/config"
	"github.com/harentsoaR/doctors-portal-api/internal/handlers"
	"github.com/harentsoaR/doctors-portal-api/internal/logger"
	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	lg := logger.New(cfg.LogLevel)

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		lg.Fatal("failed to connect to MongoDB", "err", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.Mongo.Database)
	lg.Info("connected to MongoDB", "database", cfg.Mongo.Database)

	// --- Stores ---
	users := store.NewUserStore(db)
	doctors := store.NewDoctorStore(db)
	appointments := store.NewAppointmentStore(db, cfg.Booking.EnforceUniqueSlot)
	if err := users.EnsureIndexes(ctx); err != nil {
		lg.Fatal("failed to ensure user indexes", "err", err)
	}
	if err := appointments.EnsureIndexes(ctx); err != nil {
		lg.Fatal("failed to ensure appointment indexes", "err", err)
	}

	// --- Identity Verification ---
	verifier, err := auth.NewVerifierFromFile(cfg.Auth.PublicKeyFile)
	if err != nil {
		lg.Fatal("failed to load identity provider keys", "err", err)
	}

	// --- Services & Handlers ---
	authz := services.NewAuthz(users)
	payments := services.NewPaymentService(cfg.Stripe.SecretKey, cfg.Stripe.Currency)
	h := handlers.NewHandler(users, doctors, appointments, authz, payments, lg)

	// --- Gin Router ---
	r := gin.New()
	r.Use(middleware.RequestLogger(lg))
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	// Identity is annotated fail-open on every route; handlers that need it
	// check for themselves.
	r.Use(middleware.Identity(verifier, lg))

	// --- Routes ---
	r.GET("/", h.Greet)

	r.GET("/doctors", h.GetDoctors)
	r.POST("/doctors", h.CreateDoctor)

	r.GET("/appointments", h.GetAppointments)
	r.POST("/appointments", h.CreateAppointment)
	r.GET("/appointments/:id", h.GetAppointment)
	r.PUT("/appointments/:id", h.AttachPayment)

	r.GET("/users/:email", h.GetUserAdmin)
	r.POST("/users", h.CreateUser)
	r.PUT("/users", h.UpsertUser)
	r.PUT("/users/makeAdmin", h.MakeAdmin)

	r.POST("/create-payment-intent", h.CreatePaymentIntent)

	lg.Info("starting server", "port", cfg.APIPort)
	if err := r.Run(":" + cfg.APIPort); err != nil {
		lg.Fatal("server stopped", "err", err)
	}
}
