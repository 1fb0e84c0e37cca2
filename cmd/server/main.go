package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"autorent/internal/api"
	"autorent/internal/auth"
	"autorent/internal/repository"
	"autorent/internal/service"
)

func main() {
	godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	database, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := database.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	carRepo := repository.NewCarRepository(database)
	userRepo := repository.NewUserRepository(database)
	reservationRepo := repository.NewReservationRepository(database)

	var notify service.Notifier
	if os.Getenv("SENDGRID_API_KEY") != "" || os.Getenv("TWILIO_ACCOUNT_SID") != "" {
		notify = service.NewNotifyService()
	}

	fleet := service.NewFleetService(carRepo, userRepo, reservationRepo, notify)
	authSvc := service.NewAuthService(userRepo, secret)
	jobs := service.NewJobService(reservationRepo)

	authHandler := api.NewAuthHandler(authSvc)
	carHandler := api.NewCarHandler(fleet)
	userHandler := api.NewUserHandler(fleet)
	reservationHandler := api.NewReservationHandler(fleet)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/cars", carHandler.ListCars).Methods("GET")
	r.HandleFunc("/api/cars/{id}", carHandler.GetCar).Methods("GET")

	// Authenticated endpoints
	authed := r.PathPrefix("/api").Subrouter()
	authed.Use(auth.Middleware(secret))
	authed.HandleFunc("/users", userHandler.FindUsers).Methods("GET")
	authed.HandleFunc("/users/{id}", userHandler.GetUser).Methods("GET")
	authed.HandleFunc("/users/{id}", userHandler.PatchUser).Methods("PATCH")
	authed.HandleFunc("/reservations", reservationHandler.ListReservations).Methods("GET")
	authed.HandleFunc("/reservations", reservationHandler.CreateReservation).Methods("POST")
	authed.HandleFunc("/reservations/{id}", reservationHandler.DeleteReservation).Methods("DELETE")

	// Admin endpoints (fleet management)
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(auth.Middleware(secret), auth.RequireAdmin)
	admin.HandleFunc("/cars", carHandler.CreateCar).Methods("POST")
	admin.HandleFunc("/cars/{id}", carHandler.UpdateCar).Methods("PUT")
	admin.HandleFunc("/cars/{id}", carHandler.DeleteCar).Methods("DELETE")

	schedule := os.Getenv("SWEEP_SCHEDULE")
	if schedule == "" {
		schedule = "@hourly"
	}
	c := cron.New()
	if _, err := c.AddFunc(schedule, jobs.SweepCancelledReservations); err != nil {
		log.Fatalf("Invalid SWEEP_SCHEDULE %q: %v", schedule, err)
	}
	c.Start()
	defer c.Stop()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
