package main

import (
	"log"
	"net/http"
	"os"

	"agendamento/internal/api"
	"agendamento/internal/auth"
	"agendamento/internal/metrics"
	"agendamento/internal/repository"
	"agendamento/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()

	lexiconPath := os.Getenv("GENDER_LEXICON_FILE")
	lexicon, err := repository.NewLexiconRepository(lexiconPath)
	if err != nil {
		log.Fatalf("Failed to load gender lexicon: %v", err)
	}

	genderSvc := service.NewGenderService(lexicon)
	bookingSvc := service.NewBookingService(genderSvc)
	adminAuthSvc := service.NewAdminAuthService()
	jobSvc := service.NewJobService(lexicon)

	bookingMetrics := metrics.NewBookingMetrics(nil)

	bookingHandler := api.NewBookingHandler(bookingSvc, bookingMetrics)
	adminHandler := api.NewAdminHandler(lexicon)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	r := mux.NewRouter()
	r.Use(api.RequestIDMiddleware)

	// Public endpoints
	r.HandleFunc("/api/agendamentos/formatar", bookingHandler.FormatBooking).Methods("POST")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Admin endpoints (login stays outside the protected subtree)
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/lexicon", adminHandler.GetLexicon).Methods("GET")
	admin.HandleFunc("/lexicon/reload", adminHandler.ReloadLexicon).Methods("POST")

	// Periodic lexicon reload, only meaningful when an overlay file is set
	if lexiconPath != "" {
		schedule := os.Getenv("GENDER_LEXICON_RELOAD")
		if schedule == "" {
			schedule = "@every 10m"
		}
		c := cron.New()
		if _, err := c.AddFunc(schedule, func() {
			if err := jobSvc.ReloadGenderLexicon(); err != nil {
				log.Printf("Cron Job: %v", err)
			}
		}); err != nil {
			log.Fatalf("Failed to schedule lexicon reload (%q): %v", schedule, err)
		}
		c.Start()
	}

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, corsHandler)))
}
