package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/Brandea-ai/ck-immo-finanz/internal/aktivitaet"
	"github.com/Brandea-ai/ck-immo-finanz/internal/auth"
	"github.com/Brandea-ai/ck-immo-finanz/internal/berater"
	"github.com/Brandea-ai/ck-immo-finanz/internal/dashboard"
	"github.com/Brandea-ai/ck-immo-finanz/internal/dokument"
	"github.com/Brandea-ai/ck-immo-finanz/internal/kunde"
	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"github.com/Brandea-ai/ck-immo-finanz/internal/phasen"
	"github.com/Brandea-ai/ck-immo-finanz/internal/seed"
	"github.com/Brandea-ai/ck-immo-finanz/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("keine .env gefunden, nutze Umgebungsvariablen")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Fehler beim Verbinden mit der Datenbank:", err)
	}

	if err := database.AutoMigrate(
		&models.Berater{},
		&models.Kunde{},
		&models.Aktivitaet{},
		&models.Dokument{},
	); err != nil {
		log.Fatal("Fehler beim AutoMigrate:", err)
	}

	if os.Getenv("SEED_DEMO") == "true" {
		if err := seed.Run(database); err != nil {
			log.Fatal("Fehler beim Seeden der Demo-Daten:", err)
		}
	}

	// Handler
	beraterHandler := berater.NewHandler(database)
	kundeHandler := kunde.NewHandler(database)
	aktivitaetHandler := aktivitaet.NewHandler(database)
	dokumentHandler := dokument.NewHandler(database)
	dashboardHandler := dashboard.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Öffentliche Routen
	r.HandleFunc("/login", beraterHandler.Login).Methods("POST")
	r.HandleFunc("/phasen", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(phasen.Alle())
	}).Methods("GET")

	// Geschützte Routen
	api := r.NewRoute().Subrouter()
	api.Use(auth.Middleware)

	// Kunden
	api.HandleFunc("/kunden", kundeHandler.Anlegen).Methods("POST")
	api.HandleFunc("/kunden", kundeHandler.ListeAlle).Methods("GET")
	api.HandleFunc("/kunden/{id}", kundeHandler.FindeNachID).Methods("GET")
	api.HandleFunc("/kunden/{id}", kundeHandler.Aktualisieren).Methods("PUT")
	api.HandleFunc("/kunden/{id}/phase", kundeHandler.WechslePhase).Methods("PATCH")
	api.HandleFunc("/kunden/{id}/status", kundeHandler.SetzeStatus).Methods("PATCH")
	api.HandleFunc("/kunden/{id}/bewertung", kundeHandler.Bewertung).Methods("GET")
	api.HandleFunc("/kunden/{id}/unterlagen", kundeHandler.Unterlagen).Methods("GET")

	// Fallprotokoll
	api.HandleFunc("/kunden/{id}/aktivitaeten", aktivitaetHandler.Anlegen).Methods("POST")
	api.HandleFunc("/kunden/{id}/aktivitaeten", aktivitaetHandler.ListeNachKunde).Methods("GET")

	// Unterlagen-Checkliste
	api.HandleFunc("/kunden/{id}/dokumente/checkliste", dokumentHandler.ErstelleCheckliste).Methods("POST")
	api.HandleFunc("/kunden/{id}/dokumente", dokumentHandler.ListeNachKunde).Methods("GET")
	api.HandleFunc("/dokumente/{id}", dokumentHandler.SetzeStatus).Methods("PATCH")

	// Team
	api.HandleFunc("/berater", beraterHandler.Anlegen).Methods("POST")
	api.HandleFunc("/berater", beraterHandler.ListeAlle).Methods("GET")
	api.HandleFunc("/berater/{id}", beraterHandler.FindeNachID).Methods("GET")
	api.HandleFunc("/berater/{id}", beraterHandler.Aktualisieren).Methods("PUT")
	api.HandleFunc("/berater/{id}/uebersicht", beraterHandler.Uebersicht).Methods("GET")

	// Dashboard
	api.HandleFunc("/dashboard/kpis", dashboardHandler.KPIs).Methods("GET")
	api.HandleFunc("/dashboard/stau", dashboardHandler.Stau).Methods("GET")

	// Löschen nur für die Geschäftsführung
	api.Handle("/kunden/{id}", auth.RequireGF(http.HandlerFunc(kundeHandler.Loeschen))).Methods("DELETE")
	api.Handle("/berater/{id}", auth.RequireGF(http.HandlerFunc(beraterHandler.Loeschen))).Methods("DELETE")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server läuft auf http://localhost:%s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
