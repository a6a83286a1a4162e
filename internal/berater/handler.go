package berater

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Brandea-ai/ck-immo-finanz/internal/auth"
	"github.com/Brandea-ai/ck-immo-finanz/internal/kunde"
	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"github.com/Brandea-ai/ck-immo-finanz/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler kapselt DB und Repositories für die Team-Endpunkte.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Kunden     kunde.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Kunden:     kunde.NewRepository(),
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Passwort string `json:"passwort"`
}

type anlegenRequest struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Telefon  string       `json:"telefon"`
	Rolle    models.Rolle `json:"rolle"`
	Passwort string       `json:"passwort"`
}

// Login gibt für gültige Zugangsdaten ein JWT zurück.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "ungültiges JSON", http.StatusBadRequest)
		return
	}

	b, err := h.Repository.FindeNachEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "ungültige Zugangsdaten", http.StatusUnauthorized)
		return
	}
	if !utils.PruefePasswort(b.Passwort, req.Passwort) {
		http.Error(w, "ungültige Zugangsdaten", http.StatusUnauthorized)
		return
	}

	token, err := auth.GeneriereToken(b.ID, b.Rolle)
	if err != nil {
		http.Error(w, "Fehler beim Erzeugen des Tokens", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// Anlegen behandelt POST /berater.
func (h *Handler) Anlegen(w http.ResponseWriter, r *http.Request) {
	var req anlegenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "ungültiges JSON", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" {
		http.Error(w, "name und email sind erforderlich", http.StatusBadRequest)
		return
	}
	if req.Rolle == "" {
		req.Rolle = models.RolleBerater
	}
	if !req.Rolle.Valid() {
		http.Error(w, "unbekannte Rolle", http.StatusBadRequest)
		return
	}

	// Ohne Passwort wird ein temporäres erzeugt und einmalig mitgegeben.
	var temporaer string
	if req.Passwort == "" {
		tmp, err := utils.GeneriereTemporaeresPasswort()
		if err != nil {
			http.Error(w, "Fehler beim Erzeugen des Passworts", http.StatusInternalServerError)
			return
		}
		req.Passwort = tmp
		temporaer = tmp
	}

	hash, err := utils.HashPasswort(req.Passwort)
	if err != nil {
		http.Error(w, "Fehler beim Verarbeiten des Passworts", http.StatusInternalServerError)
		return
	}

	b := models.Berater{
		Name:     req.Name,
		Email:    req.Email,
		Telefon:  req.Telefon,
		Rolle:    req.Rolle,
		Passwort: hash,
	}
	if err := h.Repository.Speichern(h.DB, &b); err != nil {
		http.Error(w, "Fehler beim Anlegen des Beraters", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if temporaer != "" {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"berater":             b,
			"temporaeresPasswort": temporaer,
		})
		return
	}
	json.NewEncoder(w).Encode(b)
}

// ListeAlle behandelt GET /berater.
func (h *Handler) ListeAlle(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListeAlle(h.DB)
	if err != nil {
		http.Error(w, "Fehler beim Laden des Teams", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// FindeNachID behandelt GET /berater/{id}.
func (h *Handler) FindeNachID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ungültige ID", http.StatusBadRequest)
		return
	}

	b, err := h.Repository.FindeNachID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Berater nicht gefunden", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(b)
}

// Uebersicht behandelt GET /berater/{id}/uebersicht: Fallzahlen und
// Volumen des Beraters, live aus dem Portfolio gerechnet.
func (h *Handler) Uebersicht(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ungültige ID", http.StatusBadRequest)
		return
	}

	b, err := h.Repository.FindeNachID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Berater nicht gefunden", http.StatusNotFound)
		return
	}

	kunden, err := h.Kunden.ListeNachBerater(h.DB, b.ID)
	if err != nil {
		http.Error(w, "Fehler beim Laden der Fälle", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(uebersichtDTO(b, kunden))
}

// Aktualisieren behandelt PUT /berater/{id}.
func (h *Handler) Aktualisieren(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ungültige ID", http.StatusBadRequest)
		return
	}

	b, err := h.Repository.FindeNachID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Berater nicht gefunden", http.StatusNotFound)
		return
	}

	var req anlegenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "ungültiges JSON", http.StatusBadRequest)
		return
	}
	if req.Name != "" {
		b.Name = req.Name
	}
	if req.Email != "" {
		b.Email = req.Email
	}
	if req.Telefon != "" {
		b.Telefon = req.Telefon
	}
	if req.Rolle != "" {
		if !req.Rolle.Valid() {
			http.Error(w, "unbekannte Rolle", http.StatusBadRequest)
			return
		}
		b.Rolle = req.Rolle
	}
	if req.Passwort != "" {
		hash, err := utils.HashPasswort(req.Passwort)
		if err != nil {
			http.Error(w, "Fehler beim Verarbeiten des Passworts", http.StatusInternalServerError)
			return
		}
		b.Passwort = hash
	}

	if err := h.Repository.Aktualisieren(h.DB, b); err != nil {
		http.Error(w, "Fehler beim Aktualisieren des Beraters", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(b)
}

// Loeschen behandelt DELETE /berater/{id}.
func (h *Handler) Loeschen(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ungültige ID", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Loeschen(h.DB, uint(id)); err != nil {
		http.Error(w, "Fehler beim Löschen des Beraters", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Berater gelöscht"))
}
