package aktivitaet

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Brandea-ai/ck-immo-finanz/internal/auth"
	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler kapselt DB und Repository für das Fallprotokoll.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// AnlegenRequest ist der Payload für POST /kunden/{id}/aktivitaeten.
type AnlegenRequest struct {
	Typ    models.AktivitaetsTyp `json:"typ"`
	Inhalt string                `json:"inhalt"`
	System bool                  `json:"system,omitempty"`
}

// Anlegen hängt einen Protokolleintrag an einen Fall an. Für
// System-Einträge ist die Berater-ID 0, sonst kommt sie aus dem
// Auth-Kontext.
func (h *Handler) Anlegen(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	kundeID, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "ungültige Kunden-ID", http.StatusBadRequest)
		return
	}

	var req AnlegenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "ungültiges JSON", http.StatusBadRequest)
		return
	}
	if req.Inhalt == "" {
		http.Error(w, "das Feld 'inhalt' ist erforderlich", http.StatusBadRequest)
		return
	}
	if req.Typ == "" {
		req.Typ = models.AktivitaetNotiz
	}
	if !req.Typ.Valid() {
		http.Error(w, "unbekannter Aktivitätstyp", http.StatusBadRequest)
		return
	}

	var beraterID uint
	if !req.System {
		userVal := r.Context().Value(auth.CtxBeraterID)
		if userVal == nil {
			http.Error(w, "nicht authentifiziert", http.StatusUnauthorized)
			return
		}
		beraterID = userVal.(uint)
	}

	a := models.Aktivitaet{
		KundeID:   uint(kundeID),
		Typ:       req.Typ,
		Inhalt:    req.Inhalt,
		BeraterID: beraterID,
		System:    req.System,
	}
	if err := h.Repository.Anlegen(h.DB, &a); err != nil {
		http.Error(w, "Fehler beim Anlegen der Aktivität", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// ListeNachKunde behandelt GET /kunden/{id}/aktivitaeten.
func (h *Handler) ListeNachKunde(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	kundeID, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "ungültige Kunden-ID", http.StatusBadRequest)
		return
	}

	list, err := h.Repository.ListeNachKunde(h.DB, uint(kundeID))
	if err != nil {
		http.Error(w, "Fehler beim Laden des Protokolls", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
