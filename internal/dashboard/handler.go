package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/Brandea-ai/ck-immo-finanz/internal/benachrichtigung"
	"github.com/Brandea-ai/ck-immo-finanz/internal/engine"
	"github.com/Brandea-ai/ck-immo-finanz/internal/kunde"
	"gorm.io/gorm"
)

// Handler liefert die Portfolio-Auswertungen fürs Dashboard.
// Beides sind dünne Aufrufe in die Engine über den kompletten Bestand.
type Handler struct {
	DB     *gorm.DB
	Kunden kunde.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:     db,
		Kunden: kunde.NewRepository(),
	}
}

// KPIs behandelt GET /dashboard/kpis.
func (h *Handler) KPIs(w http.ResponseWriter, r *http.Request) {
	kunden, err := h.Kunden.ListeAlle(h.DB)
	if err != nil {
		http.Error(w, "Fehler beim Laden der Fälle", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(engine.BerechneDetailKPIs(kunden))
}

// Stau behandelt GET /dashboard/stau. Gibt es Staufälle, geht zusätzlich
// ein Webhook-Alarm raus (fire-and-forget).
func (h *Handler) Stau(w http.ResponseWriter, r *http.Request) {
	kunden, err := h.Kunden.ListeAlle(h.DB)
	if err != nil {
		http.Error(w, "Fehler beim Laden der Fälle", http.StatusInternalServerError)
		return
	}

	warnungen := engine.ErkenneStau(kunden)
	if len(warnungen) > 0 {
		go benachrichtigung.SendeStauAlarm(warnungen)
	}
	if warnungen == nil {
		warnungen = []engine.StauWarnung{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(warnungen)
}
