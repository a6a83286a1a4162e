package dokument

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Brandea-ai/ck-immo-finanz/internal/engine"
	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler verwaltet die Unterlagen-Checkliste eines Falls. Die Pflichtliste
// kommt aus der Engine; der Handler hält die Checklisten-Zeilen und spiegelt
// offene Einträge zurück in Kunde.FehlendeDokumente.
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

type setzeStatusRequest struct {
	Status models.DokumentStatus `json:"status"`
	Notiz  string                `json:"notiz"`
}

// ErstelleCheckliste behandelt POST /kunden/{id}/dokumente/checkliste:
// legt für jede Pflichtunterlage, die noch keine Zeile hat, einen
// Checklisten-Eintrag mit Status "fehlend" an.
func (h *Handler) ErstelleCheckliste(w http.ResponseWriter, r *http.Request) {
	kundeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ungültige Kunden-ID", http.StatusBadRequest)
		return
	}

	var k models.Kunde
	if err := h.DB.First(&k, kundeID).Error; err != nil {
		http.Error(w, "Kunde nicht gefunden", http.StatusNotFound)
		return
	}

	pflicht, err := engine.Pflichtunterlagen(&k)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	vorhanden, err := h.Repository.ListeNachKunde(h.DB, k.ID)
	if err != nil {
		http.Error(w, "Fehler beim Laden der Checkliste", http.StatusInternalServerError)
		return
	}
	bekannt := make(map[string]bool, len(vorhanden))
	for _, d := range vorhanden {
		bekannt[d.Name] = true
	}

	for _, name := range pflicht {
		if bekannt[name] {
			continue
		}
		d := models.Dokument{
			KundeID: k.ID,
			Name:    name,
			Status:  models.DokumentFehlend,
		}
		if err := h.Repository.Anlegen(h.DB, &d); err != nil {
			http.Error(w, "Fehler beim Anlegen der Checkliste", http.StatusInternalServerError)
			return
		}
	}

	if err := h.syncFehlendeDokumente(&k); err != nil {
		http.Error(w, "Fehler beim Abgleich der Fehlliste", http.StatusInternalServerError)
		return
	}

	list, err := h.Repository.ListeNachKunde(h.DB, k.ID)
	if err != nil {
		http.Error(w, "Fehler beim Laden der Checkliste", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(list)
}

// ListeNachKunde behandelt GET /kunden/{id}/dokumente.
func (h *Handler) ListeNachKunde(w http.ResponseWriter, r *http.Request) {
	kundeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ungültige Kunden-ID", http.StatusBadRequest)
		return
	}

	list, err := h.Repository.ListeNachKunde(h.DB, uint(kundeID))
	if err != nil {
		http.Error(w, "Fehler beim Laden der Dokumente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// SetzeStatus behandelt PATCH /dokumente/{id}. Nach der Änderung wird die
// Fehlliste des Kunden abgeglichen und der Fallstatus neu abgeleitet.
func (h *Handler) SetzeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ungültige ID", http.StatusBadRequest)
		return
	}

	var req setzeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "ungültiges JSON", http.StatusBadRequest)
		return
	}
	if !req.Status.Valid() {
		http.Error(w, "unbekannter Dokumentstatus", http.StatusBadRequest)
		return
	}

	d, err := h.Repository.FindeNachID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Dokument nicht gefunden", http.StatusNotFound)
		return
	}

	d.Status = req.Status
	if req.Notiz != "" {
		d.Notiz = req.Notiz
	}
	if err := h.Repository.Aktualisieren(h.DB, d); err != nil {
		http.Error(w, "Fehler beim Aktualisieren des Dokuments", http.StatusInternalServerError)
		return
	}

	var k models.Kunde
	if err := h.DB.First(&k, d.KundeID).Error; err == nil {
		if err := h.syncFehlendeDokumente(&k); err == nil && req.Status == models.DokumentVorhanden {
			h.DB.Create(&models.Aktivitaet{
				KundeID: k.ID,
				Typ:     models.AktivitaetDokument,
				Inhalt:  fmt.Sprintf("%s erhalten", d.Name),
				System:  true,
			})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}

// syncFehlendeDokumente spiegelt alle offenen Checklisten-Einträge
// (fehlend oder abgelehnt) in die Fehlliste des Kunden und schreibt die
// abgeleiteten Felder neu.
func (h *Handler) syncFehlendeDokumente(k *models.Kunde) error {
	docs, err := h.Repository.ListeNachKunde(h.DB, k.ID)
	if err != nil {
		return err
	}

	fehlend := []string{}
	for _, d := range docs {
		if d.Status == models.DokumentFehlend || d.Status == models.DokumentAbgelehnt {
			fehlend = append(fehlend, d.Name)
		}
	}

	k.FehlendeDokumente = fehlend
	k.Status = engine.BerechneStatus(k)
	k.NaechsteAktion = engine.EmpfohleneAktion(k)
	k.RedFlags = engine.RedFlagTexte(k)
	return h.DB.Save(k).Error
}
