package kunde

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Brandea-ai/ck-immo-finanz/internal/engine"
	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"github.com/Brandea-ai/ck-immo-finanz/internal/phasen"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler kapselt DB und Repository für die Fall-Endpunkte.
// Die Engine entscheidet die abgeleiteten Felder (Status, nächste Aktion,
// Red Flags); der Handler führt die eigentliche Schreiboperation aus.
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

// anlegenRequest ist der Payload für POST /kunden.
type anlegenRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Telefon string `json:"telefon"`
	Adresse string `json:"adresse"`

	Finanzierungsvolumen float64  `json:"finanzierungsvolumen"`
	Eigenkapital         *float64 `json:"eigenkapital"`
	Kaufpreis            *float64 `json:"kaufpreis"`

	Objekttyp     models.Objekttyp   `json:"objekttyp"`
	Objektadresse string             `json:"objektadresse"`
	Nutzungsart   models.Nutzungsart `json:"nutzungsart"`
	Wohnflaeche   *float64           `json:"wohnflaeche"`

	Beschaeftigung models.Beschaeftigung `json:"beschaeftigung"`
	NettoEinkommen *float64              `json:"nettoEinkommen"`
	Arbeitgeber    string                `json:"arbeitgeber"`

	BeraterID         uint     `json:"beraterId"`
	FehlendeDokumente []string `json:"fehlendeDokumente"`
}

// aktualisierenRequest erlaubt Teil-Updates; nil bedeutet "unverändert".
type aktualisierenRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Telefon *string `json:"telefon"`
	Adresse *string `json:"adresse"`

	Finanzierungsvolumen *float64 `json:"finanzierungsvolumen"`
	Eigenkapital         *float64 `json:"eigenkapital"`
	Kaufpreis            *float64 `json:"kaufpreis"`

	Objekttyp     *models.Objekttyp   `json:"objekttyp"`
	Objektadresse *string             `json:"objektadresse"`
	Nutzungsart   *models.Nutzungsart `json:"nutzungsart"`
	Wohnflaeche   *float64            `json:"wohnflaeche"`

	Beschaeftigung *models.Beschaeftigung `json:"beschaeftigung"`
	NettoEinkommen *float64               `json:"nettoEinkommen"`
	Arbeitgeber    *string                `json:"arbeitgeber"`

	BeraterID         *uint     `json:"beraterId"`
	TageInPhase       *int      `json:"tageInPhase"`
	FehlendeDokumente *[]string `json:"fehlendeDokumente"`
}

type wechslePhaseRequest struct {
	Phase int `json:"phase"`
}

// setzeStatusRequest akzeptiert den kanonischen Status oder das
// Alt-Vokabular (green/yellow/red).
type setzeStatusRequest struct {
	Status models.Status `json:"status"`
	Ampel  string        `json:"ampel"`
}

func (req *anlegenRequest) validieren() error {
	if req.Name == "" {
		return errors.New("name ist erforderlich")
	}
	if req.Finanzierungsvolumen <= 0 {
		return errors.New("finanzierungsvolumen muss größer 0 sein")
	}
	if !req.Beschaeftigung.Valid() {
		return fmt.Errorf("unbekannte Beschäftigungsart %q", req.Beschaeftigung)
	}
	if !req.Objekttyp.Valid() {
		return fmt.Errorf("unbekannter Objekttyp %q", req.Objekttyp)
	}
	if !req.Nutzungsart.Valid() {
		return fmt.Errorf("unbekannte Nutzungsart %q", req.Nutzungsart)
	}
	return nil
}

// aktualisiereAbleitungen schreibt die Engine-Ergebnisse in den Fall.
// Wird bei jeder Mutation aufgerufen, damit der gespeicherte Status nie
// stillschweigend vom berechneten abweicht.
func aktualisiereAbleitungen(k *models.Kunde) {
	k.Status = engine.BerechneStatus(k)
	k.NaechsteAktion = engine.EmpfohleneAktion(k)
	k.RedFlags = engine.RedFlagTexte(k)
}

// protokolliere hängt einen System-Eintrag an das Fallprotokoll an.
func protokolliere(db *gorm.DB, kundeID uint, typ models.AktivitaetsTyp, inhalt string) {
	db.Create(&models.Aktivitaet{
		KundeID: kundeID,
		Typ:     typ,
		Inhalt:  inhalt,
		System:  true,
	})
}

// Anlegen behandelt POST /kunden. Neue Fälle starten in Phase 1 mit
// Tag 0 und einem synthetischen Protokolleintrag.
func (h *Handler) Anlegen(w http.ResponseWriter, r *http.Request) {
	var req anlegenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "ungültiges JSON", http.StatusBadRequest)
		return
	}
	if err := req.validieren(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	k := models.Kunde{
		Name:                 req.Name,
		Email:                req.Email,
		Telefon:              req.Telefon,
		Adresse:              req.Adresse,
		Finanzierungsvolumen: req.Finanzierungsvolumen,
		Eigenkapital:         req.Eigenkapital,
		Kaufpreis:            req.Kaufpreis,
		Objekttyp:            req.Objekttyp,
		Objektadresse:        req.Objektadresse,
		Nutzungsart:          req.Nutzungsart,
		Wohnflaeche:          req.Wohnflaeche,
		Beschaeftigung:       req.Beschaeftigung,
		NettoEinkommen:       req.NettoEinkommen,
		Arbeitgeber:          req.Arbeitgeber,
		Phase:                phasen.Erste,
		BeraterID:            req.BeraterID,
		TageInPhase:          0,
		FehlendeDokumente:    req.FehlendeDokumente,
	}
	if k.FehlendeDokumente == nil {
		k.FehlendeDokumente = []string{}
	}
	aktualisiereAbleitungen(&k)

	if err := h.Repository.Speichern(h.DB, &k); err != nil {
		http.Error(w, "Fehler beim Anlegen des Kunden", http.StatusInternalServerError)
		return
	}
	protokolliere(h.DB, k.ID, models.AktivitaetNotiz, "Kunde angelegt")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(k)
}

// ListeAlle behandelt GET /kunden mit optionalen Filtern
// (?status=&berater=&phase=&q=).
func (h *Handler) ListeAlle(w http.ResponseWriter, r *http.Request) {
	var f Filter
	q := r.URL.Query()

	if s := q.Get("status"); s != "" {
		f.Status = models.Status(s)
		if !f.Status.Valid() {
			http.Error(w, "ungültiger Status-Filter", http.StatusBadRequest)
			return
		}
	}
	if b := q.Get("berater"); b != "" {
		id, err := strconv.Atoi(b)
		if err != nil {
			http.Error(w, "ungültiger Berater-Filter", http.StatusBadRequest)
			return
		}
		f.BeraterID = uint(id)
	}
	if p := q.Get("phase"); p != "" {
		nr, err := strconv.Atoi(p)
		if err != nil || !phasen.Valid(nr) {
			http.Error(w, "ungültiger Phasen-Filter", http.StatusBadRequest)
			return
		}
		f.Phase = nr
	}
	f.Suche = q.Get("q")

	kunden, err := h.Repository.ListeGefiltert(h.DB, f)
	if err != nil {
		http.Error(w, "Fehler beim Laden der Kunden", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(kunden)
}

// FindeNachID behandelt GET /kunden/{id}.
func (h *Handler) FindeNachID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ungültige ID", http.StatusBadRequest)
		return
	}

	k, err := h.Repository.FindeNachID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Kunde nicht gefunden", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(k)
}

// Aktualisieren behandelt PUT /kunden/{id}. Nach dem Übernehmen der
// Felder werden die abgeleiteten Werte neu berechnet.
func (h *Handler) Aktualisieren(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ungültige ID", http.StatusBadRequest)
		return
	}

	k, err := h.Repository.FindeNachID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Kunde nicht gefunden", http.StatusNotFound)
		return
	}

	var req aktualisierenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "ungültiges JSON", http.StatusBadRequest)
		return
	}
	if err := req.anwenden(k); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	aktualisiereAbleitungen(k)

	if err := h.Repository.Aktualisieren(h.DB, k); err != nil {
		http.Error(w, "Fehler beim Aktualisieren des Kunden", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(k)
}

func (req *aktualisierenRequest) anwenden(k *models.Kunde) error {
	if req.Name != nil {
		if *req.Name == "" {
			return errors.New("name darf nicht leer sein")
		}
		k.Name = *req.Name
	}
	if req.Email != nil {
		k.Email = *req.Email
	}
	if req.Telefon != nil {
		k.Telefon = *req.Telefon
	}
	if req.Adresse != nil {
		k.Adresse = *req.Adresse
	}
	if req.Finanzierungsvolumen != nil {
		if *req.Finanzierungsvolumen <= 0 {
			return errors.New("finanzierungsvolumen muss größer 0 sein")
		}
		k.Finanzierungsvolumen = *req.Finanzierungsvolumen
	}
	if req.Eigenkapital != nil {
		k.Eigenkapital = req.Eigenkapital
	}
	if req.Kaufpreis != nil {
		k.Kaufpreis = req.Kaufpreis
	}
	if req.Objekttyp != nil {
		if !req.Objekttyp.Valid() {
			return fmt.Errorf("unbekannter Objekttyp %q", *req.Objekttyp)
		}
		k.Objekttyp = *req.Objekttyp
	}
	if req.Objektadresse != nil {
		k.Objektadresse = *req.Objektadresse
	}
	if req.Nutzungsart != nil {
		if !req.Nutzungsart.Valid() {
			return fmt.Errorf("unbekannte Nutzungsart %q", *req.Nutzungsart)
		}
		k.Nutzungsart = *req.Nutzungsart
	}
	if req.Wohnflaeche != nil {
		k.Wohnflaeche = req.Wohnflaeche
	}
	if req.Beschaeftigung != nil {
		if !req.Beschaeftigung.Valid() {
			return fmt.Errorf("unbekannte Beschäftigungsart %q", *req.Beschaeftigung)
		}
		k.Beschaeftigung = *req.Beschaeftigung
	}
	if req.NettoEinkommen != nil {
		k.NettoEinkommen = req.NettoEinkommen
	}
	if req.Arbeitgeber != nil {
		k.Arbeitgeber = *req.Arbeitgeber
	}
	if req.BeraterID != nil {
		k.BeraterID = *req.BeraterID
	}
	if req.TageInPhase != nil {
		if *req.TageInPhase < 0 {
			return errors.New("tageInPhase darf nicht negativ sein")
		}
		k.TageInPhase = *req.TageInPhase
	}
	if req.FehlendeDokumente != nil {
		k.FehlendeDokumente = *req.FehlendeDokumente
	}
	return nil
}

// Loeschen behandelt DELETE /kunden/{id}.
func (h *Handler) Loeschen(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ungültige ID", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Loeschen(h.DB, uint(id)); err != nil {
		http.Error(w, "Fehler beim Löschen des Kunden", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Kunde gelöscht"))
}

// WechslePhase behandelt PATCH /kunden/{id}/phase. Die Ziel-Phase wird
// gegen den Katalog validiert; TageInPhase wird genau hier auf 0
// zurückgesetzt und der Wechsel protokolliert.
func (h *Handler) WechslePhase(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ungültige ID", http.StatusBadRequest)
		return
	}

	var req wechslePhaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "ungültiges JSON", http.StatusBadRequest)
		return
	}
	if !phasen.Valid(req.Phase) {
		http.Error(w, fmt.Sprintf("ungültige Phase %d", req.Phase), http.StatusBadRequest)
		return
	}

	k, err := h.Repository.FindeNachID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Kunde nicht gefunden", http.StatusNotFound)
		return
	}

	k.Phase = req.Phase
	k.TageInPhase = 0
	aktualisiereAbleitungen(k)

	if err := h.Repository.Aktualisieren(h.DB, k); err != nil {
		http.Error(w, "Fehler beim Phasenwechsel", http.StatusInternalServerError)
		return
	}
	protokolliere(h.DB, k.ID, models.AktivitaetPhasenwechsel,
		fmt.Sprintf("Phase geändert zu Phase %d", req.Phase))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(k)
}

// SetzeStatus behandelt PATCH /kunden/{id}/status: die manuelle Ampel.
// Der Override wird protokolliert, ist aber nicht autoritativ - die
// nächste Mutation überschreibt ihn wieder mit dem berechneten Status.
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

	status := req.Status
	if status == "" && req.Ampel != "" {
		status, err = models.StatusVonAmpel(req.Ampel)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if !status.Valid() {
		http.Error(w, "ungültiger Status", http.StatusBadRequest)
		return
	}

	k, err := h.Repository.FindeNachID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Kunde nicht gefunden", http.StatusNotFound)
		return
	}

	k.Status = status
	if err := h.Repository.Aktualisieren(h.DB, k); err != nil {
		http.Error(w, "Fehler beim Setzen des Status", http.StatusInternalServerError)
		return
	}
	protokolliere(h.DB, k.ID, models.AktivitaetStatuswechsel,
		fmt.Sprintf("Status geändert zu %s", statusText(status)))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(k)
}

func statusText(s models.Status) string {
	switch s {
	case models.StatusKritisch:
		return "Kritisch"
	case models.StatusWarnung:
		return "Warnung"
	default:
		return "OK"
	}
}

// Bewertung behandelt GET /kunden/{id}/bewertung: die Live-Auswertung
// der Engine, ohne etwas am Fall zu verändern.
func (h *Handler) Bewertung(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ungültige ID", http.StatusBadRequest)
		return
	}

	k, err := h.Repository.FindeNachID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Kunde nicht gefunden", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bewertungDTO(k))
}

// Unterlagen behandelt GET /kunden/{id}/unterlagen.
func (h *Handler) Unterlagen(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ungültige ID", http.StatusBadRequest)
		return
	}

	k, err := h.Repository.FindeNachID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Kunde nicht gefunden", http.StatusNotFound)
		return
	}

	status, err := engine.BerechneUnterlagenstatus(k)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}
