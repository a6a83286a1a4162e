package kunde

import (
	"github.com/Brandea-ai/ck-immo-finanz/internal/engine"
	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
)

// BewertungDTO ist das Ergebnis der Live-Bewertung eines Falls durch die
// Engine: Ampel, Red Flags, Phasen-Gate und die dringendste Aktion.
type BewertungDTO struct {
	KundeID          uint                 `json:"kundeId"`
	Status           models.Status        `json:"status"`
	Ampel            string               `json:"ampel"` // Alt-Vokabular green/yellow/red
	RedFlags         []engine.RedFlag     `json:"redFlags"`
	Phasenwechsel    engine.Phasenwechsel `json:"phasenwechsel"`
	EmpfohleneAktion string               `json:"empfohleneAktion"`
}

func bewertungDTO(k *models.Kunde) BewertungDTO {
	status := engine.BerechneStatus(k)
	flags := engine.ErkenneRedFlags(k)
	if flags == nil {
		flags = []engine.RedFlag{}
	}
	return BewertungDTO{
		KundeID:          k.ID,
		Status:           status,
		Ampel:            status.Ampel(),
		RedFlags:         flags,
		Phasenwechsel:    engine.PruefePhasenwechsel(k),
		EmpfohleneAktion: engine.EmpfohleneAktion(k),
	}
}
