package berater

import (
	"github.com/Brandea-ai/ck-immo-finanz/internal/engine"
	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"github.com/Brandea-ai/ck-immo-finanz/internal/phasen"
)

// UebersichtDTO fasst das Portfolio eines Beraters zusammen.
type UebersichtDTO struct {
	ID              uint         `json:"id"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Rolle           models.Rolle `json:"rolle"`
	AktiveFaelle    int          `json:"aktiveFaelle"`
	KritischeFaelle int          `json:"kritischeFaelle"`
	Abschluesse     int          `json:"abschluesse"`
	Volumen         float64      `json:"volumen"`
}

func uebersichtDTO(b *models.Berater, kunden []models.Kunde) UebersichtDTO {
	dto := UebersichtDTO{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
		Rolle: b.Rolle,
	}
	for i := range kunden {
		k := &kunden[i]
		if k.Phase >= 10 {
			dto.Abschluesse++
		}
		if k.Phase >= phasen.Letzte {
			continue
		}
		dto.AktiveFaelle++
		dto.Volumen += k.Finanzierungsvolumen
		if engine.BerechneStatus(k) == models.StatusKritisch {
			dto.KritischeFaelle++
		}
	}
	return dto
}
