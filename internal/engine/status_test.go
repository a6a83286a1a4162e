package engine

import (
	"testing"

	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBerechneStatus_FrischerFall(t *testing.T) {
	assert.Equal(t, models.StatusOK, BerechneStatus(testKunde()))
}

func TestBerechneStatus_WarnungDurchFehlendesDokument(t *testing.T) {
	k := testKunde()
	k.Phase = 2
	k.FehlendeDokumente = []string{"Kontoauszüge (letzte 3 Monate)"}

	assert.Equal(t, models.StatusWarnung, BerechneStatus(k))
}

func TestBerechneStatus_KritischAbDreiFehlendenDokumenten(t *testing.T) {
	k := testKunde()
	k.Phase = 2
	k.FehlendeDokumente = []string{"Personalausweis", "Arbeitsvertrag", "Renteninformation"}

	assert.Equal(t, models.StatusKritisch, BerechneStatus(k))
}

func TestBerechneStatus_KritischDurchStillstand(t *testing.T) {
	k := testKunde()
	k.Phase = 4
	k.TageInPhase = 5

	assert.Equal(t, models.StatusKritisch, BerechneStatus(k))
}

func TestBerechneStatus_KeineZeitregelAbPhase10(t *testing.T) {
	// Abschlussphasen dauern planmäßig lange; die Stillstandsregeln
	// greifen dort nicht.
	k := testKunde()
	k.Phase = 10
	k.TageInPhase = 20

	assert.Equal(t, models.StatusOK, BerechneStatus(k))
}

func TestBerechneStatus_EskaliertMonotonMitVerweildauer(t *testing.T) {
	rang := map[models.Status]int{
		models.StatusOK:       0,
		models.StatusWarnung:  1,
		models.StatusKritisch: 2,
	}

	k := testKunde()
	k.Phase = 3
	vorher := -1
	for tage := 0; tage <= 10; tage++ {
		k.TageInPhase = tage
		s := BerechneStatus(k)
		require.GreaterOrEqual(t, rang[s], vorher, "Status darf mit steigender Verweildauer nicht sinken (Tag %d)", tage)
		vorher = rang[s]
	}
}

// Der klassische Problemfall: Phase 3, zwei Unterlagen fehlen seit einer
// Woche. Alle drei Sichten (Flags, Status, Phasen-Gate) müssen zusammenpassen.
func TestBewertung_UnterlagenpruefungMitRueckstand(t *testing.T) {
	k := testKunde()
	k.Phase = 3
	k.TageInPhase = 7
	k.FehlendeDokumente = []string{"Gehaltsnachweis Dezember", "Kontoauszug"}

	flags := ErkenneRedFlags(k)
	ids := flagIDs(flags)
	assert.Contains(t, ids, "docs_overdue")

	assert.Equal(t, models.StatusKritisch, BerechneStatus(k))

	gate := PruefePhasenwechsel(k)
	assert.False(t, gate.CanAdvance)
	require.NotEmpty(t, gate.Blockers)
	assert.Equal(t, "2 Dokumente fehlen noch", gate.Blockers[0])
	assert.Equal(t, "2 Dokumente fehlen noch", EmpfohleneAktion(k))
}
