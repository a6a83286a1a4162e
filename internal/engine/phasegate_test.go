package engine

import (
	"testing"

	"github.com/Brandea-ai/ck-immo-finanz/internal/phasen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruefePhasenwechsel_BedarfsklaerungOhneZahlen(t *testing.T) {
	k := testKunde()
	k.Phase = 2

	gate := PruefePhasenwechsel(k)
	assert.False(t, gate.CanAdvance)
	assert.Equal(t, []string{"Einkommen nicht erfasst", "Kaufpreis nicht erfasst"}, gate.Blockers)

	k.NettoEinkommen = fl(5000)
	k.Kaufpreis = fl(450000)
	gate = PruefePhasenwechsel(k)
	assert.True(t, gate.CanAdvance)
	assert.Empty(t, gate.Blockers)
}

func TestPruefePhasenwechsel_UnterlagenpruefungVollstaendig(t *testing.T) {
	k := testKunde()
	k.Phase = 3

	gate := PruefePhasenwechsel(k)
	assert.True(t, gate.CanAdvance)
	assert.Equal(t, []string{"Selbstauskunft erstellen", "Bonität prüfen"}, gate.NextActions)
}

func TestPruefePhasenwechsel_BankeinreichungBlockiert(t *testing.T) {
	k := testKunde()
	k.Phase = 8
	k.FehlendeDokumente = []string{"Kaufvertragsentwurf"}

	gate := PruefePhasenwechsel(k)
	assert.False(t, gate.CanAdvance)
	require.Len(t, gate.Blockers, 1)
	assert.Equal(t, "Unterlagen unvollständig für Bankeinreichung", gate.Blockers[0])
}

func TestPruefePhasenwechsel_NurDreiPhasenKennenBlocker(t *testing.T) {
	// Fall mit allem, was Blocker auslösen könnte: fehlende Unterlagen,
	// kein Einkommen, kein Kaufpreis. Nur die Phasen 2, 3 und 8 dürfen
	// daraus harte Blocker machen.
	for _, p := range phasen.Alle() {
		k := testKunde()
		k.Phase = p.ID
		k.FehlendeDokumente = []string{"Kontoauszug"}

		gate := PruefePhasenwechsel(k)
		switch p.ID {
		case 2, 3, 8:
			assert.NotEmpty(t, gate.Blockers, "Phase %d", p.ID)
		default:
			assert.Empty(t, gate.Blockers, "Phase %d", p.ID)
		}
	}
}

func TestPruefePhasenwechsel_JedePhaseHatNaechsteSchritte(t *testing.T) {
	for _, p := range phasen.Alle() {
		k := testKunde()
		k.Phase = p.ID

		gate := PruefePhasenwechsel(k)
		assert.Equal(t, p.ID, gate.Phase)
		assert.NotEmpty(t, gate.NextActions, "Phase %d ohne nächste Schritte", p.ID)
	}
}

func TestPruefePhasenwechsel_NachbetreuungIstTerminal(t *testing.T) {
	k := testKunde()
	k.Phase = phasen.Letzte

	gate := PruefePhasenwechsel(k)
	assert.False(t, gate.CanAdvance)
	assert.Empty(t, gate.Blockers)
}

func TestEmpfohleneAktion(t *testing.T) {
	k := testKunde()
	assert.Equal(t, "Erstgespräch terminieren", EmpfohleneAktion(k))

	// Blocker schlägt nächsten Schritt
	k.Phase = 2
	assert.Equal(t, "Einkommen nicht erfasst", EmpfohleneAktion(k))

	// außerhalb des Katalogs bleibt eine neutrale Anweisung
	k.Phase = 0
	assert.Equal(t, "Status prüfen", EmpfohleneAktion(k))
}
