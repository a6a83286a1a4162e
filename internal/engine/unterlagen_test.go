package engine

import (
	"testing"

	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPflichtunterlagen_AngestellterEigennutzer(t *testing.T) {
	docs, err := Pflichtunterlagen(testKunde())
	require.NoError(t, err)
	assert.Contains(t, docs, "Gehaltsnachweise (letzte 3 Monate)")
	assert.Contains(t, docs, "Kaufvertragsentwurf")
	assert.NotContains(t, docs, "Mietvertrag (aktuell)")
}

func TestPflichtunterlagen_KapitalanlageDedupliziert(t *testing.T) {
	// MFH und Kapitalanlage fordern beide die Mieterliste; sie darf
	// trotzdem nur einmal in der Liste stehen.
	k := testKunde()
	k.Beschaeftigung = models.BeschaeftigungSelbststaendig
	k.Objekttyp = models.ObjektMFH
	k.Nutzungsart = models.NutzungKapitalanlage

	docs, err := Pflichtunterlagen(k)
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, d := range docs {
		seen[d]++
	}
	for d, n := range seen {
		assert.Equal(t, 1, n, "Dublette: %s", d)
	}
	assert.Equal(t, 1, seen["Mieterliste mit Miethöhen"])
	assert.Contains(t, docs, "BWA (aktuell, max. 3 Monate alt)")
	assert.Contains(t, docs, "Mietvertrag (aktuell)")
	assert.Len(t, docs, 18)
}

func TestPflichtunterlagen_EigennutzerOhneMietunterlagen(t *testing.T) {
	k := testKunde()
	k.Nutzungsart = models.NutzungEigennutzer

	docs, err := Pflichtunterlagen(k)
	require.NoError(t, err)
	assert.NotContains(t, docs, "Mietvertrag (aktuell)")
	assert.NotContains(t, docs, "Hausgeldabrechnung (bei ETW)")
}

func TestPflichtunterlagen_UnbekannteAuspraegungIstFehler(t *testing.T) {
	k := testKunde()
	k.Beschaeftigung = "freiberuflich"
	_, err := Pflichtunterlagen(k)
	assert.Error(t, err)

	k = testKunde()
	k.Objekttyp = "Schloss"
	_, err = Pflichtunterlagen(k)
	assert.Error(t, err)
}

func TestBerechneUnterlagenstatus(t *testing.T) {
	k := testKunde() // angestellt + EFH: 13 Pflichtunterlagen

	status, err := BerechneUnterlagenstatus(k)
	require.NoError(t, err)
	assert.Equal(t, 100, status.Vollstaendig)
	assert.Empty(t, status.Fehlend)

	// Fehlliste wird per Substring zugeordnet, Kurzform genügt
	k.FehlendeDokumente = []string{"Gehaltsnachweis"}
	status, err = BerechneUnterlagenstatus(k)
	require.NoError(t, err)
	assert.Equal(t, 92, status.Vollstaendig) // 12 von 13 vorhanden
	assert.Len(t, status.Pflicht, 13)
}

func TestBerechneUnterlagenstatus_UnbekannteAuspraegung(t *testing.T) {
	k := testKunde()
	k.Objekttyp = "Schloss"
	_, err := BerechneUnterlagenstatus(k)
	assert.Error(t, err)
}
