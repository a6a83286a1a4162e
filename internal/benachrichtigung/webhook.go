package benachrichtigung

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/Brandea-ai/ck-immo-finanz/internal/engine"
)

// SendeStauAlarm meldet Staufälle an den konfigurierten Webhook
// (ALERT_WEBHOOK_URL). Ohne konfigurierte URL passiert nichts;
// Zustellfehler werden nur geloggt.
func SendeStauAlarm(warnungen []engine.StauWarnung) {
	url := os.Getenv("ALERT_WEBHOOK_URL")
	if url == "" {
		return
	}

	payload := map[string]interface{}{
		"meldung":   "Stau im Pipeline-Prozess erkannt",
		"anzahl":    len(warnungen),
		"warnungen": warnungen,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Fehler beim Senden des Webhooks: %v", err)
		return
	}
	defer resp.Body.Close()
}
