package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

// GetDB öffnet die Datenbankverbindung aus den DB_*-Umgebungsvariablen.
func GetDB() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	port, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		port = 5432 // Standard-PostgreSQL-Port
	}

	name := os.Getenv("DB_NAME")
	username := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	return ConnectDatabase(uint(port), host, name, username, password)
}
