package aktivitaet

import (
	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"gorm.io/gorm"
)

// Repository für das Fallprotokoll. Bewusst ohne Update/Delete:
// Aktivitäten sind append-only.
type Repository interface {
	Anlegen(db *gorm.DB, a *models.Aktivitaet) error
	ListeNachKunde(db *gorm.DB, kundeID uint) ([]models.Aktivitaet, error)
	FindeNachID(db *gorm.DB, id uint) (*models.Aktivitaet, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Anlegen(db *gorm.DB, a *models.Aktivitaet) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) ListeNachKunde(db *gorm.DB, kundeID uint) ([]models.Aktivitaet, error) {
	var list []models.Aktivitaet
	err := db.
		Where("kunde_id = ?", kundeID).
		Order("created_at asc").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) FindeNachID(db *gorm.DB, id uint) (*models.Aktivitaet, error) {
	var a models.Aktivitaet
	err := db.First(&a, id).Error
	return &a, err
}
