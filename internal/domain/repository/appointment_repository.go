package repository

import (
	"github.com/josephprado/schedjoeler-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByUUID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	ExistsByUUID(db *gorm.DB, id uuid.UUID) (bool, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	DeleteByUUID(db *gorm.DB, id uuid.UUID) (int64, error)
}
