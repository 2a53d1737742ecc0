package repository

import (
	"github.com/josephprado/schedjoeler-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByUUID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
	ExistsByUUID(db *gorm.DB, id uuid.UUID) (bool, error)
	Update(db *gorm.DB, user *entity.User) error
	DeleteByUUID(db *gorm.DB, id uuid.UUID) (int64, error)
}
