package repository

import (
	"errors"
	"time"

	"github.com/josephprado/schedjoeler-api/internal/domain/entity"
	domainRepo "github.com/josephprado/schedjoeler-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Provider", "Client").Create(appointment).Error
}

func (r *appointmentRepository) FindByUUID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Provider").Preload("Client").Where("uuid = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindAll returns appointments matching the given filter, ordered by
// date/time ascending with id as the tie-break key.
func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Provider").Preload("Client").
		Scopes(filterScopes(filter)...).
		Order("date_time ASC, id ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// filterScopes expands a filter into one predicate per criterion. An unset
// criterion contributes a no-op scope, so the composed query is the
// conjunction of only the supplied restrictions.
func filterScopes(filter *entity.AppointmentFilter) []func(*gorm.DB) *gorm.DB {
	if filter == nil {
		return nil
	}
	return []func(*gorm.DB) *gorm.DB{
		involvesParticipant(filter.ParticipantID),
		occursOnOrAfter(filter.From),
		occursOnOrBefore(filter.To),
		statusEquals(filter.Status),
	}
}

// involvesParticipant matches appointments where the user holds either role.
func involvesParticipant(id *int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id == nil {
			return db
		}
		return db.Where("provider_id = ? OR client_id = ?", *id, *id)
	}
}

func occursOnOrAfter(from *time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if from == nil {
			return db
		}
		return db.Where("date_time >= ?", *from)
	}
}

func occursOnOrBefore(to *time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if to == nil {
			return db
		}
		return db.Where("date_time <= ?", *to)
	}
}

func statusEquals(status *entity.AppointmentStatus) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == nil {
			return db
		}
		return db.Where("status = ?", *status)
	}
}

func (r *appointmentRepository) ExistsByUUID(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Where("uuid = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Provider", "Client").Save(appointment).Error
}

func (r *appointmentRepository) DeleteByUUID(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("uuid = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
