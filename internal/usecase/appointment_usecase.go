package usecase

import (
	"context"
	"fmt"

	"github.com/josephprado/schedjoeler-api/internal/converter"
	"github.com/josephprado/schedjoeler-api/internal/delivery/dto"
	"github.com/josephprado/schedjoeler-api/internal/domain/entity"
	"github.com/josephprado/schedjoeler-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, query *dto.ListAppointmentsQuery) ([]dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	cache           *redis.Client
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cache *redis.Client,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		cache:           cache,
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	provider, err := u.userRepo.FindByUUID(tx, req.Provider)
	if err != nil {
		u.log.Warnf("Failed to find provider: %+v", err)
		return nil, err
	}
	if provider == nil {
		return nil, notFoundUser(req.Provider)
	}

	client, err := u.userRepo.FindByUUID(tx, req.Client)
	if err != nil {
		u.log.Warnf("Failed to find client: %+v", err)
		return nil, err
	}
	if client == nil {
		return nil, notFoundUser(req.Client)
	}

	appointment := converter.AppointmentFromCreateRequest(req, provider, client)

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		// A participant deleted between the lookup and the insert trips
		// the foreign key instead of the lookup.
		if isForeignKeyError(err, "provider") {
			return nil, notFoundUser(req.Provider)
		}
		if isForeignKeyError(err, "client") {
			return nil, notFoundUser(req.Client)
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	key := appointmentCacheKey(id)
	var cached dto.AppointmentResponse
	if cacheFetch(ctx, u.cache, u.log, key, &cached) {
		return &cached, nil
	}

	appointment, err := u.appointmentRepo.FindByUUID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, notFoundAppointment(id)
	}

	response := converter.AppointmentToResponse(appointment)
	cacheStore(ctx, u.cache, u.log, key, response)
	return response, nil
}

// ListAppointments returns appointments matching the given criteria. A
// participant criterion requires the user to exist before any
// appointment query runs.
func (u *appointmentUsecase) ListAppointments(ctx context.Context, query *dto.ListAppointmentsQuery) ([]dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)
	filter := &entity.AppointmentFilter{
		From: query.From,
		To:   query.To,
	}

	if query.Status != nil {
		status, ok := entity.ParseAppointmentStatus(*query.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		filter.Status = &status
	}

	if query.User != nil {
		participant, err := u.userRepo.FindByUUID(db, *query.User)
		if err != nil {
			u.log.Warnf("Failed to find participant: %+v", err)
			return nil, err
		}
		if participant == nil {
			return nil, notFoundUser(*query.User)
		}
		filter.ParticipantID = &participant.ID
	}

	appointments, err := u.appointmentRepo.FindAll(db, filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByUUID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, notFoundAppointment(id)
	}

	// Resolve references first so a failed lookup aborts the whole update
	// before anything is written.
	if req.Provider != nil {
		provider, err := u.userRepo.FindByUUID(tx, *req.Provider)
		if err != nil {
			u.log.Warnf("Failed to find provider: %+v", err)
			return nil, err
		}
		if provider == nil {
			return nil, notFoundUser(*req.Provider)
		}
		appointment.ProviderID = provider.ID
		appointment.Provider = *provider
	}

	if req.Client != nil {
		client, err := u.userRepo.FindByUUID(tx, *req.Client)
		if err != nil {
			u.log.Warnf("Failed to find client: %+v", err)
			return nil, err
		}
		if client == nil {
			return nil, notFoundUser(*req.Client)
		}
		appointment.ClientID = client.ID
		appointment.Client = *client
	}

	converter.ApplyAppointmentUpdate(appointment, req)

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	cacheInvalidate(ctx, u.cache, u.log, appointmentCacheKey(id))
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := u.appointmentRepo.ExistsByUUID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to check appointment existence: %+v", err)
		return err
	}
	if !exists {
		return notFoundAppointment(id)
	}

	affected, err := u.appointmentRepo.DeleteByUUID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if affected == 0 {
		return fmt.Errorf("unable to delete appointment uuid=%s: %w", id, ErrDeleteFailed)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	cacheInvalidate(ctx, u.cache, u.log, appointmentCacheKey(id))
	return nil
}
