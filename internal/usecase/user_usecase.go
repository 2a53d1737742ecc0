package usecase

import (
	"context"
	"fmt"

	"github.com/josephprado/schedjoeler-api/internal/converter"
	"github.com/josephprado/schedjoeler-api/internal/delivery/dto"
	"github.com/josephprado/schedjoeler-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserUsecase interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	GetAllUsers(ctx context.Context) ([]dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	cache    *redis.Client
	userRepo repository.UserRepository
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cache *redis.Client,
	userRepo repository.UserRepository,
) UserUsecase {
	return &userUsecase{
		db:       db,
		log:      log,
		cache:    cache,
		userRepo: userRepo,
	}
}

func (u *userUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := converter.UserFromCreateRequest(req)
	if err := u.userRepo.Create(tx, user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	key := userCacheKey(id)
	var cached dto.UserResponse
	if cacheFetch(ctx, u.cache, u.log, key, &cached) {
		return &cached, nil
	}

	user, err := u.userRepo.FindByUUID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, notFoundUser(id)
	}

	response := converter.UserToResponse(user)
	cacheStore(ctx, u.cache, u.log, key, response)
	return response, nil
}

func (u *userUsecase) GetAllUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}
	return converter.UsersToResponses(users), nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByUUID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, notFoundUser(id)
	}

	converter.ApplyUserUpdate(user, req)

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	cacheInvalidate(ctx, u.cache, u.log, userCacheKey(id))
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := u.userRepo.ExistsByUUID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to check user existence: %+v", err)
		return err
	}
	if !exists {
		return notFoundUser(id)
	}

	affected, err := u.userRepo.DeleteByUUID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}
	if affected == 0 {
		// Existence check passed but nothing was removed: a concurrent
		// delete won the race.
		return fmt.Errorf("unable to delete user uuid=%s: %w", id, ErrDeleteFailed)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	cacheInvalidate(ctx, u.cache, u.log, userCacheKey(id))
	return nil
}
