package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bhrms/internal/converter"
	"bhrms/internal/delivery/dto"
	"bhrms/internal/delivery/http/middleware"
	"bhrms/internal/domain/entity"
	"bhrms/internal/domain/repository"
	"bhrms/internal/service"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCredentialExists = errors.New("user with this credential already exists")
	ErrInvalidRole      = errors.New("invalid role")
)

type UserUsecase interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetAllUsers(ctx context.Context) (*dto.UserListResponse, error)
	DeleteUser(ctx context.Context, credential string) error
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	redisClient  *redis.Client
	auditService service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	redisClient *redis.Client,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		redisClient:  redisClient,
		auditService: auditService,
	}
}

// CreateUser inserts a directory entry keyed by credential. The credential
// is the idempotency key: an existing record is never overwritten.
func (u *userUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.IsValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	existing, err := u.userRepo.FindByCredential(u.db.WithContext(ctx), req.Credential)
	if err != nil {
		u.log.Warnf("Failed to check existing credential: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrCredentialExists
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Credential: req.Credential,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Role:       req.Role,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		// Two admins racing on the same credential land here
		if isDuplicateKeyError(err, "usersBHRMS") {
			return nil, ErrCredentialExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	actor, _ := middleware.GetCredentialFromContext(ctx)
	if err := u.auditService.LogCreate(tx, actor, entity.AuditActionUserCreate, "user", user.Credential, map[string]string{
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"role":      user.Role,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("User created: credential=%s, role=%s", user.Credential, user.Role)
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetAllUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

// DeleteUser removes the directory entry and revokes any live sessions for
// it. Referrals attributed to the credential are intentionally untouched.
func (u *userUsecase) DeleteUser(ctx context.Context, credential string) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.userRepo.Delete(tx, credential)
	if err != nil {
		u.log.Warnf("Failed to delete user %s: %+v", credential, err)
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	actor, _ := middleware.GetCredentialFromContext(ctx)
	if err := u.auditService.LogDelete(tx, actor, entity.AuditActionUserDelete, "user", credential); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.revokeUserTokens(ctx, credential)

	u.log.Infof("User deleted: credential=%s", credential)
	return nil
}

// revokeUserTokens drops all Redis-held tokens for a credential. Failures
// are non-fatal: the keys expire on their own.
func (u *userUsecase) revokeUserTokens(ctx context.Context, credential string) {
	for _, pattern := range []string{
		fmt.Sprintf("access_token:%s:*", credential),
		fmt.Sprintf("refresh_token:%s:*", credential),
	} {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to list tokens for %s: %+v", credential, err)
			continue
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to revoke tokens for %s: %+v", credential, err)
			}
		}
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
