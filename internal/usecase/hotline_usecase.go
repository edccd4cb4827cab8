package usecase

import (
	"context"
	"errors"

	"bhrms/internal/converter"
	"bhrms/internal/delivery/dto"
	"bhrms/internal/delivery/http/middleware"
	"bhrms/internal/domain/entity"
	"bhrms/internal/domain/repository"
	"bhrms/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrHotlineNotFound = errors.New("hotline not found")

type HotlineUsecase interface {
	CreateHotline(ctx context.Context, req *dto.CreateHotlineRequest) (*dto.HotlineResponse, error)
	GetAllHotlines(ctx context.Context, category entity.HotlineCategory) (*dto.HotlineListResponse, error)
	DeleteHotline(ctx context.Context, id uuid.UUID) error
}

type hotlineUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	hotlineRepo  repository.HotlineRepository
	auditService service.AuditService
}

func NewHotlineUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hotlineRepo repository.HotlineRepository,
	auditService service.AuditService,
) HotlineUsecase {
	return &hotlineUsecase{
		db:           db,
		log:          log,
		hotlineRepo:  hotlineRepo,
		auditService: auditService,
	}
}

func (u *hotlineUsecase) CreateHotline(ctx context.Context, req *dto.CreateHotlineRequest) (*dto.HotlineResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hotline := &entity.Hotline{
		ID:           uuid.New(),
		Name:         req.Name,
		Category:     entity.HotlineCategory(req.Category),
		Number:       req.Number,
		Description:  req.Description,
		Available24h: req.Available24h,
	}

	if err := u.hotlineRepo.Create(tx, hotline); err != nil {
		u.log.Warnf("Failed to create hotline: %+v", err)
		return nil, err
	}

	actor, _ := middleware.GetCredentialFromContext(ctx)
	if err := u.auditService.LogCreate(tx, actor, entity.AuditActionHotlineCreate, "hotline", hotline.ID.String(), map[string]string{
		"name":     hotline.Name,
		"category": string(hotline.Category),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Hotline created: id=%s, name=%s", hotline.ID, hotline.Name)
	return converter.HotlineToResponse(hotline), nil
}

func (u *hotlineUsecase) GetAllHotlines(ctx context.Context, category entity.HotlineCategory) (*dto.HotlineListResponse, error) {
	hotlines, err := u.hotlineRepo.FindAll(u.db.WithContext(ctx), category)
	if err != nil {
		u.log.Warnf("Failed to find hotlines: %+v", err)
		return nil, err
	}

	return &dto.HotlineListResponse{
		Hotlines: converter.HotlinesToResponses(hotlines),
		Total:    len(hotlines),
	}, nil
}

func (u *hotlineUsecase) DeleteHotline(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.hotlineRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete hotline %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrHotlineNotFound
	}

	actor, _ := middleware.GetCredentialFromContext(ctx)
	if err := u.auditService.LogDelete(tx, actor, entity.AuditActionHotlineDelete, "hotline", id.String()); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Hotline deleted: id=%s", id)
	return nil
}
