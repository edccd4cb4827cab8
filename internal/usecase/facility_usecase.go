package usecase

import (
	"context"
	"errors"
	"strings"

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

var ErrFacilityNotFound = errors.New("facility not found")

type FacilityUsecase interface {
	CreateFacility(ctx context.Context, req *dto.CreateFacilityRequest) (*dto.FacilityResponse, error)
	GetAllFacilities(ctx context.Context, facilityType entity.FacilityType) (*dto.FacilityListResponse, error)
	DeleteFacility(ctx context.Context, id uuid.UUID) error
}

type facilityUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	facilityRepo repository.FacilityRepository
	auditService service.AuditService
}

func NewFacilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	facilityRepo repository.FacilityRepository,
	auditService service.AuditService,
) FacilityUsecase {
	return &facilityUsecase{
		db:           db,
		log:          log,
		facilityRepo: facilityRepo,
		auditService: auditService,
	}
}

func (u *facilityUsecase) CreateFacility(ctx context.Context, req *dto.CreateFacilityRequest) (*dto.FacilityResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	facility := &entity.Facility{
		ID:            uuid.New(),
		Name:          req.Name,
		Type:          entity.FacilityType(req.Type),
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		Services:      splitServices(req.Services),
		Capacity:      req.Capacity,
	}

	if err := u.facilityRepo.Create(tx, facility); err != nil {
		u.log.Warnf("Failed to create facility: %+v", err)
		return nil, err
	}

	actor, _ := middleware.GetCredentialFromContext(ctx)
	if err := u.auditService.LogCreate(tx, actor, entity.AuditActionFacilityCreate, "facility", facility.ID.String(), map[string]string{
		"name": facility.Name,
		"type": string(facility.Type),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Facility created: id=%s, name=%s, type=%s", facility.ID, facility.Name, facility.Type)
	return converter.FacilityToResponse(facility), nil
}

func (u *facilityUsecase) GetAllFacilities(ctx context.Context, facilityType entity.FacilityType) (*dto.FacilityListResponse, error) {
	facilities, err := u.facilityRepo.FindAll(u.db.WithContext(ctx), facilityType)
	if err != nil {
		u.log.Warnf("Failed to find facilities: %+v", err)
		return nil, err
	}

	return &dto.FacilityListResponse{
		Facilities: converter.FacilitiesToResponses(facilities),
		Total:      len(facilities),
	}, nil
}

func (u *facilityUsecase) DeleteFacility(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.facilityRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete facility %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrFacilityNotFound
	}

	actor, _ := middleware.GetCredentialFromContext(ctx)
	if err := u.auditService.LogDelete(tx, actor, entity.AuditActionFacilityDelete, "facility", id.String()); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Facility deleted: id=%s", id)
	return nil
}

// splitServices turns the comma-separated form input into a trimmed list,
// dropping empty entries. Duplicates are kept as typed.
func splitServices(raw string) entity.ServiceList {
	parts := strings.Split(raw, ",")
	services := make(entity.ServiceList, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			services = append(services, s)
		}
	}
	return services
}
