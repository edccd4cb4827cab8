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

var (
	ErrSameFacility      = errors.New("origin and destination facilities must be different")
	ErrReferralNotFound  = errors.New("referral not found")
	ErrIllegalTransition = errors.New("status transition not allowed")
	ErrSessionMissing    = errors.New("user not found in context")
)

type ReferralUsecase interface {
	CreateReferral(ctx context.Context, req *dto.CreateReferralRequest) (*dto.ReferralResponse, error)
	GetMyReferrals(ctx context.Context, status entity.ReferralStatus) (*dto.ReferralListResponse, error)
	GetAllReferrals(ctx context.Context, status entity.ReferralStatus, priority entity.ReferralPriority) (*dto.ReferralListResponse, error)
	SearchReferrals(ctx context.Context, patientName string) (*dto.ReferralListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, target entity.ReferralStatus) (*dto.ReferralResponse, error)
}

type referralUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	referralRepo repository.ReferralRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewReferralUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	referralRepo repository.ReferralRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) ReferralUsecase {
	return &referralUsecase{
		db:           db,
		log:          log,
		referralRepo: referralRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

// CreateReferral validates and persists a new referral. Status is always
// pending and attribution always comes from the session, never from the
// request body, so a client cannot spoof createdBy/createdByName.
func (u *referralUsecase) CreateReferral(ctx context.Context, req *dto.CreateReferralRequest) (*dto.ReferralResponse, error) {
	credential, ok := middleware.GetCredentialFromContext(ctx)
	if !ok {
		return nil, ErrSessionMissing
	}

	if req.FromFacility == req.ToFacility {
		return nil, ErrSameFacility
	}

	// Resolve the display name from storage, not from the client
	user, err := u.userRepo.FindByCredential(u.db.WithContext(ctx), credential)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", credential, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	referral := &entity.Referral{
		ID:             uuid.New(),
		PatientName:    req.PatientName,
		PatientAge:     *req.PatientAge,
		PatientGender:  req.PatientGender,
		ChiefComplaint: req.ChiefComplaint,
		Notes:          req.Notes,
		FromFacility:   req.FromFacility,
		ToFacility:     req.ToFacility,
		Priority:       entity.ReferralPriority(req.Priority),
		Status:         entity.ReferralStatusPending,
		CreatedBy:      user.Credential,
		CreatedByName:  user.FullName(),
	}

	if err := u.referralRepo.Create(tx, referral); err != nil {
		u.log.Warnf("Failed to create referral: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, credential, entity.AuditActionReferralCreate, "referral", referral.ID.String(), map[string]string{
		"fromFacility": referral.FromFacility,
		"toFacility":   referral.ToFacility,
		"priority":     string(referral.Priority),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Referral created: id=%s, from=%s, to=%s, priority=%s", referral.ID, referral.FromFacility, referral.ToFacility, referral.Priority)
	return converter.ReferralToResponse(referral), nil
}

// GetMyReferrals returns referrals created by the logged-in user
func (u *referralUsecase) GetMyReferrals(ctx context.Context, status entity.ReferralStatus) (*dto.ReferralListResponse, error) {
	credential, ok := middleware.GetCredentialFromContext(ctx)
	if !ok {
		return nil, ErrSessionMissing
	}

	referrals, err := u.referralRepo.FindAll(u.db.WithContext(ctx), &entity.ReferralFilter{
		Status:    status,
		CreatedBy: credential,
	})
	if err != nil {
		u.log.Warnf("Failed to find referrals for %s: %+v", credential, err)
		return nil, err
	}

	return &dto.ReferralListResponse{
		Referrals: converter.ReferralsToResponses(referrals),
		Total:     len(referrals),
	}, nil
}

// GetAllReferrals backs the triage dashboard. The client polls this every
// 30 seconds; it is a plain idempotent read.
func (u *referralUsecase) GetAllReferrals(ctx context.Context, status entity.ReferralStatus, priority entity.ReferralPriority) (*dto.ReferralListResponse, error) {
	referrals, err := u.referralRepo.FindAll(u.db.WithContext(ctx), &entity.ReferralFilter{
		Status:   status,
		Priority: priority,
	})
	if err != nil {
		u.log.Warnf("Failed to find referrals: %+v", err)
		return nil, err
	}

	return &dto.ReferralListResponse{
		Referrals: converter.ReferralsToResponses(referrals),
		Total:     len(referrals),
	}, nil
}

// SearchReferrals matches patient names case-insensitively by substring
func (u *referralUsecase) SearchReferrals(ctx context.Context, patientName string) (*dto.ReferralListResponse, error) {
	referrals, err := u.referralRepo.FindAll(u.db.WithContext(ctx), &entity.ReferralFilter{
		PatientName: patientName,
	})
	if err != nil {
		u.log.Warnf("Failed to search referrals: %+v", err)
		return nil, err
	}

	return &dto.ReferralListResponse{
		Referrals: converter.ReferralsToResponses(referrals),
		Total:     len(referrals),
	}, nil
}

// UpdateStatus applies a table-driven transition. The target is always the
// caller's choice; anything off the table is rejected and the stored row
// stays untouched. There is no version token: two admins racing on the
// same referral resolve last-writer-wins.
func (u *referralUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, target entity.ReferralStatus) (*dto.ReferralResponse, error) {
	credential, ok := middleware.GetCredentialFromContext(ctx)
	if !ok {
		return nil, ErrSessionMissing
	}

	referral, err := u.referralRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find referral %s: %+v", id, err)
		return nil, err
	}
	if referral == nil {
		return nil, ErrReferralNotFound
	}

	if !referral.CanTransitionTo(target) {
		return nil, ErrIllegalTransition
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.referralRepo.UpdateStatus(tx, id, target); err != nil {
		u.log.Warnf("Failed to update referral %s status: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.LogStatusChange(tx, credential, id.String(), referral.Status, target); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Referral status updated: id=%s, %s -> %s", id, referral.Status, target)

	updated, err := u.referralRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil || updated == nil {
		// Return the pre-image with the new status if reload fails
		referral.Status = target
		return converter.ReferralToResponse(referral), nil
	}
	return converter.ReferralToResponse(updated), nil
}
