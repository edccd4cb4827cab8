package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bhrms/internal/delivery/dto"
	"bhrms/internal/domain/entity"
	"bhrms/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	reportCacheKey = "report:summary"
	reportCacheTTL = 30 * time.Second
)

type ReportUsecase interface {
	GetSummary(ctx context.Context) (*dto.ReportSummaryResponse, error)
}

type reportUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	referralRepo repository.ReferralRepository
	userRepo     repository.UserRepository
	facilityRepo repository.FacilityRepository
	redisClient  *redis.Client
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	referralRepo repository.ReferralRepository,
	userRepo repository.UserRepository,
	facilityRepo repository.FacilityRepository,
	redisClient *redis.Client,
) ReportUsecase {
	return &reportUsecase{
		db:           db,
		log:          log,
		referralRepo: referralRepo,
		userRepo:     userRepo,
		facilityRepo: facilityRepo,
		redisClient:  redisClient,
	}
}

// GetSummary computes the dashboard counters by fetching each collection
// and reducing in memory. Fine at single-municipality volume; the result
// is cached in Redis for the poll interval so the dashboard's 30-second
// refresh does not rescan on every hit. Cache failures fall through to a
// fresh computation.
func (u *reportUsecase) GetSummary(ctx context.Context) (*dto.ReportSummaryResponse, error) {
	cached, err := u.redisClient.Get(ctx, reportCacheKey).Result()
	if err == nil {
		var summary dto.ReportSummaryResponse
		decodeErr := json.Unmarshal([]byte(cached), &summary)
		if decodeErr == nil {
			return &summary, nil
		}
		u.log.Warnf("Failed to decode cached report summary: %+v", decodeErr)
	} else if !errors.Is(err, redis.Nil) {
		u.log.Warnf("Failed to read report summary cache: %+v", err)
	}

	summary, err := u.computeSummary(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(summary); err == nil {
		if err := u.redisClient.Set(ctx, reportCacheKey, data, reportCacheTTL).Err(); err != nil {
			u.log.Warnf("Failed to cache report summary: %+v", err)
		}
	}

	return summary, nil
}

func (u *reportUsecase) computeSummary(ctx context.Context) (*dto.ReportSummaryResponse, error) {
	db := u.db.WithContext(ctx)

	referrals, err := u.referralRepo.FindAll(db, nil)
	if err != nil {
		u.log.Warnf("Failed to fetch referrals for report: %+v", err)
		return nil, err
	}

	users, err := u.userRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to fetch users for report: %+v", err)
		return nil, err
	}

	facilities, err := u.facilityRepo.FindAll(db, "")
	if err != nil {
		u.log.Warnf("Failed to fetch facilities for report: %+v", err)
		return nil, err
	}

	return summarize(referrals, users, facilities), nil
}

// summarize reduces the fetched collections into the dashboard counters.
// Health workers share the referral surface with staff, so they count into
// the staff bucket.
func summarize(referrals []entity.Referral, users []entity.User, facilities []entity.Facility) *dto.ReportSummaryResponse {
	summary := &dto.ReportSummaryResponse{}

	summary.Referrals.Total = len(referrals)
	for _, r := range referrals {
		switch r.Status {
		case entity.ReferralStatusPending:
			summary.Referrals.Pending++
		case entity.ReferralStatusAccepted:
			summary.Referrals.Accepted++
		case entity.ReferralStatusCompleted:
			summary.Referrals.Completed++
		case entity.ReferralStatusCancelled:
			summary.Referrals.Cancelled++
		}
		if r.Priority == entity.ReferralPriorityEmergency && r.Status != entity.ReferralStatusCompleted {
			summary.Referrals.EmergencyOpen++
		}
	}

	summary.Users.Total = len(users)
	for _, user := range users {
		switch user.Role {
		case entity.RoleStaff, entity.RoleHealthWorker:
			summary.Users.Staff++
		case entity.RoleAdmin:
			summary.Users.Admin++
		}
	}

	summary.Facilities.Total = len(facilities)
	for _, f := range facilities {
		switch f.Type {
		case entity.FacilityTypeBHS:
			summary.Facilities.BHS++
		case entity.FacilityTypeHospital:
			summary.Facilities.Hospitals++
		}
	}

	return summary
}
