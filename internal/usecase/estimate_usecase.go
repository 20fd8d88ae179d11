package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"gravitas_estimator/internal/calc"
	"gravitas_estimator/internal/domain/catalog"
	"gravitas_estimator/internal/domain/entities"
	"gravitas_estimator/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrEstimateNotOwned      = errors.New("estimate does not belong to user")
	ErrInvalidEstimateID     = errors.New("invalid estimate id")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidProjectName    = errors.New("invalid project name")
	ErrInvalidMeasurements   = errors.New("invalid measurements")
	ErrProjectTypeRestricted = errors.New("project type requires a higher plan")
	ErrEstimateQuotaReached  = errors.New("monthly estimate limit reached")
	ErrPremiumRequired       = errors.New("premium plan required")
	ErrEmptyBulkBatch        = errors.New("bulk batch is empty")
	ErrInvalidBulkEntry      = errors.New("invalid bulk entry")
)

// IEstimateUseCase exposes the estimation operations:
//   - Calculate: stateless preview, nothing persisted, no quota consumed
//   - CreateEstimate: calculate and save, consuming one monthly slot
//   - CalculateBulk: premium-only multi-project totals
//   - GetByID / ListByUserID / DeleteByID over saved estimates

type IEstimateUseCase interface {
	Calculate(ctx context.Context, userID string, inputs entities.EstimateInputs) (entities.CalculationResult, error)
	CreateEstimate(ctx context.Context, userID string, inputs entities.EstimateInputs, notes string) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Estimate, error)
	DeleteByID(ctx context.Context, id string, userID string) error
	CalculateBulk(ctx context.Context, userID string, projects []entities.BulkProjectInput) (entities.BulkEstimateResult, error)
}

type EstimateUseCase struct {
	repo     interfaces.IEstimateRepository
	userRepo interfaces.IUserRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, userRepo interfaces.IUserRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, userRepo: userRepo}
}

func (u *EstimateUseCase) Calculate(ctx context.Context, userID string, inputs entities.EstimateInputs) (entities.CalculationResult, error) {
	user, err := u.resolveUser(ctx, userID)
	if err != nil {
		return entities.CalculationResult{}, err
	}
	if err := validateInputs(inputs); err != nil {
		return entities.CalculationResult{}, err
	}
	if err := checkProjectTypeTier(inputs.ProjectType, user.Tier); err != nil {
		return entities.CalculationResult{}, err
	}

	return calc.CalculateCompleteEstimate(inputs, isPremium(user)), nil
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, userID string, inputs entities.EstimateInputs, notes string) (entities.Estimate, error) {
	user, err := u.resolveUser(ctx, userID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if err := validateInputs(inputs); err != nil {
		return entities.Estimate{}, err
	}
	if err := checkProjectTypeTier(inputs.ProjectType, user.Tier); err != nil {
		return entities.Estimate{}, err
	}

	plan := entities.SubscriptionPlans[user.Tier]
	if plan.MaxEstimates > 0 && user.EstimatesUsedThisMonth >= plan.MaxEstimates {
		log.Printf("[estimate][usecase] quota reached user_id=%s tier=%s used=%d limit=%d",
			user.ID, user.Tier, user.EstimatesUsedThisMonth, plan.MaxEstimates)
		return entities.Estimate{}, ErrEstimateQuotaReached
	}

	result := calc.CalculateCompleteEstimate(inputs, isPremium(user))

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		ProjectName:  strings.TrimSpace(inputs.ProjectName),
		Location:     inputs.Location,
		ProjectType:  inputs.ProjectType,
		Measurements: inputs.Measurements,
		Result:       result,
		Status:       entities.EstimateStatusSaved,
		Notes:        strings.TrimSpace(notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}

	if _, err := u.userRepo.IncrementEstimatesUsed(ctx, user.ID); err != nil {
		log.Printf("[estimate][usecase] failed incrementing usage user_id=%s estimate_id=%s err=%v", user.ID, created.ID, err)
		return entities.Estimate{}, err
	}
	log.Printf("[estimate][usecase] estimate saved user_id=%s estimate_id=%s grand_total=%.2f", user.ID, created.ID, result.GrandTotal)
	return created, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Estimate, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	estimates, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	// The user_id index has no range key, so ordering happens here.
	sort.Slice(estimates, func(i, j int) bool {
		return estimates[i].CreatedAt.After(estimates[j].CreatedAt)
	})
	return estimates, nil
}

func (u *EstimateUseCase) DeleteByID(ctx context.Context, id string, userID string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e.ID == "" {
		return ErrEstimateNotFound
	}
	if e.UserID != userID {
		return ErrEstimateNotOwned
	}
	return u.repo.DeleteByID(ctx, id)
}

func (u *EstimateUseCase) CalculateBulk(ctx context.Context, userID string, projects []entities.BulkProjectInput) (entities.BulkEstimateResult, error) {
	user, err := u.resolveUser(ctx, userID)
	if err != nil {
		return entities.BulkEstimateResult{}, err
	}
	if !isPremium(user) {
		return entities.BulkEstimateResult{}, ErrPremiumRequired
	}
	if len(projects) == 0 {
		return entities.BulkEstimateResult{}, ErrEmptyBulkBatch
	}
	for _, p := range projects {
		if p.Area <= 0 || p.Type == "" {
			return entities.BulkEstimateResult{}, ErrInvalidBulkEntry
		}
	}

	return calc.CalculateBulkEstimate(projects, true), nil
}

// resolveUser loads the caller's account, provisioning a free-tier record on
// first sight and rolling the monthly counter over when a new calendar month
// has started since the last reset.
func (u *EstimateUseCase) resolveUser(ctx context.Context, userID string) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	now := time.Now().UTC()
	if user.ID == "" {
		log.Printf("[estimate][usecase] provisioning free-tier user user_id=%s", userID)
		return u.userRepo.Create(ctx, entities.User{
			ID:                userID,
			Tier:              catalog.TierFree,
			TierStatus:        entities.TierStatusActive,
			LastEstimateReset: now,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}

	if user.LastEstimateReset.Year() != now.Year() || user.LastEstimateReset.Month() != now.Month() {
		log.Printf("[estimate][usecase] monthly usage reset user_id=%s last_reset=%s", user.ID, user.LastEstimateReset.Format(time.RFC3339))
		return u.userRepo.ResetMonthlyUsage(ctx, user.ID, now)
	}
	return user, nil
}

func isPremium(user entities.User) bool {
	return user.Tier == catalog.TierPremium
}

func validateInputs(inputs entities.EstimateInputs) error {
	if strings.TrimSpace(inputs.ProjectName) == "" {
		return ErrInvalidProjectName
	}
	m := inputs.Measurements
	if m.Area < 0 || m.Length < 0 || m.Width < 0 || m.Height < 0 || m.Rooms < 0 || m.Floors < 0 {
		return ErrInvalidMeasurements
	}
	if m.Area == 0 && m.Length == 0 {
		return ErrInvalidMeasurements
	}
	return nil
}

func checkProjectTypeTier(projectType catalog.ProjectType, tier catalog.Tier) error {
	def, ok := catalog.FindProjectType(projectType)
	if !ok {
		// Unregistered types run through the general residential build-up
		// and carry no tier restriction.
		return nil
	}
	if !tier.AtLeast(def.Tier) {
		return ErrProjectTypeRestricted
	}
	return nil
}
