package service

import (
	"context"
	"sync"
	"time"

	"ai-humanizer-be/internal/constant"
	"ai-humanizer-be/internal/dto"
	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/pkg/logger"
	"ai-humanizer-be/internal/repository/unitofwork"
	"ai-humanizer-be/pkg/admin/addon"
	"ai-humanizer-be/pkg/admin/dashboard"
	adminMapper "ai-humanizer-be/pkg/admin/mapper"
	"ai-humanizer-be/pkg/admin/plan"
	"ai-humanizer-be/pkg/admin/settings"
	"ai-humanizer-be/pkg/admin/user"

	"github.com/google/uuid"
)

type IAdminService interface {
	// Plans
	GetPlans(ctx context.Context) ([]*dto.PlanResponse, error)
	CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*dto.PlanResponse, error)
	UpdatePlan(ctx context.Context, id string, req dto.UpdatePlanRequest) (*dto.PlanResponse, error)

	// Token add-ons
	GetTokenAddons(ctx context.Context) ([]*dto.TokenAddonResponse, error)
	CreateTokenAddon(ctx context.Context, req dto.CreateTokenAddonRequest) (*dto.TokenAddonResponse, error)
	UpdateTokenAddon(ctx context.Context, id string, req dto.UpdateTokenAddonRequest) (*dto.TokenAddonResponse, error)

	// Users
	GetUsers(ctx context.Context, search string) ([]*dto.UserResponse, error)
	AddTokens(ctx context.Context, req dto.AddTokensRequest) (*dto.UserResponse, error)
	ToggleBlock(ctx context.Context, req dto.ToggleBlockRequest) (*dto.UserResponse, error)
	DisablePlan(ctx context.Context, req dto.DisablePlanRequest) (*dto.UserResponse, error)

	// Settings
	GetPaymentConfig(ctx context.Context) (*dto.PaymentConfigResponse, error)
	UpdatePaymentConfig(ctx context.Context, req dto.UpdatePaymentConfigRequest) (*dto.PaymentConfigResponse, error)
	GetAiConfig(ctx context.Context) (*dto.AIConfigResponse, error)
	UpdateAiConfig(ctx context.Context, req dto.UpdateAIConfigRequest) (*dto.AIConfigResponse, error)
	GetAiModels(ctx context.Context) (*dto.AIModelCatalogResponse, error)
	GetTokenRules(ctx context.Context) (*dto.TokenRulesResponse, error)
	UpdateTokenRules(ctx context.Context, req dto.UpdateTokenRulesRequest) (*dto.TokenRulesResponse, error)

	// Dashboard & audit
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	GetAuditLogs(ctx context.Context, limit int) ([]*dto.AuditLogResponse, error)
	GetSystemLogs(ctx context.Context, page, limit int, level string) ([]*dto.LogListResponse, error)
	GetSystemLogDetail(ctx context.Context, logId string) (*dto.LogDetailResponse, error)
}

type adminService struct {
	uowFactory      unitofwork.RepositoryFactory
	planManager     *plan.Manager
	addonManager    *addon.Manager
	userManager     *user.Manager
	settingsManager *settings.Manager
	aggregator      *dashboard.Aggregator
	publisher       IPublisherService
	auditLogLimit   int
	logger          logger.ILogger

	// One logical writer at a time. The console is a low-traffic
	// single-admin surface, so a coarse lock keeps partial updates and
	// counter merges race-free.
	mu sync.Mutex
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	planManager *plan.Manager,
	addonManager *addon.Manager,
	userManager *user.Manager,
	settingsManager *settings.Manager,
	aggregator *dashboard.Aggregator,
	publisher IPublisherService,
	auditLogLimit int,
	logger logger.ILogger,
) IAdminService {
	if auditLogLimit < 1 {
		auditLogLimit = 100
	}
	return &adminService{
		uowFactory:      uowFactory,
		planManager:     planManager,
		addonManager:    addonManager,
		userManager:     userManager,
		settingsManager: settingsManager,
		aggregator:      aggregator,
		publisher:       publisher,
		auditLogLimit:   auditLogLimit,
		logger:          logger,
	}
}

func (s *adminService) emit(ctx context.Context, action, entityType, entityId string, details map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	msg := dto.AuditEventMessage{
		Actor:      "admin",
		Action:     action,
		EntityType: entityType,
		EntityId:   entityId,
		Details:    details,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.PublishAdminEvent(ctx, msg); err != nil {
		s.logger.Error(constant.LogModuleAudit, "Failed to queue admin event", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}

// ----------------------------------------------------------------------------
// Plans
// ----------------------------------------------------------------------------

func (s *adminService) GetPlans(ctx context.Context) ([]*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	plans, err := s.planManager.FindAll(ctx, uow)
	if err != nil {
		return nil, err
	}
	return adminMapper.PlansToResponse(plans), nil
}

func (s *adminService) CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	created, err := s.planManager.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info(constant.LogModuleAdmin, "Created plan", map[string]interface{}{
		"planId": created.Id.String(),
		"name":   created.Name,
	})
	s.emit(ctx, entity.AuditActionPlanCreated, "plan", created.Id.String(), map[string]interface{}{
		"name": created.Name,
	})
	s.aggregator.Invalidate()

	return adminMapper.PlanToResponse(created), nil
}

func (s *adminService) UpdatePlan(ctx context.Context, id string, req dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	planId, err := uuid.Parse(id)
	if err != nil {
		return nil, dto.NewValidationError("id", "invalid plan id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	updated, err := s.planManager.Update(ctx, uow, planId, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info(constant.LogModuleAdmin, "Updated plan", map[string]interface{}{
		"planId": updated.Id.String(),
	})
	s.emit(ctx, entity.AuditActionPlanUpdated, "plan", updated.Id.String(), nil)
	s.aggregator.Invalidate()

	return adminMapper.PlanToResponse(updated), nil
}

// ----------------------------------------------------------------------------
// Token add-ons
// ----------------------------------------------------------------------------

func (s *adminService) GetTokenAddons(ctx context.Context) ([]*dto.TokenAddonResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	addons, err := s.addonManager.FindAll(ctx, uow)
	if err != nil {
		return nil, err
	}
	return adminMapper.AddonsToResponse(addons), nil
}

func (s *adminService) CreateTokenAddon(ctx context.Context, req dto.CreateTokenAddonRequest) (*dto.TokenAddonResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	created, err := s.addonManager.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info(constant.LogModuleAdmin, "Created token add-on", map[string]interface{}{
		"addonId": created.Id.String(),
		"name":    created.Name,
	})
	s.emit(ctx, entity.AuditActionAddonCreated, "token_addon", created.Id.String(), map[string]interface{}{
		"name": created.Name,
	})
	s.aggregator.Invalidate()

	return adminMapper.AddonToResponse(created), nil
}

func (s *adminService) UpdateTokenAddon(ctx context.Context, id string, req dto.UpdateTokenAddonRequest) (*dto.TokenAddonResponse, error) {
	addonId, err := uuid.Parse(id)
	if err != nil {
		return nil, dto.NewValidationError("id", "invalid add-on id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	updated, err := s.addonManager.Update(ctx, uow, addonId, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info(constant.LogModuleAdmin, "Updated token add-on", map[string]interface{}{
		"addonId": updated.Id.String(),
	})
	s.emit(ctx, entity.AuditActionAddonUpdated, "token_addon", updated.Id.String(), nil)
	s.aggregator.Invalidate()

	return adminMapper.AddonToResponse(updated), nil
}

// ----------------------------------------------------------------------------
// Users
// ----------------------------------------------------------------------------

func (s *adminService) GetUsers(ctx context.Context, search string) ([]*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := s.userManager.FindAll(ctx, uow, search)
	if err != nil {
		return nil, err
	}
	return adminMapper.UsersToResponse(users), nil
}

func (s *adminService) AddTokens(ctx context.Context, req dto.AddTokensRequest) (*dto.UserResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	updated, err := s.userManager.AddTokens(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	s.emit(ctx, entity.AuditActionTokensGranted, "user", updated.Id.String(), map[string]interface{}{
		"tokens": req.Tokens,
	})
	s.aggregator.Invalidate()

	return adminMapper.UserToResponse(updated), nil
}

func (s *adminService) ToggleBlock(ctx context.Context, req dto.ToggleBlockRequest) (*dto.UserResponse, error) {
	userId, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, dto.NewValidationError("userId", "invalid user id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	updated, err := s.userManager.ToggleBlock(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	s.logger.Info(constant.LogModuleAdmin, "Toggled user block", map[string]interface{}{
		"userId":  updated.Id.String(),
		"blocked": updated.Blocked,
	})
	s.emit(ctx, entity.AuditActionUserBlockToggled, "user", updated.Id.String(), map[string]interface{}{
		"blocked": updated.Blocked,
	})
	s.aggregator.Invalidate()

	return adminMapper.UserToResponse(updated), nil
}

func (s *adminService) DisablePlan(ctx context.Context, req dto.DisablePlanRequest) (*dto.UserResponse, error) {
	userId, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, dto.NewValidationError("userId", "invalid user id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	updated, err := s.userManager.DisablePlan(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	s.logger.Info(constant.LogModuleAdmin, "Disabled user plan", map[string]interface{}{
		"userId": updated.Id.String(),
	})
	s.emit(ctx, entity.AuditActionUserPlanDisabled, "user", updated.Id.String(), nil)
	s.aggregator.Invalidate()

	return adminMapper.UserToResponse(updated), nil
}

// ----------------------------------------------------------------------------
// Settings
// ----------------------------------------------------------------------------

func (s *adminService) GetPaymentConfig(ctx context.Context) (*dto.PaymentConfigResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	config, err := s.settingsManager.GetPaymentConfig(ctx, uow)
	if err != nil {
		return nil, err
	}
	return adminMapper.PaymentConfigToResponse(config), nil
}

func (s *adminService) UpdatePaymentConfig(ctx context.Context, req dto.UpdatePaymentConfigRequest) (*dto.PaymentConfigResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	config, err := s.settingsManager.UpdatePaymentConfig(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info(constant.LogModuleAdmin, "Updated payment config", map[string]interface{}{
		"mode": string(config.Mode),
	})
	s.emit(ctx, entity.AuditActionPaymentConfigUpdated, "payment_config", "", map[string]interface{}{
		"mode": string(config.Mode),
	})
	s.aggregator.Invalidate()

	return adminMapper.PaymentConfigToResponse(config), nil
}

func (s *adminService) GetAiConfig(ctx context.Context) (*dto.AIConfigResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	config, err := s.settingsManager.GetAiConfig(ctx, uow)
	if err != nil {
		return nil, err
	}
	return adminMapper.AiConfigToResponse(config), nil
}

func (s *adminService) UpdateAiConfig(ctx context.Context, req dto.UpdateAIConfigRequest) (*dto.AIConfigResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	config, err := s.settingsManager.UpdateAiConfig(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info(constant.LogModuleAdmin, "Updated AI config", map[string]interface{}{
		"provider": string(config.Provider),
		"model":    config.Model,
	})
	s.emit(ctx, entity.AuditActionAiConfigUpdated, "ai_config", "", map[string]interface{}{
		"provider": string(config.Provider),
		"model":    config.Model,
	})
	s.aggregator.Invalidate()

	return adminMapper.AiConfigToResponse(config), nil
}

func (s *adminService) GetAiModels(ctx context.Context) (*dto.AIModelCatalogResponse, error) {
	providers := make(map[string][]string, len(constant.AiModels))
	for provider, models := range constant.AiModels {
		catalog := make([]string, len(models))
		copy(catalog, models)
		providers[string(provider)] = catalog
	}
	return &dto.AIModelCatalogResponse{Providers: providers}, nil
}

func (s *adminService) GetTokenRules(ctx context.Context) (*dto.TokenRulesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rules, err := s.settingsManager.GetTokenRules(ctx, uow)
	if err != nil {
		return nil, err
	}
	return adminMapper.TokenRulesToResponse(rules), nil
}

func (s *adminService) UpdateTokenRules(ctx context.Context, req dto.UpdateTokenRulesRequest) (*dto.TokenRulesResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rules, err := s.settingsManager.UpdateTokenRules(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info(constant.LogModuleAdmin, "Updated token rules", map[string]interface{}{
		"tokensPerWord": rules.TokensPerWord,
	})
	s.emit(ctx, entity.AuditActionTokenRulesUpdated, "token_rules", "", nil)
	s.aggregator.Invalidate()

	return adminMapper.TokenRulesToResponse(rules), nil
}

// ----------------------------------------------------------------------------
// Dashboard & audit
// ----------------------------------------------------------------------------

func (s *adminService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.aggregator.GetStats(ctx, uow)
}

func (s *adminService) GetAuditLogs(ctx context.Context, limit int) ([]*dto.AuditLogResponse, error) {
	if limit < 1 || limit > 500 {
		limit = s.auditLogLimit
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	logs, err := uow.AuditLogRepository().FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return adminMapper.AuditLogsToResponse(logs), nil
}

func (s *adminService) GetSystemLogs(ctx context.Context, page, limit int, level string) ([]*dto.LogListResponse, error) {
	return s.aggregator.GetSystemLogs(ctx, page, limit, level)
}

func (s *adminService) GetSystemLogDetail(ctx context.Context, logId string) (*dto.LogDetailResponse, error) {
	return s.aggregator.GetLogDetail(ctx, logId)
}
