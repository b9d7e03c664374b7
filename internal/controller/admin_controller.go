package controller

import (
	"strconv"

	"ai-humanizer-be/internal/dto"
	"ai-humanizer-be/internal/pkg/serverutils"
	"ai-humanizer-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router, adminSecret string)

	GetDashboardStats(ctx *fiber.Ctx) error

	GetPlans(ctx *fiber.Ctx) error
	CreatePlan(ctx *fiber.Ctx) error
	UpdatePlan(ctx *fiber.Ctx) error

	GetTokenAddons(ctx *fiber.Ctx) error
	CreateTokenAddon(ctx *fiber.Ctx) error
	UpdateTokenAddon(ctx *fiber.Ctx) error

	GetUsers(ctx *fiber.Ctx) error
	AddTokens(ctx *fiber.Ctx) error
	ToggleBlock(ctx *fiber.Ctx) error
	DisableUserPlan(ctx *fiber.Ctx) error

	GetPaymentConfig(ctx *fiber.Ctx) error
	UpdatePaymentConfig(ctx *fiber.Ctx) error
	GetAiConfig(ctx *fiber.Ctx) error
	UpdateAiConfig(ctx *fiber.Ctx) error
	GetAiModels(ctx *fiber.Ctx) error
	GetTokenRules(ctx *fiber.Ctx) error
	UpdateTokenRules(ctx *fiber.Ctx) error

	GetAuditLogs(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{
		service: service,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router, adminSecret string) {
	admin := r.Group("/admin", serverutils.AdminAuthMiddleware(adminSecret))

	admin.Get("/dashboard", c.GetDashboardStats)

	admin.Get("/plans", c.GetPlans)
	admin.Post("/plans", c.CreatePlan)
	admin.Put("/plans/:id", c.UpdatePlan)

	admin.Get("/token-addons", c.GetTokenAddons)
	admin.Post("/token-addons", c.CreateTokenAddon)
	admin.Put("/token-addons/:id", c.UpdateTokenAddon)

	admin.Get("/users", c.GetUsers)
	admin.Post("/users/add-tokens", c.AddTokens)
	admin.Post("/users/block", c.ToggleBlock)
	admin.Post("/users/disable-plan", c.DisableUserPlan)

	// The console client sends POST for the config setters; PUT is kept
	// as an alias since the updates are full replaces.
	admin.Get("/payment-config", c.GetPaymentConfig)
	admin.Post("/payment-config", c.UpdatePaymentConfig)
	admin.Put("/payment-config", c.UpdatePaymentConfig)
	admin.Get("/ai-config", c.GetAiConfig)
	admin.Post("/ai-config", c.UpdateAiConfig)
	admin.Put("/ai-config", c.UpdateAiConfig)
	admin.Get("/ai-models", c.GetAiModels)
	admin.Get("/token-rules", c.GetTokenRules)
	admin.Post("/token-rules", c.UpdateTokenRules)
	admin.Put("/token-rules", c.UpdateTokenRules)

	admin.Get("/audit", c.GetAuditLogs)
	admin.Get("/logs", c.GetLogs)
	admin.Get("/logs/:id", c.GetLogDetail)
}

// ---------- Dashboard ----------

func (c *adminController) GetDashboardStats(ctx *fiber.Ctx) error {
	stats, err := c.service.GetDashboardStats(ctx.Context())
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(stats)
}

// ---------- Plans ----------

func (c *adminController) GetPlans(ctx *fiber.Ctx) error {
	plans, err := c.service.GetPlans(ctx.Context())
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(plans)
}

func (c *adminController) CreatePlan(ctx *fiber.Ctx) error {
	var req dto.CreatePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.WriteError(ctx, err)
	}

	created, err := c.service.CreatePlan(ctx.Context(), req)
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(created)
}

func (c *adminController) UpdatePlan(ctx *fiber.Ctx) error {
	var req dto.UpdatePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.WriteError(ctx, err)
	}

	updated, err := c.service.UpdatePlan(ctx.Context(), ctx.Params("id"), req)
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(updated)
}

// ---------- Token add-ons ----------

func (c *adminController) GetTokenAddons(ctx *fiber.Ctx) error {
	addons, err := c.service.GetTokenAddons(ctx.Context())
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(addons)
}

func (c *adminController) CreateTokenAddon(ctx *fiber.Ctx) error {
	var req dto.CreateTokenAddonRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.WriteError(ctx, err)
	}

	created, err := c.service.CreateTokenAddon(ctx.Context(), req)
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(created)
}

func (c *adminController) UpdateTokenAddon(ctx *fiber.Ctx) error {
	var req dto.UpdateTokenAddonRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.WriteError(ctx, err)
	}

	updated, err := c.service.UpdateTokenAddon(ctx.Context(), ctx.Params("id"), req)
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(updated)
}

// ---------- Users ----------

func (c *adminController) GetUsers(ctx *fiber.Ctx) error {
	users, err := c.service.GetUsers(ctx.Context(), ctx.Query("q"))
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(users)
}

func (c *adminController) AddTokens(ctx *fiber.Ctx) error {
	var req dto.AddTokensRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.WriteError(ctx, err)
	}

	updated, err := c.service.AddTokens(ctx.Context(), req)
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(updated)
}

func (c *adminController) ToggleBlock(ctx *fiber.Ctx) error {
	var req dto.ToggleBlockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.WriteError(ctx, err)
	}

	updated, err := c.service.ToggleBlock(ctx.Context(), req)
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(updated)
}

func (c *adminController) DisableUserPlan(ctx *fiber.Ctx) error {
	var req dto.DisablePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.WriteError(ctx, err)
	}

	updated, err := c.service.DisablePlan(ctx.Context(), req)
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(updated)
}

// ---------- Settings ----------

func (c *adminController) GetPaymentConfig(ctx *fiber.Ctx) error {
	config, err := c.service.GetPaymentConfig(ctx.Context())
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(config)
}

func (c *adminController) UpdatePaymentConfig(ctx *fiber.Ctx) error {
	var req dto.UpdatePaymentConfigRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.WriteError(ctx, err)
	}

	config, err := c.service.UpdatePaymentConfig(ctx.Context(), req)
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(config)
}

func (c *adminController) GetAiConfig(ctx *fiber.Ctx) error {
	config, err := c.service.GetAiConfig(ctx.Context())
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(config)
}

func (c *adminController) UpdateAiConfig(ctx *fiber.Ctx) error {
	var req dto.UpdateAIConfigRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.WriteError(ctx, err)
	}

	config, err := c.service.UpdateAiConfig(ctx.Context(), req)
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(config)
}

func (c *adminController) GetAiModels(ctx *fiber.Ctx) error {
	catalog, err := c.service.GetAiModels(ctx.Context())
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(catalog)
}

func (c *adminController) GetTokenRules(ctx *fiber.Ctx) error {
	rules, err := c.service.GetTokenRules(ctx.Context())
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(rules)
}

func (c *adminController) UpdateTokenRules(ctx *fiber.Ctx) error {
	var req dto.UpdateTokenRulesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return serverutils.WriteError(ctx, err)
	}

	rules, err := c.service.UpdateTokenRules(ctx.Context(), req)
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(rules)
}

// ---------- Audit & logs ----------

func (c *adminController) GetAuditLogs(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "100"))

	logs, err := c.service.GetAuditLogs(ctx.Context(), limit)
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(logs)
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))
	level := ctx.Query("level")

	logs, err := c.service.GetSystemLogs(ctx.Context(), page, limit, level)
	if err != nil {
		return serverutils.WriteError(ctx, err)
	}
	return ctx.JSON(logs)
}

func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	detail, err := c.service.GetSystemLogDetail(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "log not found")
	}
	return ctx.JSON(detail)
}
