package mapper

import (
	"strings"

	"ai-humanizer-be/internal/dto"
	"ai-humanizer-be/internal/entity"
)

// PlanToResponse converts entity to plan response DTO
func PlanToResponse(p *entity.Plan) *dto.PlanResponse {
	if p == nil {
		return nil
	}
	return &dto.PlanResponse{
		Id:                 p.Id.String(),
		Name:               p.Name,
		TokenLimit:         p.TokenLimit,
		PriceINR:           p.PriceINR,
		PriceUSD:           p.PriceUSD,
		CurrencyVisibility: string(p.CurrencyVisibility),
		Active:             p.Active,
	}
}

// PlansToResponse converts multiple entities to plan response DTOs
func PlansToResponse(plans []*entity.Plan) []*dto.PlanResponse {
	res := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		res = append(res, PlanToResponse(p))
	}
	return res
}

// AddonToResponse converts entity to token add-on response DTO
func AddonToResponse(a *entity.TokenAddon) *dto.TokenAddonResponse {
	if a == nil {
		return nil
	}
	return &dto.TokenAddonResponse{
		Id:                 a.Id.String(),
		Name:               a.Name,
		ExtraTokens:        a.ExtraTokens,
		PriceINR:           a.PriceINR,
		PriceUSD:           a.PriceUSD,
		CurrencyVisibility: string(a.CurrencyVisibility),
		Active:             a.Active,
	}
}

// AddonsToResponse converts multiple entities to add-on response DTOs
func AddonsToResponse(addons []*entity.TokenAddon) []*dto.TokenAddonResponse {
	res := make([]*dto.TokenAddonResponse, 0, len(addons))
	for _, a := range addons {
		res = append(res, AddonToResponse(a))
	}
	return res
}

// UserToResponse converts entity to user response DTO
func UserToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Id:              u.Id.String(),
		Email:           u.Email,
		UserType:        string(u.UserType),
		PlanName:        u.PlanName,
		TokensUsed:      u.TokensUsed,
		TokensRemaining: u.TokensRemaining,
		PaymentStatus:   string(u.PaymentStatus),
		Blocked:         u.Blocked,
		JoinedAt:        u.JoinedAt.Format("2006-01-02"),
	}
}

// UsersToResponse converts multiple entities to user response DTOs
func UsersToResponse(users []*entity.User) []*dto.UserResponse {
	res := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, UserToResponse(u))
	}
	return res
}

// PaymentConfigToResponse converts entity to payment config response
// DTO with the secret masked
func PaymentConfigToResponse(c *entity.PaymentConfig) *dto.PaymentConfigResponse {
	if c == nil {
		return nil
	}
	return &dto.PaymentConfigResponse{
		RazorpayKeyId:     c.RazorpayKeyId,
		RazorpayKeySecret: MaskSecret(c.RazorpayKeySecret),
		Mode:              string(c.Mode),
		AllowedCurrency:   string(c.AllowedCurrency),
	}
}

// AiConfigToResponse converts entity to AI config response DTO with
// the API key masked
func AiConfigToResponse(c *entity.AiConfig) *dto.AIConfigResponse {
	if c == nil {
		return nil
	}
	return &dto.AIConfigResponse{
		Provider: string(c.Provider),
		ApiKey:   MaskSecret(c.ApiKey),
		Model:    c.Model,
		Enabled:  c.Enabled,
	}
}

// TokenRulesToResponse converts entity to token rules response DTO
func TokenRulesToResponse(r *entity.TokenRules) *dto.TokenRulesResponse {
	if r == nil {
		return nil
	}
	return &dto.TokenRulesResponse{
		GuestFreeTokens:    r.GuestFreeTokens,
		LoggedInFreeTokens: r.LoggedInFreeTokens,
		TokensPerWord:      r.TokensPerWord,
	}
}

// AuditLogToResponse converts entity to audit log response DTO
func AuditLogToResponse(l *entity.AuditLog) *dto.AuditLogResponse {
	if l == nil {
		return nil
	}
	return &dto.AuditLogResponse{
		Id:         l.Id.String(),
		Actor:      l.Actor,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityId:   l.EntityId,
		Details:    l.Details,
		CreatedAt:  l.CreatedAt,
	}
}

// AuditLogsToResponse converts multiple entities to audit log response DTOs
func AuditLogsToResponse(logs []*entity.AuditLog) []*dto.AuditLogResponse {
	res := make([]*dto.AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, AuditLogToResponse(l))
	}
	return res
}

// MaskSecret keeps the last four characters visible. Short secrets are
// fully masked.
func MaskSecret(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}
