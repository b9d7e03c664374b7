package constant

import "ai-humanizer-be/internal/entity"

// AiModels is the fixed provider→model catalog. It is not persisted and
// must stay identical to the console client's validation table.
var AiModels = map[entity.AiProvider][]string{
	entity.AiProviderOpenAI:    {"gpt-4o", "gpt-4o-mini", "gpt-4-turbo", "gpt-3.5-turbo"},
	entity.AiProviderAnthropic: {"claude-3.5-sonnet", "claude-3-opus", "claude-3-haiku"},
	entity.AiProviderGoogle:    {"gemini-1.5-pro", "gemini-1.5-flash", "gemini-1.0-pro"},
}

// IsValidModel reports whether model belongs to the provider's catalog.
func IsValidModel(provider entity.AiProvider, model string) bool {
	for _, m := range AiModels[provider] {
		if m == model {
			return true
		}
	}
	return false
}

// DefaultModel returns the first catalog model for the provider, used
// when a provider switch does not carry an explicit model.
func DefaultModel(provider entity.AiProvider) string {
	models := AiModels[provider]
	if len(models) == 0 {
		return ""
	}
	return models[0]
}

// IsValidProvider reports whether the provider is part of the catalog.
func IsValidProvider(provider entity.AiProvider) bool {
	_, ok := AiModels[provider]
	return ok
}
