package ai_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"roamai/pkg/memcache"
	"roamai/pkg/utils"
)

var Module = fx.Provide(provideAIClient, provideTrendCache)

func provideAIClient() utils.AIClientInterface {
	provider := utils.GetEnvWithDefault("AI_PROVIDER", "openai")

	var apiKey string
	switch provider {
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
	default:
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	client, err := utils.NewAIClient(provider, apiKey, utils.GetEnvWithDefault("AI_MODEL", ""))
	if err != nil {
		log.Fatalf("Failed to initialize AI client: %v", err)
	}

	return client
}

func provideTrendCache() memcache.TrendCacheStore {
	return memcache.NewTrendCache()
}
