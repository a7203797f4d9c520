package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/riskibarqy/competition-lookup/external/footballdata"
	"github.com/riskibarqy/competition-lookup/external/llmchat"
	"github.com/riskibarqy/competition-lookup/internal/config"
	"github.com/riskibarqy/competition-lookup/internal/interfaces/httpapi"
	"github.com/riskibarqy/competition-lookup/internal/platform/logging"
	"github.com/riskibarqy/competition-lookup/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *slog.Logger, appLogger *logging.Logger) (*http.Server, error) {
	if appLogger == nil {
		appLogger = logging.Default()
	}

	providerClient := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL:        cfg.FootballDataBaseURL,
		Token:          cfg.FootballDataToken,
		Timeout:        cfg.FootballDataTimeout,
		Logger:         appLogger,
		CircuitBreaker: cfg.FootballDataCircuit,
	})

	chatClient := llmchat.NewClient(llmchat.ClientConfig{
		BaseURL:   cfg.LLMBaseURL,
		APIKey:    cfg.LLMAPIKey,
		Model:     cfg.LLMModel,
		Timeout:   cfg.LLMTimeout,
		MaxTokens: cfg.LLMMaxTokens,
		Logger:    appLogger,
	})

	catalog := usecase.NewCatalogCache(providerClient)
	resolver := usecase.NewResolverService(chatClient, appLogger)
	lookupSvc := usecase.NewLookupService(catalog, resolver, providerClient, cfg.LookupMaxWorkers, appLogger)
	competitionSvc := usecase.NewCompetitionService(providerClient)

	handler := httpapi.NewHandler(lookupSvc, competitionSvc, appLogger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
