package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kapu/haengsi-web-go/internal/config"
	"github.com/kapu/haengsi-web-go/internal/service"
	"github.com/kapu/haengsi-web-go/internal/web"
)

// Container bundles the assembled services behind the HTTP surface.
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Server *web.Server
}

// Build assembles the provider clients, the poem service and the web server.
// The Gemini client is created exactly once here and shared by reference for
// the life of the process.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	modelManager, err := service.NewModelManager(ctx, service.ModelManagerConfig{
		GeminiAPIKey:   cfg.Gemini.APIKey,
		GeminiModel:    cfg.Gemini.Model,
		OpenAIAPIKey:   cfg.OpenAI.APIKey,
		OpenAIModel:    cfg.OpenAI.Model,
		EnableFallback: cfg.OpenAI.EnableFallback,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create model manager: %w", err)
	}

	poemService := service.NewPoemService(modelManager, cfg.Gemini.Model, logger)

	server, err := web.NewServer(poemService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create web server: %w", err)
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		Server: server,
	}, nil
}
