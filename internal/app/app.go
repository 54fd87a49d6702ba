package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ContentEngine/internal/config"
	"ContentEngine/internal/infrastructure/images"
	"ContentEngine/internal/infrastructure/llm"
	"ContentEngine/internal/infrastructure/scheduler"
	"ContentEngine/internal/infrastructure/storage"
	"ContentEngine/internal/infrastructure/trends"
	"ContentEngine/internal/logging"
	"ContentEngine/internal/ports"
	"ContentEngine/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	lifecycle *usecase.Lifecycle
	pipeline  *usecase.TrendPipeline
	assistant *usecase.Assistant
	driver    ports.Scheduler
}

// New builds a runnable application instance. It fails when a mandatory
// dependency (database, OpenAI credential) cannot be constructed.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	pool, err := storage.NewPool(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	generator, err := llm.NewOpenAIClient(cfg.OpenAI)
	if err != nil {
		return nil, fmt.Errorf("llm: %w", err)
	}

	articles := storage.NewArticleRepository(pool)
	plans := storage.NewPlanRepository(pool)
	knowledge := storage.NewKnowledgeRepository(pool)
	conversations := storage.NewConversationRepository(pool)

	aggregator := trends.NewAggregator([]ports.TrendSource{
		trends.NewRSSSource(cfg.Feeds, nil, logging.Component(baseLogger, "trends.rss")),
		trends.NewNewsSource(cfg.News),
	}, logging.Component(baseLogger, "trends"))

	imageChain := images.NewChain([]ports.ImageProvider{
		images.NewUnsplashProvider(cfg.Images.UnsplashAccessKey),
		images.NewPexelsProvider(cfg.Images.PexelsAPIKey),
	}, logging.Component(baseLogger, "images"))

	blogGen := usecase.NewGenerator(generator, articles, cfg.OpenAI.BlogModel,
		logging.Component(baseLogger, "generator"))
	retention := usecase.NewRetention(articles, logging.Component(baseLogger, "retention"))

	return &Application{
		cfg:       cfg,
		logger:    baseLogger,
		lifecycle: usecase.NewLifecycle(plans, articles, blogGen, logging.Component(baseLogger, "lifecycle")),
		pipeline: usecase.NewTrendPipeline(aggregator, imageChain, blogGen, retention,
			cfg.Blog.MaxArticles, logging.Component(baseLogger, "pipeline")),
		assistant: usecase.NewAssistant(knowledge, conversations, generator, cfg.OpenAI.ChatModel,
			cfg.Chatbot.MaxTokens, cfg.Chatbot.Temperature, logging.Component(baseLogger, "assistant")),
		driver: scheduler.NewTickerScheduler(cfg.Scheduler.CronExpression),
	}, nil
}

// Assistant exposes the chat use case for the HTTP layer.
func (a *Application) Assistant() *usecase.Assistant {
	return a.assistant
}

// Run starts the recurring content job and blocks until the context is done.
func (a *Application) Run(ctx context.Context) error {
	job := func(trigger time.Time) {
		a.runOnce(ctx, trigger)
	}

	if err := a.driver.Start(ctx, job); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	<-ctx.Done()
	return a.driver.Stop(context.Background())
}

func (a *Application) runOnce(ctx context.Context, trigger time.Time) {
	a.logger.Info("content job started", "trigger", trigger.In(a.cfg.Scheduler.Location()).Format(time.RFC3339))

	results, err := a.lifecycle.ProcessPendingPlans(ctx)
	if err != nil {
		a.logger.Error("plan processing failed", "error", err)
	} else {
		a.logger.Info("plans processed", "count", len(results))
	}

	if !a.cfg.Blog.AutoEnabled {
		return
	}

	created, err := a.pipeline.GenerateFromTrends(ctx, a.cfg.Blog.TrendArticles, false)
	if err != nil {
		a.logger.Error("trend generation failed", "error", err)
		return
	}
	a.logger.Info("trend articles generated", "count", len(created))
}
