package bootstrap

import (
	"fmt"
	"time"

	"github.com/AVII-VERSE/mediscan/internal/config"
	"github.com/AVII-VERSE/mediscan/internal/core/classify"
	"github.com/AVII-VERSE/mediscan/internal/core/domain"
	"github.com/AVII-VERSE/mediscan/internal/core/engine"
	"github.com/AVII-VERSE/mediscan/internal/core/ports"
	"github.com/AVII-VERSE/mediscan/internal/core/usecase"
	"github.com/AVII-VERSE/mediscan/internal/infrastructure/extractor"
	"github.com/AVII-VERSE/mediscan/internal/infrastructure/extractor/ocr"
	"github.com/AVII-VERSE/mediscan/internal/infrastructure/extractor/pdfdoc"
	"github.com/AVII-VERSE/mediscan/internal/infrastructure/extractor/plaintext"
	"github.com/AVII-VERSE/mediscan/internal/infrastructure/knowledge/static"
	"github.com/AVII-VERSE/mediscan/internal/infrastructure/resilience"
	"github.com/AVII-VERSE/mediscan/internal/observability/metrics"
)

type App struct {
	Config config.Config

	Analyzer ports.DocumentAnalyzer
	Metrics  *metrics.HTTPServerMetrics
}

func New(cfg config.Config) (*App, error) {
	kb, err := static.NewSource()
	if err != nil {
		return nil, fmt.Errorf("init knowledge source: %w", err)
	}

	resilienceCfg := resilience.DefaultConfig()
	resilienceCfg.BreakerEnabled = cfg.BreakerEnabled
	executor := resilience.NewExecutor(resilienceCfg)

	gate := extractor.NewGate(
		cfg.ExtractWorkers,
		time.Duration(cfg.ExtractTimeoutSeconds)*time.Second,
		executor,
	)
	extractors := map[domain.SourceType]ports.FormatExtractor{
		domain.SourceText:  gate.Wrap("extract_text", plaintext.NewExtractor()),
		domain.SourcePDF:   gate.Wrap("extract_pdf", pdfdoc.NewExtractor()),
		domain.SourceImage: gate.Wrap("extract_image", ocr.NewExtractor(cfg.TesseractPath, cfg.TesseractLang)),
	}

	analyzer := usecase.NewAnalyzeUseCase(
		classify.New(cfg.MaxFileSizeBytes()),
		extractors,
		engine.New(kb),
		cfg.MaxTextChars,
		cfg.MinTextChars,
	)

	return &App{
		Config:   cfg,
		Analyzer: analyzer,
		Metrics:  metrics.NewHTTPServerMetrics("mediscan-api"),
	}, nil
}
