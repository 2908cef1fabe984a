package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/AVII-VERSE/mediscan/internal/core/classify"
	"github.com/AVII-VERSE/mediscan/internal/core/domain"
	"github.com/AVII-VERSE/mediscan/internal/core/engine"
	"github.com/AVII-VERSE/mediscan/internal/core/normalize"
	"github.com/AVII-VERSE/mediscan/internal/core/ports"
)

// AnalyzeUseCase drives the full pipeline: classify, extract, normalize,
// analyze, aggregate. Each request is independent; nothing here holds
// mutable state across calls.
type AnalyzeUseCase struct {
	classifier   *classify.Classifier
	extractors   map[domain.SourceType]ports.FormatExtractor
	engine       *engine.Engine
	maxTextChars int
	minTextChars int
}

func NewAnalyzeUseCase(
	classifier *classify.Classifier,
	extractors map[domain.SourceType]ports.FormatExtractor,
	ruleEngine *engine.Engine,
	maxTextChars, minTextChars int,
) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		classifier:   classifier,
		extractors:   extractors,
		engine:       ruleEngine,
		maxTextChars: maxTextChars,
		minTextChars: minTextChars,
	}
}

func (uc *AnalyzeUseCase) AnalyzeFile(ctx context.Context, raw domain.RawInput) (*domain.AnalysisResult, error) {
	start := time.Now()
	trail := &progressTrail{}

	classified, err := uc.classifier.Classify(raw)
	if err != nil {
		return nil, err
	}
	trail.add("validation", 10, "Input validated successfully")
	trail.add("parsing", 20, "Parsing uploaded file: "+raw.Filename)

	extractor, ok := uc.extractors[classified.SourceType]
	if !ok {
		return nil, domain.NewValidationError(
			domain.CodeUnsupportedType,
			fmt.Sprintf("no extractor registered for source type %s", classified.SourceType))
	}

	extracted, err := extractor.ExtractText(ctx, raw.Content)
	if err != nil {
		return nil, domain.WrapError(domain.ErrExtraction, "extract text", err)
	}
	if strings.TrimSpace(extracted.Text) == "" {
		return nil, domain.NewExtractionError(
			domain.CodeNoTextExtracted, "no text content could be extracted from the document")
	}
	trail.add("parsing_complete", 40,
		fmt.Sprintf("Successfully parsed %s document", strings.ToUpper(string(classified.SourceType))))

	return uc.analyze(ctx, analyzeInput{
		rawText:    extracted.Text,
		sourceType: classified.SourceType,
		filename:   raw.Filename,
		fileSize:   int64(len(raw.Content)),
		pageCount:  extracted.PageCount,
	}, trail, start)
}

func (uc *AnalyzeUseCase) AnalyzeText(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	start := time.Now()
	trail := &progressTrail{}

	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError(domain.CodeEmptyInput, "text content is empty")
	}
	if len([]rune(text)) > uc.maxTextChars {
		return nil, domain.NewValidationError(
			domain.CodeOversized,
			fmt.Sprintf("text length exceeds maximum of %d characters", uc.maxTextChars))
	}
	trail.add("validation", 10, "Input validated successfully")
	trail.add("parsing", 20, "Processing text input")
	trail.add("parsing_complete", 40, "Text input validated successfully")

	return uc.analyze(ctx, analyzeInput{
		rawText:    text,
		sourceType: domain.SourceText,
		fileSize:   int64(len(text)),
	}, trail, start)
}

type analyzeInput struct {
	rawText    string
	sourceType domain.SourceType
	filename   string
	fileSize   int64
	pageCount  int
}

func (uc *AnalyzeUseCase) analyze(ctx context.Context, in analyzeInput, trail *progressTrail, start time.Time) (*domain.AnalysisResult, error) {
	text := normalize.Text(in.rawText, in.sourceType)
	if len(strings.TrimSpace(text)) < uc.minTextChars {
		return nil, domain.NewAnalysisError(
			domain.CodeTextTooShort,
			fmt.Sprintf("document contains fewer than %d characters of usable text", uc.minTextChars))
	}

	info := normalize.Inspect(text)
	doc := domain.NormalizedDocument{
		Text:             text,
		SourceType:       in.sourceType,
		Filename:         in.filename,
		PageCount:        in.pageCount,
		WordCount:        info.WordCount,
		LineCount:        info.LineCount,
		ParagraphCount:   info.ParagraphCount,
		HasTables:        info.HasTables,
		HasLists:         info.HasLists,
		MedicationBlocks: info.MedicationBlocks,
		ExtractedAt:      time.Now().UTC(),
	}

	trail.add("analysis", 50, "Analyzing medical content")
	report, err := uc.engine.Analyze(ctx, doc.Text)
	if err != nil {
		return nil, domain.WrapError(domain.ErrAnalysis, "rule engine", err)
	}
	trail.add("analysis_complete", 90, "Medical analysis completed successfully")
	trail.add("complete", 100, "Analysis complete and ready")

	result := aggregate(report, doc, in.fileSize, trail, start)

	slog.Info("analysis_complete",
		"source_type", doc.SourceType,
		"word_count", doc.WordCount,
		"medications", len(result.Medications),
		"recommendations", len(result.Recommendations),
		"alerts", len(result.Alerts),
		"duration_ms", result.Metadata.DurationMS,
	)
	return result, nil
}

// aggregate merges sub-extractor outputs into one result. A result is never
// silently content-free: when nothing at all was found, a single info alert
// says so.
func aggregate(report *engine.Report, doc domain.NormalizedDocument, fileSize int64, trail *progressTrail, start time.Time) *domain.AnalysisResult {
	alerts := report.Alerts
	if len(report.Medications) == 0 && len(report.Recommendations) == 0 && len(alerts) == 0 {
		alerts = []domain.Alert{{
			Level:    domain.AlertInfo,
			Message:  "No medical information detected in the document",
			Category: "General",
		}}
	}

	return &domain.AnalysisResult{
		Success:         true,
		Summary:         report.Summary,
		Medications:     report.Medications,
		Prescriptions:   report.Prescriptions,
		Schedule:        report.Schedule,
		Recommendations: report.Recommendations,
		Facilities:      report.Facilities,
		Alerts:          alerts,
		Insights:        report.Insights,
		Metadata: domain.ProcessingMetadata{
			DurationMS:     float64(time.Since(start).Microseconds()) / 1000.0,
			SourceType:     doc.SourceType,
			FileSizeBytes:  fileSize,
			PageCount:      doc.PageCount,
			WordCount:      len(strings.Fields(doc.Text)),
			ProcessedAt:    time.Now().UTC(),
			ProgressStates: trail.states,
		},
	}
}

// progressTrail is the append-only, emission-ordered checkpoint list.
type progressTrail struct {
	states []domain.ProgressState
}

func (t *progressTrail) add(stage string, progress int, message string) {
	t.states = append(t.states, domain.ProgressState{
		Stage:     stage,
		Progress:  progress,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}
