package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"contestlens/analyzer/internal/analysis"
	"contestlens/analyzer/internal/client"
	"contestlens/analyzer/internal/domain"
	"contestlens/analyzer/internal/repository"
)

// Service orchestrates the fetch and analysis pipelines on top of the
// repository, the API client and the aggregation core.
type Service struct {
	repository repository.ProblemRepository
	client     client.CodeforcesClient
	aggregator *analysis.Aggregator
	bands      []domain.RatingBand
	outputPath string
}

func NewService(
	repository repository.ProblemRepository,
	client client.CodeforcesClient,
	aggregator *analysis.Aggregator,
	bands []domain.RatingBand,
	outputPath string,
) *Service {
	return &Service{
		repository: repository,
		client:     client,
		aggregator: aggregator,
		bands:      bands,
		outputPath: outputPath,
	}
}

// FetchReport summarizes one fetch-and-store run.
type FetchReport struct {
	Fetched int
	Saved   int
	Skipped int
}

// FetchAndStore pulls the full problem set from the API and upserts it
// into the database.
func (s *Service) FetchAndStore(ctx context.Context) (*FetchReport, error) {
	set, err := s.client.FetchProblems(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch problemset: %w", err)
	}

	saved, err := s.repository.SaveProblems(ctx, set.Problems)
	if err != nil {
		return nil, fmt.Errorf("store problems: %w", err)
	}

	log.Infof("Stored %d problems in database", saved)
	if set.Skipped > 0 {
		log.Warnf("Skipped %d problems (missing contest/index)", set.Skipped)
	}

	return &FetchReport{
		Fetched: len(set.Problems),
		Saved:   saved,
		Skipped: set.Skipped,
	}, nil
}

// Analyze loads every rated problem, aggregates each configured band,
// derives the roadmap and writes the export document to the configured
// output path.
func (s *Service) Analyze(ctx context.Context) (*domain.Report, error) {
	problems, err := s.repository.LoadRated(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rated problems: %w", err)
	}
	log.Infof("Loaded %d rated problems", len(problems))

	report := &domain.Report{
		Bands: s.aggregator.AnalyzeAll(problems, s.bands),
	}
	report.Roadmap = analysis.DeriveRoadmap(report.Bands)

	export := analysis.BuildExport(report.Bands)
	if err := analysis.WriteExport(s.outputPath, export); err != nil {
		return nil, fmt.Errorf("write analysis export: %w", err)
	}
	log.Infof("Analysis exported to %s", s.outputPath)

	return report, nil
}
