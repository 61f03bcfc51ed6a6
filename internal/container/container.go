package container

import (
	"fmt"

	"contestlens/analyzer/internal/analysis"
	"contestlens/analyzer/internal/client"
	"contestlens/analyzer/internal/config"
	"contestlens/analyzer/internal/repository"
	"contestlens/analyzer/internal/server"
	"contestlens/analyzer/internal/service"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Client     client.CodeforcesClient
	Repository repository.ProblemRepository
	Service    *service.Service
}

// New creates a container with all dependencies initialized, creating
// the database file if it does not exist yet. Used by the fetch path.
func New(cfg *config.Config) (*Container, error) {
	repo, err := repository.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return build(cfg, repo), nil
}

// NewExisting is like New but requires the database file to exist
// already. Analysis and summary paths use it so a missing fetch is
// reported as a not-found condition instead of an empty database.
func NewExisting(cfg *config.Config) (*Container, error) {
	repo, err := repository.OpenExisting(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	return build(cfg, repo), nil
}

func build(cfg *config.Config, repo repository.ProblemRepository) *Container {
	normalizer := analysis.NewNormalizer(cfg.Analysis.TagCategories)
	aggregator := analysis.NewAggregator(normalizer)
	cfClient := client.NewCodeforcesClient(cfg.Codeforces)

	return &Container{
		Config:     cfg,
		Client:     cfClient,
		Repository: repo,
		Service: service.NewService(
			repo,
			cfClient,
			aggregator,
			cfg.Analysis.Bands,
			cfg.Analysis.OutputPath,
		),
	}
}

// Server creates the HTTP server for the configured analysis output.
func Server(cfg *config.Config) *server.Server {
	return server.New(cfg.Server, cfg.Analysis.OutputPath)
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	return c.Repository.Close()
}
