package client

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"contestlens/analyzer/internal/config"
	"contestlens/analyzer/internal/domain"
)

// ProblemSet is the result of one problemset fetch: the usable problems
// plus the number of API entries skipped for missing identity.
type ProblemSet struct {
	Problems []domain.Problem
	Skipped  int
}

type CodeforcesClient interface {
	FetchProblems(ctx context.Context) (*ProblemSet, error)
}

type codeforcesClient struct {
	rl         ratelimit.Limiter
	baseURL    string
	httpClient *resty.Client
}

// NewCodeforcesClient creates a client for the public Codeforces API.
// No authentication is required for the problemset endpoint.
func NewCodeforcesClient(cfg config.CodeforcesConfig) CodeforcesClient {
	httpClient := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetHeader("User-Agent", "contest-lens/1.0").
		SetHeader("Accept", "application/json")

	rps := cfg.MaxRequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &codeforcesClient{
		rl:         ratelimit.New(rps),
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}
}

// problemsetResponse mirrors the Codeforces API envelope. Comment is
// only populated when Status != "OK".
type problemsetResponse struct {
	Status  string            `json:"status"`
	Comment string            `json:"comment,omitempty"`
	Result  *problemsetResult `json:"result,omitempty"`
}

type problemsetResult struct {
	Problems          []apiProblem   `json:"problems"`
	ProblemStatistics []apiStatistic `json:"problemStatistics"`
}

type apiProblem struct {
	ContestID int      `json:"contestId"`
	Index     string   `json:"index"`
	Name      string   `json:"name"`
	Rating    *int     `json:"rating,omitempty"`
	Tags      []string `json:"tags"`
}

type apiStatistic struct {
	ContestID   int    `json:"contestId"`
	Index       string `json:"index"`
	SolvedCount int    `json:"solvedCount"`
}

// FetchProblems retrieves the full problem set from the API and joins
// the solved-count statistics onto each problem by (contestId, index).
func (c *codeforcesClient) FetchProblems(ctx context.Context) (*ProblemSet, error) {
	url := fmt.Sprintf("%s/problemset.problems", c.baseURL)

	c.rl.Take()

	var payload problemsetResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to fetch problemset: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	if payload.Status != "OK" {
		return nil, fmt.Errorf("API returned status %q: %s", payload.Status, payload.Comment)
	}
	if payload.Result == nil {
		return nil, fmt.Errorf("API returned status OK but no result payload")
	}

	solved := make(map[string]int, len(payload.Result.ProblemStatistics))
	for _, s := range payload.Result.ProblemStatistics {
		key := fmt.Sprintf("%d/%s", s.ContestID, s.Index)
		solved[key] = s.SolvedCount
	}

	set := &ProblemSet{
		Problems: make([]domain.Problem, 0, len(payload.Result.Problems)),
	}
	for _, p := range payload.Result.Problems {
		if p.ContestID == 0 || p.Index == "" {
			set.Skipped++
			continue
		}
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		set.Problems = append(set.Problems, domain.Problem{
			ContestID:   p.ContestID,
			Index:       p.Index,
			Name:        p.Name,
			Rating:      p.Rating,
			Tags:        tags,
			SolvedCount: solved[fmt.Sprintf("%d/%s", p.ContestID, p.Index)],
		})
	}

	log.Infof("Fetched %d problems (%d statistics, %d skipped)",
		len(set.Problems), len(payload.Result.ProblemStatistics), set.Skipped)

	return set, nil
}
