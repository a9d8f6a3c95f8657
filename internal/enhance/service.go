// Package enhance rewrites resumes and portfolio project descriptions with a generative model.
package enhance

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "portfolioai/internal/errors"
	"portfolioai/internal/model"
)

// Config tunes calls to the model.
type Config struct {
	// Timeout bounds each model call. Zero means no extra deadline.
	Timeout time.Duration
	// Concurrency is the number of project descriptions rewritten at once.
	// Values below 2 process projects one at a time in order.
	Concurrency int
}

// Service runs enhancement prompts against a Generator.
type Service struct {
	gen Generator
	cfg Config
}

// NewService creates a new enhancement service.
func NewService(gen Generator, cfg Config) *Service {
	return &Service{gen: gen, cfg: cfg}
}

// EnhanceResume returns the model's rewrite of resumeText verbatim.
func (s *Service) EnhanceResume(ctx context.Context, resumeText string) (string, error) {
	text, err := s.generate(ctx, resumePrompt(resumeText))
	if err != nil {
		return "", &apperrors.EnhancementError{Op: "resume", Err: err}
	}
	return text, nil
}

// EnhancePortfolio returns a copy of p whose project descriptions were rewritten.
// Either every project is rewritten or an error is returned and nothing is.
func (s *Service) EnhancePortfolio(ctx context.Context, p model.Portfolio) (*model.Portfolio, error) {
	out := p.Clone()
	descriptions := make([]string, len(out.Projects))

	if s.cfg.Concurrency < 2 {
		for i, project := range out.Projects {
			desc, err := s.enhanceProject(ctx, project)
			if err != nil {
				return nil, err
			}
			descriptions[i] = desc
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.cfg.Concurrency)
		for i, project := range out.Projects {
			g.Go(func() error {
				desc, err := s.enhanceProject(gctx, project)
				if err != nil {
					return err
				}
				descriptions[i] = desc
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	for i := range out.Projects {
		out.Projects[i].ProjectDescription = descriptions[i]
	}
	return &out, nil
}

func (s *Service) enhanceProject(ctx context.Context, project model.Project) (string, error) {
	text, err := s.generate(ctx, projectPrompt(project))
	if err != nil {
		return "", &apperrors.EnhancementError{Op: "portfolio", Err: err}
	}
	return strings.TrimSpace(text), nil
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	return s.gen.Generate(ctx, prompt)
}
