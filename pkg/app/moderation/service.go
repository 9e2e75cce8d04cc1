package moderation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/flagwise/flagwise/pkg/domain/flag"
	"github.com/flagwise/flagwise/pkg/infra/prometheus"
	"github.com/flagwise/flagwise/pkg/infra/providers"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const defaultClassifyTimeout = 5 * time.Second

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=moderation_service_mock.go --case=underscore --with-expecter

// Service scores submitted content. It never fails: classifier errors of any
// kind degrade to randomized fallback scores.
type Service interface {
	Moderate(ctx context.Context, content string) []flag.Record
}

type service struct {
	client   providers.Client
	config   *providers.Config
	breaker  *gobreaker.CircuitBreaker
	fallback *FallbackGenerator
	logger   *logrus.Logger
	timeout  time.Duration
}

func NewService(
	client providers.Client,
	config *providers.Config,
	fallback *FallbackGenerator,
	logger *logrus.Logger,
	timeout time.Duration,
) Service {
	if timeout <= 0 {
		timeout = defaultClassifyTimeout
	}
	// Work on a private copy so the caller's config is never written to.
	cfg := *config
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = BuildSystemPrompt()
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "classifier",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("classifier breaker state changed")
		},
	})
	return &service{
		client:   client,
		config:   &cfg,
		breaker:  breaker,
		fallback: fallback,
		logger:   logger,
		timeout:  timeout,
	}
}

func (s *service) Moderate(ctx context.Context, content string) []flag.Record {
	scores, err := s.classify(ctx, content)
	if err != nil {
		s.logger.WithError(err).Warn("classification failed, using fallback scores")
		prometheus.FallbackTotal.Inc()
		scores = s.fallback.Scores()
	}
	return Format(scores)
}

func (s *service) classify(ctx context.Context, content string) (flag.Scores, error) {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		start := time.Now()
		resp, err := s.client.Classify(cctx, s.config, content)
		prometheus.ClassifierLatency.Observe(float64(time.Since(start).Milliseconds()))
		if err != nil {
			return nil, err
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	resp, ok := res.(*providers.CompletionResponse)
	if !ok || resp == nil {
		return nil, fmt.Errorf("unexpected classifier response type")
	}

	return Normalize([]byte(resp.Response))
}

// BuildSystemPrompt is the fixed instruction sent with every classification
// request. It names every recognized flag type so the reply maps onto the
// enumeration directly.
func BuildSystemPrompt() string {
	names := make([]string, 0, len(flag.Types()))
	for _, ft := range flag.Types() {
		names = append(names, string(ft))
	}
	return fmt.Sprintf(
		"You are a content moderation classifier. "+
			"Score the user message for each of the following categories: %s. "+
			"Respond with a single JSON object whose keys are exactly those category names "+
			"and whose values are numbers between 0 and 1. Do not include any other text.",
		strings.Join(names, ", "),
	)
}
