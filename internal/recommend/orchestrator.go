package recommend

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

// Config holds the retry and failure-detection parameters of the
// orchestrator. The defaults reproduce the demo behaviour; deployments may
// tune them through the environment.
type Config struct {
	MaxAttempts   int           // sequential provider attempts before fallback
	BackoffBase   time.Duration // wait before attempt 2 (doubles per attempt)
	MinConfidence int           // provider responses below this are failures
	CallTimeout   time.Duration // provider latency above this is a failure
	ProbeDegraded time.Duration // probe latency above this reports degraded
}

// DefaultConfig returns the demo constants: two attempts, 1s base backoff,
// confidence floor 60, 10s call timeout, 3s degraded threshold.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:   2,
		BackoffBase:   1 * time.Second,
		MinConfidence: 60,
		CallTimeout:   10 * time.Second,
		ProbeDegraded: 3 * time.Second,
	}
}

// AttemptRecorder receives the outcome of each recommendation request.
type AttemptRecorder interface {
	RecordRecommendation(source string, attempts int)
}

// Orchestrator drives recommendation generation through the provider with
// retry-and-backoff, downgrading to the local deterministic generator when
// the provider cannot be trusted. It never returns an error: every request
// terminates in a usable recommendation.
type Orchestrator struct {
	provider  Provider
	generator *Generator
	cfg       Config
	logger    *slog.Logger
	recorder  AttemptRecorder

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewOrchestrator wires the orchestrator over a provider and the local
// fallback generator.
func NewOrchestrator(provider Provider, generator *Generator, cfg Config, logger *slog.Logger) *Orchestrator {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Orchestrator{
		provider:  provider,
		generator: generator,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
		sleep:     sleepContext,
	}
}

// SetRecorder attaches an outcome recorder. A nil recorder disables
// recording.
func (o *Orchestrator) SetRecorder(recorder AttemptRecorder) {
	o.recorder = recorder
}

func (o *Orchestrator) record(source models.RecommendationSource, attempts int) {
	if o.recorder != nil {
		o.recorder.RecordRecommendation(string(source), attempts)
	}
}

// Recommend runs the attempt loop. maxAttempts overrides the configured
// attempt budget when positive. Attempts are strictly sequential: attempt
// N+1 starts only after attempt N has resolved and its backoff elapsed.
func (o *Orchestrator) Recommend(ctx context.Context, params *models.MissionParams, maxAttempts int) *models.AIRecommendation {
	if maxAttempts < 1 {
		maxAttempts = o.cfg.MaxAttempts
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		start := o.now()
		result, err := o.provider.Generate(ctx, params)
		latency := o.now().Sub(start)

		if reason := o.detectFailure(result, err, latency); reason != "" {
			o.logger.Warn("recommendation attempt failed",
				"attempt", attempt,
				"max_attempts", maxAttempts,
				"reason", reason,
				"latency", latency,
			)

			if attempt < maxAttempts {
				backoff := o.backoff(attempt)
				if err := o.sleep(ctx, backoff); err != nil {
					// Context cancelled mid-backoff: skip straight to fallback.
					break
				}
			}
			continue
		}

		recommendation := result.Recommendation
		confidence := result.Confidence
		recommendation.Metadata.GeneratedAs = models.SourceAIService
		recommendation.Metadata.ServiceStatus = string(models.StatusAvailable)
		recommendation.Metadata.Confidence = &confidence

		o.logger.Info("recommendation generated by provider",
			"attempt", attempt,
			"confidence", confidence,
			"latency", latency,
		)
		o.record(models.SourceAIService, attempt)
		return recommendation
	}

	o.record(models.SourceFallbackMock, maxAttempts)
	return o.fallback(params)
}

// detectFailure applies the failure detector: transport error, reported
// confidence below the floor, or latency above the call timeout.
func (o *Orchestrator) detectFailure(result *ProviderResult, err error, latency time.Duration) string {
	switch {
	case err != nil:
		return "provider_error"
	case result == nil || result.Recommendation == nil:
		return "empty_response"
	case result.Confidence < o.cfg.MinConfidence:
		return "low_confidence"
	case latency > o.cfg.CallTimeout:
		return "timeout"
	default:
		return ""
	}
}

// backoff returns base * 2^(attempt-1).
func (o *Orchestrator) backoff(attempt int) time.Duration {
	return time.Duration(float64(o.cfg.BackoffBase) * math.Pow(2, float64(attempt-1)))
}

// fallback synthesizes the recommendation locally. Exhausted retries are
// not an error state: the result is merely labelled as mock data.
func (o *Orchestrator) fallback(params *models.MissionParams) *models.AIRecommendation {
	o.logger.Info("recommendation attempts exhausted, using local generator",
		"mission_type", params.MissionType,
	)

	recommendation := o.generator.Generate(params)
	recommendation.Metadata.GeneratedAs = models.SourceFallbackMock
	recommendation.Metadata.ServiceStatus = string(models.StatusUnavailable)
	return recommendation
}

// ProbeStatus reports provider health: unavailable on any transport error,
// degraded above the latency threshold, available otherwise.
func (o *Orchestrator) ProbeStatus(ctx context.Context) models.ServiceStatus {
	latency, err := o.provider.Ping(ctx)
	if err != nil {
		return models.StatusUnavailable
	}
	if latency > o.cfg.ProbeDegraded {
		return models.StatusDegraded
	}
	return models.StatusAvailable
}
