package recommend

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

// ProviderResult is the raw outcome of one provider call, before the
// orchestrator's failure detector has judged it.
type ProviderResult struct {
	Recommendation *models.AIRecommendation
	Confidence     int
}

// Provider is a pluggable recommendation backend. The simulated in-process
// provider stands where a real HTTP integration would go; the orchestrator
// is indifferent to which is wired in.
type Provider interface {
	Generate(ctx context.Context, params *models.MissionParams) (*ProviderResult, error)
	Ping(ctx context.Context) (time.Duration, error)
}

// ErrServiceUnavailable is returned by the simulated provider on an
// injected transport failure.
var ErrServiceUnavailable = errors.New("recommendation service unavailable")

// SimulatedProviderConfig tunes the failure injection of the simulated
// provider.
type SimulatedProviderConfig struct {
	FailureRate float64       // probability of a transport failure per call
	MinLatency  time.Duration // lower bound of the simulated call latency
	MaxLatency  time.Duration // upper bound of the simulated call latency
}

// DefaultSimulatedProviderConfig mirrors the demo behaviour: 1-4s latency
// with roughly 30% of calls failing outright.
func DefaultSimulatedProviderConfig() SimulatedProviderConfig {
	return SimulatedProviderConfig{
		FailureRate: 0.3,
		MinLatency:  1 * time.Second,
		MaxLatency:  4 * time.Second,
	}
}

// SimulatedProvider fakes a remote recommendation service. The payload is
// produced by the deterministic generator; only latency, availability and
// the reported confidence are randomized, all drawn from a seedable source
// so tests are reproducible.
type SimulatedProvider struct {
	generator *Generator
	cfg       SimulatedProviderConfig

	mu   sync.Mutex
	rand *rand.Rand

	sleep func(ctx context.Context, d time.Duration) error
}

// NewSimulatedProvider creates a simulated provider over the given
// generator and random source.
func NewSimulatedProvider(generator *Generator, cfg SimulatedProviderConfig, rng *rand.Rand) *SimulatedProvider {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SimulatedProvider{
		generator: generator,
		cfg:       cfg,
		rand:      rng,
		sleep:     sleepContext,
	}
}

// Generate simulates one remote call: waits a random latency, fails with
// the configured probability, and otherwise returns the deterministic
// payload with a jittered confidence score.
func (p *SimulatedProvider) Generate(ctx context.Context, params *models.MissionParams) (*ProviderResult, error) {
	latency, failed, confidence := p.roll()

	if err := p.sleep(ctx, latency); err != nil {
		return nil, err
	}
	if failed {
		return nil, ErrServiceUnavailable
	}

	return &ProviderResult{
		Recommendation: p.generator.Generate(params),
		Confidence:     confidence,
	}, nil
}

// Ping simulates the health probe round trip. It shares the failure rate
// with Generate but answers quickly.
func (p *SimulatedProvider) Ping(ctx context.Context) (time.Duration, error) {
	p.mu.Lock()
	failed := p.rand.Float64() < p.cfg.FailureRate
	var latency time.Duration
	if p.cfg.MaxLatency > 0 {
		latency = time.Duration(p.rand.Int63n(int64(p.cfg.MaxLatency)))
	}
	p.mu.Unlock()

	if failed {
		return 0, ErrServiceUnavailable
	}
	return latency, nil
}

// roll draws latency, failure and confidence under the lock so concurrent
// requests do not race on the random source.
func (p *SimulatedProvider) roll() (time.Duration, bool, int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	span := int64(p.cfg.MaxLatency - p.cfg.MinLatency)
	latency := p.cfg.MinLatency
	if span > 0 {
		latency += time.Duration(p.rand.Int63n(span))
	}
	failed := p.rand.Float64() < p.cfg.FailureRate
	confidence := 50 + p.rand.Intn(46) // 50..95

	return latency, failed, confidence
}

// sleepContext sleeps for d or until the context is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
