// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

package recommend

import (
	"fmt"
	"math"
	"time"
)

// weightTolerance is the allowed drift when checking that weight sets sum to 1.0.
const weightTolerance = 1e-9

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Content contains parameters for survey-based content scoring.
	Content ContentConfig `json:"content"`

	// Neighbors contains parameters for the KNN neighbor search.
	Neighbors NeighborConfig `json:"neighbors"`

	// Collaborative contains parameters for neighbor-based item scoring.
	Collaborative CollaborativeConfig `json:"collaborative"`

	// Hybrid contains the activity-tiered weighting policy.
	Hybrid HybridConfig `json:"hybrid"`

	// Breaker contains circuit breaker settings for the collaborative stage.
	Breaker BreakerConfig `json:"breaker"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`
}

// ContentWeights defines the contribution of each content sub-score.
// Unlike ensemble weights these are not normalized: they must sum to 1.0
// so that a perfect match maps to a score of exactly 100.
type ContentWeights struct {
	// Location weights the indoor/outdoor fit.
	// Default: 0.25.
	Location float64 `json:"location"`

	// Sociality weights the social/individual fit.
	// Default: 0.25.
	Sociality float64 `json:"sociality"`

	// Creativity weights the creative category fit.
	// Default: 0.20.
	Creativity float64 `json:"creativity"`

	// Physicality weights the physical category fit.
	// Default: 0.20.
	Physicality float64 `json:"physicality"`

	// Budget weights the cost fit.
	// Default: 0.05.
	Budget float64 `json:"budget"`

	// Difficulty weights the difficulty fit.
	// Default: 0.05.
	Difficulty float64 `json:"difficulty"`
}

// Sum returns the total of all sub-score weights.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w ContentWeights) Sum() float64 {
	return w.Location + w.Sociality + w.Creativity + w.Physicality + w.Budget + w.Difficulty
}

// ContentConfig contains parameters for content-based scoring.
type ContentConfig struct {
	// Weights are the sub-score weights.
	Weights ContentWeights `json:"weights"`

	// ReasonThreshold is the preference level above which an axis
	// produces a human-readable reason.
	// Default: 0.6.
	ReasonThreshold float64 `json:"reason_threshold"`

	// TopN is the number of content results handed to the combiner.
	// Default: 10.
	TopN int `json:"top_n"`
}

// NeighborConfig contains parameters for the neighbor search.
type NeighborConfig struct {
	// K is the number of nearest neighbors to keep.
	// Default: 5.
	K int `json:"k"`

	// CandidatePoolSize bounds how many other users are compared per request.
	// Default: 100.
	CandidatePoolSize int `json:"candidate_pool_size"`

	// Workers bounds how many candidate vectors are built concurrently.
	// Default: 8.
	Workers int `json:"workers"`
}

// StatusBoosts are the multipliers applied to a neighbor's contribution
// based on how far the neighbor progressed with an item.
type StatusBoosts struct {
	// Completed applies to items the neighbor finished.
	// Default: 1.5.
	Completed float64 `json:"completed"`

	// Learning applies to items the neighbor is currently learning.
	// Default: 1.2.
	Learning float64 `json:"learning"`

	// Other applies to every other status.
	// Default: 1.0.
	Other float64 `json:"other"`
}

// CollaborativeConfig contains parameters for collaborative scoring.
type CollaborativeConfig struct {
	// TopN is the number of collaborative results handed to the combiner.
	// Default: 10.
	TopN int `json:"top_n"`

	// Boosts are the per-status multipliers.
	Boosts StatusBoosts `json:"boosts"`
}

// TierWeights is a (content, collaborative) weight pair.
type TierWeights struct {
	// Content is the content-based weight.
	Content float64 `json:"content"`

	// Collaborative is the collaborative weight.
	Collaborative float64 `json:"collaborative"`
}

// HybridConfig contains the activity-dependent weighting policy.
type HybridConfig struct {
	// WarmingThreshold is the activity count at which a user leaves cold start.
	// Default: 10.
	WarmingThreshold int `json:"warming_threshold"`

	// EstablishedThreshold is the activity count at which both signals weigh equally.
	// Default: 50.
	EstablishedThreshold int `json:"established_threshold"`

	// ColdStart is used below WarmingThreshold.
	// Default: 0.7 / 0.3.
	ColdStart TierWeights `json:"cold_start"`

	// Warming is used below EstablishedThreshold.
	// Default: 0.6 / 0.4.
	Warming TierWeights `json:"warming"`

	// Established is used at or above EstablishedThreshold.
	// Default: 0.5 / 0.5.
	Established TierWeights `json:"established"`

	// MaxReasons caps the reasons attached to a recommendation.
	// Default: 3.
	MaxReasons int `json:"max_reasons"`
}

// BreakerConfig contains circuit breaker parameters for the collaborative stage.
type BreakerConfig struct {
	// Enabled turns the breaker on. When disabled the stage is called directly.
	// Default: true.
	Enabled bool `json:"enabled"`

	// MaxRequests is the number of trial requests allowed while half-open.
	// Default: 3.
	MaxRequests uint32 `json:"max_requests"`

	// Interval is the closed-state window after which counts reset.
	// Default: 1m.
	Interval time.Duration `json:"interval"`

	// Timeout is how long the breaker stays open before probing again.
	// Default: 30s.
	Timeout time.Duration `json:"timeout"`

	// MinRequests is the minimum sample before the breaker may trip.
	// Default: 10.
	MinRequests uint32 `json:"min_requests"`

	// FailureRatio is the failure rate that trips the breaker.
	// Default: 0.6.
	FailureRatio float64 `json:"failure_ratio"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultTopN is used when the caller does not ask for a size.
	// Default: 6.
	DefaultTopN int `json:"default_top_n"`

	// MaxTopN is the largest list a caller may request.
	// Default: 50.
	MaxTopN int `json:"max_top_n"`

	// RequestTimeout bounds a single recommendation request.
	// Default: 10s.
	RequestTimeout time.Duration `json:"request_timeout"`
}

// DefaultConfig returns a configuration with the reference weighting.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{
			Weights: ContentWeights{
				Location:    0.25,
				Sociality:   0.25,
				Creativity:  0.20,
				Physicality: 0.20,
				Budget:      0.05,
				Difficulty:  0.05,
			},
			ReasonThreshold: 0.6,
			TopN:            10,
		},
		Neighbors: NeighborConfig{
			K:                 5,
			CandidatePoolSize: 100,
			Workers:           8,
		},
		Collaborative: CollaborativeConfig{
			TopN: 10,
			Boosts: StatusBoosts{
				Completed: 1.5,
				Learning:  1.2,
				Other:     1.0,
			},
		},
		Hybrid: HybridConfig{
			WarmingThreshold:     10,
			EstablishedThreshold: 50,
			ColdStart:            TierWeights{Content: 0.7, Collaborative: 0.3},
			Warming:              TierWeights{Content: 0.6, Collaborative: 0.4},
			Established:          TierWeights{Content: 0.5, Collaborative: 0.5},
			MaxReasons:           3,
		},
		Breaker: BreakerConfig{
			Enabled:      true,
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      30 * time.Second,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
		Limits: LimitsConfig{
			DefaultTopN:    6,
			MaxTopN:        50,
			RequestTimeout: 10 * time.Second,
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if sum := c.Content.Weights.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("content.weights must sum to 1.0, got %f", sum)
	}
	if c.Content.ReasonThreshold < 0 || c.Content.ReasonThreshold > 1 {
		return fmt.Errorf("content.reason_threshold must be in [0, 1], got %f", c.Content.ReasonThreshold)
	}
	if c.Content.TopN < 1 {
		return fmt.Errorf("content.top_n must be positive, got %d", c.Content.TopN)
	}

	if c.Neighbors.K < 1 {
		return fmt.Errorf("neighbors.k must be positive, got %d", c.Neighbors.K)
	}
	if c.Neighbors.CandidatePoolSize < 1 {
		return fmt.Errorf("neighbors.candidate_pool_size must be positive, got %d", c.Neighbors.CandidatePoolSize)
	}
	if c.Neighbors.Workers < 1 {
		return fmt.Errorf("neighbors.workers must be positive, got %d", c.Neighbors.Workers)
	}

	if c.Collaborative.TopN < 1 {
		return fmt.Errorf("collaborative.top_n must be positive, got %d", c.Collaborative.TopN)
	}
	b := c.Collaborative.Boosts
	if b.Completed <= 0 || b.Learning <= 0 || b.Other <= 0 {
		return fmt.Errorf("collaborative.boosts must be positive, got %+v", b)
	}

	if err := c.validateHybrid(); err != nil {
		return err
	}

	if c.Breaker.Enabled {
		if c.Breaker.FailureRatio <= 0 || c.Breaker.FailureRatio > 1 {
			return fmt.Errorf("breaker.failure_ratio must be in (0, 1], got %f", c.Breaker.FailureRatio)
		}
		if c.Breaker.Timeout <= 0 {
			return fmt.Errorf("breaker.timeout must be positive, got %v", c.Breaker.Timeout)
		}
	}

	if c.Limits.DefaultTopN < 1 {
		return fmt.Errorf("limits.default_top_n must be positive, got %d", c.Limits.DefaultTopN)
	}
	if c.Limits.MaxTopN < c.Limits.DefaultTopN {
		return fmt.Errorf("limits.max_top_n must be >= limits.default_top_n, got %d < %d",
			c.Limits.MaxTopN, c.Limits.DefaultTopN)
	}
	if c.Limits.RequestTimeout <= 0 {
		return fmt.Errorf("limits.request_timeout must be positive, got %v", c.Limits.RequestTimeout)
	}

	return nil
}

func (c *Config) validateHybrid() error {
	h := c.Hybrid
	if h.WarmingThreshold < 1 {
		return fmt.Errorf("hybrid.warming_threshold must be positive, got %d", h.WarmingThreshold)
	}
	if h.EstablishedThreshold <= h.WarmingThreshold {
		return fmt.Errorf("hybrid.established_threshold must exceed warming_threshold, got %d <= %d",
			h.EstablishedThreshold, h.WarmingThreshold)
	}

	tiers := []struct {
		name string
		w    TierWeights
	}{
		{"cold_start", h.ColdStart},
		{"warming", h.Warming},
		{"established", h.Established},
	}
	for _, tier := range tiers {
		if tier.w.Content < 0 || tier.w.Collaborative < 0 {
			return fmt.Errorf("hybrid.%s weights must be non-negative, got %+v", tier.name, tier.w)
		}
		if sum := tier.w.Content + tier.w.Collaborative; math.Abs(sum-1.0) > weightTolerance {
			return fmt.Errorf("hybrid.%s weights must sum to 1.0, got %f", tier.name, sum)
		}
	}

	// Collaborative influence may only grow as activity accumulates.
	if h.ColdStart.Collaborative > h.Warming.Collaborative || h.Warming.Collaborative > h.Established.Collaborative {
		return fmt.Errorf("hybrid collaborative weights must be non-decreasing across tiers, got %.2f, %.2f, %.2f",
			h.ColdStart.Collaborative, h.Warming.Collaborative, h.Established.Collaborative)
	}

	if h.MaxReasons < 1 {
		return fmt.Errorf("hybrid.max_reasons must be positive, got %d", h.MaxReasons)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs contain only value types.
	clone := *c
	return &clone
}
