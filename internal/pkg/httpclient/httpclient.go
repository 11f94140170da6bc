package httpclient

import (
	"net/http"

	"tourism-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

const (
	BreakerConsecutive = "consecutive"
	BreakerThreshold   = "threshold"
	BreakerRate        = "rate"
)

func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case BreakerThreshold:
		return circuit.NewThresholdBreaker(cfg.ErrorThreshold)
	case BreakerRate:
		return circuit.NewRateBreaker(cfg.ErrorRate, cfg.ErrorRateMinSamples)
	default:
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveThreshold)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
			IdleConnTimeout:     cfg.IdleConnectionTimeout,
		},
	}

	return circuit.NewHTTPClientWithBreaker(cb, cfg.Timeout, client)
}
