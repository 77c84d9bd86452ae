// Package service provides the application service that implements the
// dependencies required by the HTTP API.
package service

import (
	"context"
	"unicode/utf8"

	"github.com/cfnext/process-service/internal/domain/transform"
	"github.com/cfnext/process-service/pkg/logger"
	"github.com/cfnext/process-service/pkg/metrics"
)

// Service executes the processing operation for authenticated requests.
type Service struct {
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Service with the given options.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Process transforms data and merges options over the computed metadata.
// One log line records the input length before processing.
func (s *Service) Process(ctx context.Context, data string, options map[string]any) transform.Result {
	inputLen := utf8.RuneCountInString(data)
	s.logger.Info(ctx, "processing request", logger.Int("data_length", inputLen))

	res := transform.Process(data, options)
	metrics.RecordProcessed(inputLen)
	return res
}
