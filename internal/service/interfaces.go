package service

import (
	"context"

	"github.com/beamshop/opticut/internal/contract"
)

// OptimizeService runs one stateless optimization pass: one input
// bundle in, one result bundle out. Implementations hold no per-run
// state, so distinct bundles may be optimized concurrently.
type OptimizeService interface {
	Optimize(ctx context.Context, req contract.OptimizeRequest) (*contract.OptimizeResponse, error)
}
