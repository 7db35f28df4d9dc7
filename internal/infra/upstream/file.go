package upstream

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"restaurant-deals/internal/domain/restaurant"
	"restaurant-deals/internal/infra"
	"restaurant-deals/internal/pkg/clock"
)

// FileSource reads a feed document saved to disk.
type FileSource struct {
	path   string
	clock  clock.Clock
	logger *slog.Logger
}

func NewFileSource(path string, clk clock.Clock, logger *slog.Logger) *FileSource {
	return &FileSource{path: path, clock: clk, logger: logger}
}

func (s *FileSource) Name() string {
	return s.path
}

func (s *FileSource) FetchSnapshot(ctx context.Context) (*restaurant.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, infra.WrapSourceErr(s.logger, infra.KindUpstreamFailure, "read "+s.path, err)
	}

	var payload RestaurantsPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, infra.WrapSourceErr(s.logger, infra.KindDecodeFailure, "decode "+s.path, err)
	}

	snap, err := ToSnapshot(payload, s.clock.Now())
	if err != nil {
		return nil, infra.WrapSourceErr(s.logger, infra.KindInvalidData, "convert "+s.path, err)
	}
	return snap, nil
}
