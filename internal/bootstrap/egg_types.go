package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Daymon_Go/internal/config"
	"github.com/osse101/Daymon_Go/internal/eggtype"
)

// LoadEggTypes builds the egg type table: the file named by EGG_TYPES_FILE
// or the embedded defaults, then remote egg_types overrides from src.
// A failed remote fetch keeps the local table.
func LoadEggTypes(ctx context.Context, cfg *config.Config, src eggtype.Source) (*eggtype.Registry, error) {
	slog.Info(LogMsgLoadingEggTypes, "file", cfg.EggTypesFile)

	var registry *eggtype.Registry
	var err error
	if cfg.EggTypesFile != "" {
		registry, err = eggtype.LoadFile(cfg.EggTypesFile)
	} else {
		registry, err = eggtype.NewRegistry()
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadEggTypes, err)
	}

	if src != nil {
		registry.Load(ctx, src)
	}

	slog.Info(LogMsgEggTypesLoaded, "elements", len(registry.Elements()))
	return registry, nil
}
