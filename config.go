package tiles

import "fmt"

const (
	// DefaultMaxCells limits the number of tiles a dynamic map will allocate.
	DefaultMaxCells = 1 << 28
	// DefaultMaxBorrows limits the number of simultaneously live borrows
	// (regions and row iterations) per map.
	DefaultMaxBorrows = 64
)

// Config configures construction of a map. The zero value selects the
// defaults.
type Config struct {
	// MaxCells is the upper bound for width × height of dynamic maps.
	// Larger requests fail with ErrAllocation.
	MaxCells int
	// MaxBorrows is the upper bound of simultaneously live borrows.
	// Further borrows fail with ErrTooManyBorrows.
	MaxBorrows int
}

func (cfg Config) normalized() Config {
	if cfg.MaxCells == 0 {
		cfg.MaxCells = DefaultMaxCells
	}
	if cfg.MaxBorrows == 0 {
		cfg.MaxBorrows = DefaultMaxBorrows
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.MaxCells < 0 {
		return fmt.Errorf("%w: max cells must be positive", ErrIllegalArguments)
	}
	if cfg.MaxBorrows < 0 {
		return fmt.Errorf("%w: max borrows must be positive", ErrIllegalArguments)
	}
	return validateBackendConfig(cfg)
}
