package ports

import (
	"context"

	"github.com/cobra893021/kajicon-go/internal/domain"
)

// TableStore provides the static diagnosis lookup tables.
type TableStore interface {
	// FateNumber returns the per-year-month seed of the archetype
	// calculation. Years outside the table yield domain.ErrYearOutOfRange.
	FateNumber(ctx context.Context, year, month int) (int, error)
	// Archetype maps a base number in [1,60] to its named classification.
	Archetype(ctx context.Context, base int) (domain.Archetype, error)
	// Traits returns the seed data for a group code. A missing code is an
	// internal-consistency fault, not a user-facing condition.
	Traits(ctx context.Context, group string) (domain.GroupTraitSeed, error)
}
