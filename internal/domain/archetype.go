package domain

// Year bounds of the fate-number table.
const (
	MinYear = 1960
	MaxYear = 2025
)

// groupCodes are the twelve psychegram group codes, in base-number order.
// Bases partition into twelve consecutive blocks of five.
var groupCodes = [12]string{
	"A1", "A2", "A5", "A6",
	"E1", "E2", "E5", "E6",
	"F1", "F2", "F5", "F6",
}

// BaseNumber combines a monthly fate number with a day of month into the
// final archetype identifier in [1,60]. The wraparound is applied at most
// once, so fateNumber+day must not exceed 120; anything outside that
// contract is an internal consistency fault, not a user error.
func BaseNumber(fateNumber, day int) (int, error) {
	if fateNumber < 0 || day < 1 {
		return 0, ErrBaseOutOfRange
	}
	sum := fateNumber + day
	if sum > 120 {
		return 0, ErrBaseOutOfRange
	}
	if sum > 60 {
		sum -= 60
	}
	if sum < 1 || sum > 60 {
		return 0, ErrBaseOutOfRange
	}
	return sum, nil
}

// GroupForBase maps a base number to its psychegram group code. Returns ""
// for bases outside [1,60].
func GroupForBase(base int) string {
	if base < 1 || base > 60 {
		return ""
	}
	return groupCodes[(base-1)/5]
}

// GroupCodes returns all group codes the base→group derivation can produce.
// The trait seed table must carry an entry for each of them.
func GroupCodes() []string {
	out := make([]string, len(groupCodes))
	copy(out, groupCodes[:])
	return out
}
