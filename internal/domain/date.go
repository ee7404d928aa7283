package domain

import "strconv"

// ParseBirthDate validates an 8-digit YYYYMMDD string and splits it into its
// components. Month must be 1-12 and day 1-31; day-of-month is not checked
// against the specific month's length. The year range is enforced later by
// the fate-number table lookup.
func ParseBirthDate(raw string) (year, month, day int, err error) {
	if len(raw) != 8 {
		return 0, 0, 0, ErrInvalidDateFormat
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, 0, 0, ErrInvalidDateFormat
		}
	}

	year, _ = strconv.Atoi(raw[:4])
	month, _ = strconv.Atoi(raw[4:6])
	day, _ = strconv.Atoi(raw[6:8])

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, ErrInvalidDateFormat
	}
	return year, month, day, nil
}
