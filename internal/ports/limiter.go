package ports

// Limiter gates access to the generative backend.
type Limiter interface {
	// TryAcquire atomically consumes one slot and returns the running count
	// for the current day, or domain.ErrDailyLimitReached without
	// incrementing. Consumed slots are never rolled back.
	TryAcquire() (int, error)
}
