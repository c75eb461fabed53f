package ports

import "context"

// SideEffect is best-effort work run after a booking change has committed.
type SideEffect struct {
	Name    string
	EventID string
	UserID  string
	Run     func(ctx context.Context) error
}

type Dispatcher interface {
	Submit(ctx context.Context, effect SideEffect)
}
