package memory

import "context"

// Snapshotter captures its state and returns a function restoring it.
type Snapshotter interface {
	Snapshot() func()
}

// Atomic implements port.UnitOfWork by snapshotting every participant and
// restoring them all when the function fails.
type Atomic struct {
	parts []Snapshotter
}

func NewAtomic(parts ...Snapshotter) *Atomic {
	return &Atomic{parts: parts}
}

// Do runs fn. When fn returns an error every participant is restored to
// its state before the call and the error is returned unchanged.
func (a *Atomic) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	restores := make([]func(), 0, len(a.parts))
	for _, p := range a.parts {
		restores = append(restores, p.Snapshot())
	}
	if err := fn(ctx); err != nil {
		for _, restore := range restores {
			restore()
		}
		return err
	}
	return nil
}
