package ports

import "context"

// Fetcher retrieves a remote archive into a directory using whichever
// transfer tool the current host provides. A failed fetch leaves no
// partial-success marker; a subsequent run retries from scratch.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch downloads url into dir.
	Fetch(ctx context.Context, url, dir string) error
}
