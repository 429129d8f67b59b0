package ports

import "context"

// CachePurger asks the asset cache to drop cached backend responses.
type CachePurger interface {
	Purge(ctx context.Context) error
}
