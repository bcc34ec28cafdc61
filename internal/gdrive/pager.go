package gdrive

import "context"

// pageFunc fetches one page of results for query. It returns the page's items
// and the continuation token; an empty token signals the traversal is done.
type pageFunc[T any] func(ctx context.Context, query string, pageSize int64, pageToken string) ([]T, string, error)

// collectPages invokes fetch until the server returns an empty page token,
// concatenating items in server order. Pages are fetched strictly
// sequentially; duplicates across pages are passed through as-is. Any fetch
// error propagates immediately and partial results are abandoned. Every call
// starts a fresh traversal.
func collectPages[T any](ctx context.Context, query string, pageSize int64, fetch pageFunc[T]) ([]T, error) {
	if pageSize < 1 {
		return nil, invalidArgf("page size must be >= 1, got %d", pageSize)
	}

	var all []T

	pageToken := ""

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		items, next, err := fetch(ctx, query, pageSize, pageToken)
		if err != nil {
			return nil, err
		}

		all = append(all, items...)

		if next == "" {
			return all, nil
		}

		pageToken = next
	}
}
