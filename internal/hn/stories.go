package hn

import (
	"context"
	"sync"
)

// GetStories resolves one page of a category listing.
//
// The full id list is fetched once and its length recorded as Total before
// slicing, so pagination stays accurate even past the end of the list. Every
// id in the page is resolved concurrently; items that come back absent are
// dropped without comment, and the survivors keep the id list's relative
// order.
func (c *Client) GetStories(ctx context.Context, category Category, limit, offset int) (*StoryPage, error) {
	ids, err := c.GetStoryIDs(ctx, category)
	if err != nil {
		return nil, err
	}

	total := len(ids)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := offset + limit
	if limit < 0 {
		end = offset
	}
	if end > total {
		end = total
	}
	pageIDs := ids[offset:end]

	// Index-stable slots keep input order regardless of completion order.
	resolved := make([]*Item, len(pageIDs))
	errs := make([]error, len(pageIDs))
	var wg sync.WaitGroup
	for i, id := range pageIDs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolved[i], errs[i] = c.GetItem(ctx, id)
		}()
	}
	wg.Wait()

	items := make([]Item, 0, len(pageIDs))
	for i, item := range resolved {
		if errs[i] != nil {
			return nil, errs[i]
		}
		if item != nil {
			items = append(items, *item)
		}
	}

	return &StoryPage{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
