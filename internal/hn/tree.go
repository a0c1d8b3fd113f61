package hn

import (
	"context"
	"sync"
)

// GetCommentTree recursively resolves an item and its descendants into a
// CommentNode tree, expanding children only while depth budget remains.
// Returns nil when the root item is missing or unreachable.
//
// Worst case this issues one fetch per node down to maxDepth; the tool layer
// bounds maxDepth before calls get here.
func (c *Client) GetCommentTree(ctx context.Context, id, maxDepth int) (*CommentNode, error) {
	return c.fetchTree(ctx, id, maxDepth, 0)
}

func (c *Client) fetchTree(ctx context.Context, id, maxDepth, depth int) (*CommentNode, error) {
	// The depth check precedes the fetch, so an exhausted budget costs no
	// network round trip.
	if depth > maxDepth {
		return nil, nil
	}

	item, err := c.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	node := &CommentNode{
		ID:       item.ID,
		By:       item.By,
		Text:     item.Text,
		Time:     item.Time,
		Children: []*CommentNode{},
	}
	if node.By == "" {
		node.By = DeletedAuthor
	}

	// Strict inequality: children expand only with budget remaining beyond
	// this level. A truncated node and a true leaf look the same.
	if len(item.Kids) == 0 || depth >= maxDepth {
		return node, nil
	}

	children := make([]*CommentNode, len(item.Kids))
	errs := make([]error, len(item.Kids))
	var wg sync.WaitGroup
	for i, kid := range item.Kids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			children[i], errs[i] = c.fetchTree(ctx, kid, maxDepth, depth+1)
		}()
	}
	wg.Wait()

	for i, child := range children {
		if errs[i] != nil {
			return nil, errs[i]
		}
		// Absent branches are pruned, not represented as placeholders.
		if child != nil {
			node.Children = append(node.Children, child)
		}
	}

	return node, nil
}
