// SPDX-License-Identifier: MIT
//
// File: bfs_options.go
// Role: functional options for Graph.BFS and Graph.Traverse.

package core

import (
	"context"
	"log/slog"
)

// visitMessage is the slog message of the per-vertex diagnostic record.
const visitMessage = "bfs visit"

// BFSOption configures a traversal via functional arguments.
type BFSOption func(*bfsConfig)

// bfsConfig holds resolved traversal settings.
type bfsConfig struct {
	// logger receives one record per visited node.
	logger *slog.Logger

	// level of the visit records.
	level slog.Level

	// onVisit runs after the visit record is emitted.
	onVisit func(id, depth int)
}

// defaultBFSConfig returns the defaults:
//   - slog.Default() at slog.LevelInfo
//   - no-op OnVisit hook
func defaultBFSConfig() bfsConfig {
	return bfsConfig{
		logger:  slog.Default(),
		level:   slog.LevelInfo,
		onVisit: func(int, int) {},
	}
}

// WithLogger routes visit records to l. A nil logger is ignored; pass
// slog.New(slog.DiscardHandler) to silence traversal output.
func WithLogger(l *slog.Logger) BFSOption {
	return func(c *bfsConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithLogLevel sets the level of visit records.
func WithLogLevel(level slog.Level) BFSOption {
	return func(c *bfsConfig) {
		c.level = level
	}
}

// WithOnVisit registers a callback invoked for each visited node, in
// visitation order, with its identifier and hop distance from the start.
func WithOnVisit(fn func(id, depth int)) BFSOption {
	return func(c *bfsConfig) {
		if fn != nil {
			c.onVisit = fn
		}
	}
}

// logVisit emits the diagnostic record for a visited node.
// The payload is rendered only when the record would actually be handled.
func (c *bfsConfig) logVisit(id, depth int, value any) {
	ctx := context.Background()
	if !c.logger.Enabled(ctx, c.level) {
		return
	}
	c.logger.LogAttrs(ctx, c.level, visitMessage,
		slog.Int("vertex", id),
		slog.Any("value", value),
		slog.Int("depth", depth),
	)
}
