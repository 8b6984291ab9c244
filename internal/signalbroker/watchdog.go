// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/palette/internal/ctxlog"
)

// Watch reads sigCh until ctx is done or sigCh is closed.
// The second signal of the same kind calls cancel and returns.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, ok := seen[sig]; ok {
				ctxlog.Warn(ctx, "second signal received, cancelling", "signal", sig.String())
				cancel()

				return
			}

			ctxlog.Warn(ctx, "signal received, send again to cancel", "signal", sig.String())

			seen[sig] = struct{}{}
		}
	}
}
