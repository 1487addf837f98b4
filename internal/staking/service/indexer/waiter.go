package indexer

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type nodeHeightWaiter struct {
	node     NodeClient
	interval time.Duration
	poll     func(context.Context, time.Duration, func(context.Context) (bool, error)) error
	logger   *zap.Logger
}

// Wait blocks until the node's full height differs from watermark-1 and returns it.
// Node errors are logged and polling continues.
func (w *nodeHeightWaiter) Wait(ctx context.Context, watermark int64) (int64, error) {
	var height int64
	logged := false

	err := w.poll(ctx, w.interval, func(ctx context.Context) (bool, error) {
		h, err := w.node.FullHeight(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return false, ctxErr
			}
			w.logger.Warn("poll node height failed", zap.Error(err))
			return false, nil
		}
		if h == watermark-1 {
			if !logged {
				w.logger.Info("waiting for next block", zap.Int64("watermark", watermark))
				logged = true
			}
			return false, nil
		}
		height = h
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return height, nil
}
