// Package ergo talks to an Ergo node and encodes Ergo addresses.
package ergo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
	"go.uber.org/ratelimit"
)

// ErrNotFound is returned when the node does not know an unspent box.
var ErrNotFound = errors.New("box not found")

// ClientConfig configures the node client.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// RPS caps requests per second, zero means unlimited.
	RPS int
	// Retries is the number of extra attempts per request after a transient failure.
	Retries    uint64
	RetryDelay time.Duration
}

// Client is an instrumented Ergo node REST client.
type Client struct {
	http       *resty.Client
	limiter    ratelimit.Limiter
	metrics    Metrics
	retries    uint64
	retryDelay time.Duration
}

type (
	nodeAsset struct {
		TokenID string `json:"tokenId"`
		Amount  int64  `json:"amount"`
	}
	nodeBox struct {
		BoxID               string            `json:"boxId"`
		ErgoTree            string            `json:"ergoTree"`
		CreationHeight      int64             `json:"creationHeight"`
		Assets              []nodeAsset       `json:"assets"`
		AdditionalRegisters map[string]string `json:"additionalRegisters"`
	}
	nodeInfo struct {
		FullHeight *int64 `json:"fullHeight"`
	}
)

// NewClient constructs a node client.
func NewClient(cfg ClientConfig, metrics Metrics) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("node url is required")
	}
	if metrics == nil {
		return nil, errors.New("node client metrics is required")
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		httpClient.SetHeader("api_key", cfg.APIKey)
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}

	return &Client{
		http:       httpClient,
		limiter:    limiter,
		metrics:    metrics,
		retries:    cfg.Retries,
		retryDelay: cfg.RetryDelay,
	}, nil
}

// UtxoByID returns the node's view of an unspent box.
func (c *Client) UtxoByID(ctx context.Context, boxID string) (detail model.UtxoDetail, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("utxo_by_id", err, started)
	}()

	var box nodeBox
	if err = c.get(ctx, "/utxo/byId/{boxId}", map[string]string{"boxId": boxID}, &box); err != nil {
		return model.UtxoDetail{}, fmt.Errorf("utxo %s: %w", boxID, err)
	}

	detail = model.UtxoDetail{
		BoxID:          box.BoxID,
		ErgoTree:       box.ErgoTree,
		CreationHeight: box.CreationHeight,
		Assets:         make([]model.Asset, 0, len(box.Assets)),
		Registers:      box.AdditionalRegisters,
	}
	for _, a := range box.Assets {
		detail.Assets = append(detail.Assets, model.Asset{TokenID: a.TokenID, Amount: a.Amount})
	}
	return detail, nil
}

// FullHeight returns the height of the last full block the node has.
func (c *Client) FullHeight(ctx context.Context) (height int64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("full_height", err, started)
	}()

	var info nodeInfo
	if err = c.get(ctx, "/info", nil, &info); err != nil {
		return 0, fmt.Errorf("node info: %w", err)
	}
	if info.FullHeight == nil {
		err = errors.New("node info: full height is not available yet")
		return 0, err
	}
	return *info.FullHeight, nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryDelay), c.retries),
		ctx,
	)

	return backoff.Retry(func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		c.limiter.Take()
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.http.R().
			SetContext(ctx).
			SetPathParams(params).
			SetResult(out).
			Get(path)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return backoff.Permanent(ctxErr)
			}
			return err
		}

		switch {
		case resp.StatusCode() == http.StatusNotFound:
			return backoff.Permanent(ErrNotFound)
		case !resp.IsSuccess():
			return fmt.Errorf("unexpected status: %s", resp.Status())
		}
		return nil
	}, policy)
}
