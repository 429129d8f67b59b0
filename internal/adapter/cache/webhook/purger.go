// Package webhook notifies the asset cache that cached backend responses
// are stale.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// PurgeMessage is the message type the asset cache listens for.
const PurgeMessage = "CLEAR_API_CACHE"

const defaultTimeout = 5 * time.Second

type doer interface {
	DoTimeout(ctx context.Context, req *protocol.Request, resp *protocol.Response, timeout time.Duration) error
}

type Purger struct {
	url     string
	client  doer
	timeout time.Duration
}

func New(url string) (*Purger, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("purge url is required")
	}
	c, err := client.NewClient(client.WithDialTimeout(defaultTimeout))
	if err != nil {
		return nil, fmt.Errorf("build purge client: %w", err)
	}
	return &Purger{url: url, client: c, timeout: defaultTimeout}, nil
}

func (p *Purger) Purge(ctx context.Context) error {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer protocol.ReleaseRequest(req)
	defer protocol.ReleaseResponse(resp)

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(p.url)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody([]byte(`{"type":"` + PurgeMessage + `"}`))

	if err := p.client.DoTimeout(ctx, req, resp, p.timeout); err != nil {
		return fmt.Errorf("purge cache: %w", err)
	}
	if code := resp.StatusCode(); code < 200 || code >= 300 {
		return fmt.Errorf("purge cache: status %d", code)
	}
	hlog.CtxDebugf(ctx, "asset cache purge sent to %s", p.url)
	return nil
}

// Noop is used when no purge endpoint is configured.
type Noop struct{}

func (Noop) Purge(context.Context) error { return nil }
