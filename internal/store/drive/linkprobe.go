package drive

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// linkProbe checks that a freshly shared content link actually resolves.
// Permission grants propagate with some lag on the remote side; the probe
// retries a HEAD with growing waits until the link answers or the budget
// is spent. Callers treat probe failure as a warning, not an error.
type linkProbe struct {
	http *resty.Client
}

func newLinkProbe(timeout time.Duration) *linkProbe {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := resty.New().
		SetTimeout(timeout).
		SetRetryCount(4).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			// 403/404 while the grant propagates.
			return r.StatusCode() == http.StatusForbidden || r.StatusCode() == http.StatusNotFound
		})
	return &linkProbe{http: c}
}

func (p *linkProbe) wait(ctx context.Context, url string) error {
	resp, err := p.http.R().SetContext(ctx).Head(url)
	if err != nil {
		return err
	}
	if resp.StatusCode() >= 400 {
		return fmt.Errorf("link probe: http %d", resp.StatusCode())
	}
	return nil
}
