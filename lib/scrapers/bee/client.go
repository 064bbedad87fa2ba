package bee

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"beescraper/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"github.com/mazen160/go-random"
)

var defaultIdentityPool = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:124.0) Gecko/20100101 Firefox/124.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.3 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
}

const defaultReferer = "https://www.google.com/search?q=spelling+bee+answers+today"

type ClientOptions struct {
	Timeout time.Duration
	// browser identity strings drawn from at random per request
	IdentityPool []string
	Referer      string
	// courtesy delay range applied before every request, which also
	// spaces out consecutive source attempts
	DelayMin time.Duration
	DelayMax time.Duration
}

type Client struct {
	Http *resty.Client
	opts ClientOptions
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = time.Second * 15
	}
	if len(opts.IdentityPool) == 0 {
		opts.IdentityPool = defaultIdentityPool
	}
	if opts.Referer == "" {
		opts.Referer = defaultReferer
	}

	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.SetTimeout(opts.Timeout)
	client.SetHeader("Accept", "text/html,application/xhtml+xml")
	client.SetHeader("Accept-Language", "en-US,en;q=0.9")
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	telemetry.InstrumentResty(client, "scrapers/bee/http")

	return &Client{
		Http: client,
		opts: opts,
	}, nil
}

func (c *Client) identity() string {
	idx, err := random.IntRange(0, len(c.opts.IdentityPool))
	if err != nil {
		idx = 0
	}
	return c.opts.IdentityPool[idx]
}

func (c *Client) pause(ctx context.Context) error {
	if c.opts.DelayMax <= 0 {
		return nil
	}
	minMs := int(c.opts.DelayMin.Milliseconds())
	maxMs := int(c.opts.DelayMax.Milliseconds())
	ms, err := random.IntRange(minMs, maxMs+1)
	if err != nil {
		ms = maxMs
	}

	timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FetchPage issues a single GET and returns the raw markup. Any
// transport error, timeout or non-2xx status comes back as a plain
// error; recovery is the caller's job, there are no retries here.
func (c *Client) FetchPage(ctx context.Context, url string) (string, error) {
	err := c.pause(ctx)
	if err != nil {
		return "", err
	}

	res, err := c.Http.R().
		SetContext(ctx).
		SetHeader("User-Agent", c.identity()).
		SetHeader("Referer", c.opts.Referer).
		Get(url)
	if err != nil {
		return "", err
	}
	if res.StatusCode() < 200 || res.StatusCode() > 299 {
		return "", fmt.Errorf("unexpected status %d from %s", res.StatusCode(), url)
	}
	return string(res.Body()), nil
}
