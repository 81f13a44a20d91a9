// Package cms loads the site's content: the landing media and the menu section.
// Content comes from Contentful when configured, with a local YAML document
// as fallback, and is cached in memory for a configurable TTL.
package cms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/nfrund/pattivana/internal/domain"
	"github.com/spf13/afero"
	"golang.org/x/sync/singleflight"
)

const (
	defaultFallbackPath = "content/site.yaml"
	defaultCacheTTL     = 5 * time.Minute
	// degradedTTL bounds how long fallback content stands in for a failing
	// Contentful so the remote is retried soon.
	degradedTTL = 30 * time.Second
	siteKey     = "site"
)

// Site is the content document backing the pages.
type Site struct {
	Home domain.MediaDescriptor `yaml:"home"`
	Menu domain.MenuImageSet    `yaml:"menu"`
}

func (s Site) clone() Site {
	cp := s
	if s.Menu != nil {
		cp.Menu = make(domain.MenuImageSet, len(s.Menu))
		for k, v := range s.Menu {
			cp.Menu[k] = v
		}
	}
	return cp
}

// Options configures a Client. Zero values select sensible defaults; an
// empty SpaceID disables the remote source.
type Options struct {
	SpaceID     string
	AccessToken string
	Environment string
	GraphQLURL  string
	Preview     bool
	HTTPClient  *http.Client

	Fs           afero.Fs
	FallbackPath string
	CacheTTL     time.Duration
	Metrics      *Metrics
}

// Client fetches and caches site content. It is safe for concurrent use.
type Client struct {
	remote       *contentfulSource
	fs           afero.Fs
	fallbackPath string
	ttl          time.Duration
	metrics      *Metrics
	now          func() time.Time

	group singleflight.Group

	mu      sync.RWMutex
	cached  Site
	expires time.Time
	valid   bool
	// gen is bumped by Invalidate; fetches started under an older
	// generation are returned to their callers but not cached.
	gen uint64
}

// NewClient creates a Client from opts.
func NewClient(opts Options) *Client {
	c := &Client{
		fs:           opts.Fs,
		fallbackPath: opts.FallbackPath,
		ttl:          opts.CacheTTL,
		metrics:      opts.Metrics,
		now:          time.Now,
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	if c.fallbackPath == "" {
		c.fallbackPath = defaultFallbackPath
	}
	if c.ttl <= 0 {
		c.ttl = defaultCacheTTL
	}
	if c.metrics == nil {
		c.metrics = NewMetrics(nil)
	}
	if opts.SpaceID != "" {
		c.remote = newContentfulSource(opts)
	}
	return c
}

// FallbackPath returns the path of the local content document.
func (c *Client) FallbackPath() string {
	return c.fallbackPath
}

// HomeMedia returns the landing page media. It fails with domain.ErrNotFound
// when no source defines one.
func (c *Client) HomeMedia(ctx context.Context) (domain.MediaDescriptor, error) {
	site, err := c.Site(ctx)
	if err != nil {
		return domain.MediaDescriptor{}, err
	}
	if site.Home.IsZero() {
		return domain.MediaDescriptor{}, fmt.Errorf("cms: home media: %w", domain.ErrNotFound)
	}
	return site.Home, nil
}

// MenuImages returns the menu section. A missing section yields a nil set
// and no error; a missing document is still reported.
func (c *Client) MenuImages(ctx context.Context) (domain.MenuImageSet, error) {
	site, err := c.Site(ctx)
	if err != nil {
		return nil, err
	}
	return site.Menu, nil
}

// Site returns a copy of the full content document, consulting the cache first.
// Concurrent misses share one fetch. The fetch is detached from ctx so a
// caller going away neither aborts it for the others nor turns it into a
// remote failure; the caller itself returns ctx.Err().
func (c *Client) Site(ctx context.Context) (Site, error) {
	if err := ctx.Err(); err != nil {
		return Site{}, err
	}
	if site, ok := c.fromCache(); ok {
		c.metrics.cacheHit()
		return site, nil
	}
	c.metrics.cacheMiss()

	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(siteKey, func() (any, error) {
		gen := c.generation()
		site, ttl, err := c.fetch(fetchCtx)
		if err != nil {
			return Site{}, err
		}
		c.store(site, ttl, gen)
		return site, nil
	})

	select {
	case <-ctx.Done():
		return Site{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Site{}, res.Err
		}
		return res.Val.(Site).clone(), nil
	}
}

// Invalidate drops the cached document so the next read refetches it. A
// fetch already in flight is not cached when it completes.
func (c *Client) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.gen++
	c.mu.Unlock()
	c.group.Forget(siteKey)
}

// fetch loads the document and reports how long it may be cached.
func (c *Client) fetch(ctx context.Context) (Site, time.Duration, error) {
	var remoteErr error
	if c.remote != nil {
		site, err := c.remote.fetch(ctx)
		if err == nil {
			c.metrics.fetched(sourceContentful, resultOK)
			return site, c.ttl, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Site{}, 0, ctxErr
		}
		remoteErr = err
		if errors.Is(err, domain.ErrNotFound) {
			c.metrics.fetched(sourceContentful, resultNotFound)
		} else {
			c.metrics.fetched(sourceContentful, resultError)
			slog.Warn("Contentful fetch failed, using fallback content", "error", err)
		}
	}

	degraded := remoteErr != nil && !errors.Is(remoteErr, domain.ErrNotFound)
	site, err := readFallback(c.fs, c.fallbackPath)
	switch {
	case err == nil:
		c.metrics.fetched(sourceFallback, resultOK)
		ttl := c.ttl
		if degraded {
			ttl = min(ttl, degradedTTL)
		}
		return site, ttl, nil
	case errors.Is(err, domain.ErrNotFound):
		c.metrics.fetched(sourceFallback, resultNotFound)
		if degraded {
			return Site{}, 0, fmt.Errorf("%w: %v", domain.ErrContentUnavailable, remoteErr)
		}
		return Site{}, 0, err
	default:
		c.metrics.fetched(sourceFallback, resultError)
		return Site{}, 0, err
	}
}

func (c *Client) generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

func (c *Client) fromCache() (Site, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid || c.now().After(c.expires) {
		return Site{}, false
	}
	return c.cached.clone(), true
}

func (c *Client) store(site Site, ttl time.Duration, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.cached = site.clone()
	c.expires = c.now().Add(ttl)
	c.valid = true
}
