package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nfrund/pattivana/internal/domain"
)

const (
	defaultGraphQLURL  = "https://graphql.contentful.com/content/v1"
	defaultEnvironment = "master"
	maxResponseBytes   = 1 << 20
)

const landingQuery = `query Landing($preview: Boolean) {
  landingPageCollection(limit: 1, preview: $preview) {
    items {
      homeImage { ...ImageFields }
      menuSlotsCollection(limit: 24) {
        items {
          slot
          title
          description
          link
          visibility
          order
          image { ...ImageFields }
        }
      }
    }
  }
}

fragment ImageFields on Asset {
  url
  contentType
  title
  description
  width
  height
}`

// contentfulSource reads the landing page entry from the Contentful GraphQL API.
type contentfulSource struct {
	endpoint string
	token    string
	preview  bool
	http     *http.Client
}

func newContentfulSource(opts Options) *contentfulSource {
	base := strings.TrimRight(firstNonEmpty(opts.GraphQLURL, defaultGraphQLURL), "/")
	endpoint, err := url.JoinPath(base, "spaces", opts.SpaceID, "environments", firstNonEmpty(opts.Environment, defaultEnvironment))
	if err != nil {
		endpoint = base
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 5 * time.Second}
	}
	return &contentfulSource{
		endpoint: endpoint,
		token:    opts.AccessToken,
		preview:  opts.Preview,
		http:     hc,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data struct {
		LandingPageCollection struct {
			Items []landingItem `json:"items"`
		} `json:"landingPageCollection"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type landingItem struct {
	HomeImage           *domain.MediaDescriptor `json:"homeImage"`
	MenuSlotsCollection *struct {
		Items []menuSlotItem `json:"items"`
	} `json:"menuSlotsCollection"`
}

type menuSlotItem struct {
	Slot        string                  `json:"slot"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Link        string                  `json:"link"`
	Visibility  string                  `json:"visibility"`
	Order       int                     `json:"order"`
	Image       *domain.MediaDescriptor `json:"image"`
}

func (s *contentfulSource) fetch(ctx context.Context) (Site, error) {
	body, err := json.Marshal(graphQLRequest{
		Query:     landingQuery,
		Variables: map[string]any{"preview": s.preview},
	})
	if err != nil {
		return Site{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return Site{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.http.Do(req)
	if err != nil {
		return Site{}, fmt.Errorf("cms: contentful request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Site{}, domain.ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return Site{}, fmt.Errorf("cms: contentful status %d", resp.StatusCode)
	}

	var payload graphQLResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return Site{}, fmt.Errorf("cms: decode contentful response: %w", err)
	}
	if len(payload.Errors) > 0 {
		return Site{}, fmt.Errorf("cms: contentful: %s", payload.Errors[0].Message)
	}
	items := payload.Data.LandingPageCollection.Items
	if len(items) == 0 {
		return Site{}, domain.ErrNotFound
	}
	return items[0].site()
}

func (it landingItem) site() (Site, error) {
	var site Site
	if it.HomeImage != nil {
		site.Home = *it.HomeImage
	}
	if it.MenuSlotsCollection == nil {
		return site, nil
	}
	site.Menu = make(domain.MenuImageSet, len(it.MenuSlotsCollection.Items))
	for _, item := range it.MenuSlotsCollection.Items {
		slot := strings.TrimSpace(item.Slot)
		if slot == "" {
			continue
		}
		entry := domain.MenuSlot{
			Title:       item.Title,
			Description: item.Description,
			Link:        strings.TrimSpace(item.Link),
			Visibility:  domain.Visibility(strings.ToLower(strings.TrimSpace(item.Visibility))),
			Order:       item.Order,
		}
		if item.Image != nil {
			entry.Image = *item.Image
		}
		site.Menu[slot] = entry
	}
	if err := site.Menu.Validate(); err != nil {
		return Site{}, err
	}
	return site, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
