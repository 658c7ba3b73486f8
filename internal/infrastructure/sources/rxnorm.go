package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pharmindex/repurpose/internal/config"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/prometheus"
)

// RxNormClient talks to the RxNav REST API.  It is the last confirmation
// provider in the classification chain and the fallback market-name source.
type RxNormClient struct {
	baseURL  string
	http     *http.Client
	policy   Policy
	throttle *Throttle
	meter    *meter
	log      logging.Logger
}

// NewRxNormClient builds a client from the provider configuration.
func NewRxNormClient(cfg config.ProviderConfig, log logging.Logger) *RxNormClient {
	return &RxNormClient{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		http:     &http.Client{},
		policy:   PolicyFromConfig(cfg),
		throttle: NewThrottle(cfg.MinCallInterval),
		log:      log.Named("rxnorm"),
	}
}

// WithMetrics attaches call metrics and returns the client for chaining.
func (c *RxNormClient) WithMetrics(m *prometheus.AppMetrics) *RxNormClient {
	c.meter = newMeter(m, "rxnorm")
	return c
}

type drugsResponse struct {
	DrugGroup struct {
		ConceptGroup []struct {
			TTY               string `json:"tty"`
			ConceptProperties []struct {
				Name string `json:"name"`
			} `json:"conceptProperties"`
		} `json:"conceptGroup"`
	} `json:"drugGroup"`
}

// BrandConcepts returns the branded-drug concept names (TTY SBD or BPCK)
// RxNorm knows for name, deduplicated in order of appearance.  Concept names
// are raw, e.g. "aspirin 325 MG Oral Tablet [Bayer]"; callers decide how much
// of each to keep.  An empty list means RxNorm has no branded products for
// the name.
func (c *RxNormClient) BrandConcepts(ctx context.Context, name string) ([]string, bool, error) {
	u := fmt.Sprintf("%s/drugs.json?name=%s", c.baseURL, url.QueryEscape(name))
	var out drugsResponse
	err := call(ctx, c.throttle, c.policy, c.meter, "drugs", func(attemptCtx context.Context) error {
		return getJSON(attemptCtx, c.http, u, nil, &out)
	})
	if found, err := noMatch(err); !found || err != nil {
		return nil, false, err
	}

	var names []string
	seen := make(map[string]struct{})
	for _, group := range out.DrugGroup.ConceptGroup {
		if group.TTY != "SBD" && group.TTY != "BPCK" {
			continue
		}
		for _, concept := range group.ConceptProperties {
			n := strings.TrimSpace(concept.Name)
			if n == "" {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return nil, false, nil
	}
	return names, true, nil
}
