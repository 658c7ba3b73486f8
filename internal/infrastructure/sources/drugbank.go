package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pharmindex/repurpose/internal/config"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/prometheus"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
)

// DrugBankClient talks to the DrugBank commercial API.  It is credential
// gated: without an API key the client reports itself unavailable, which is a
// different condition from DrugBank knowing nothing about a drug.
type DrugBankClient struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	policy   Policy
	throttle *Throttle
	meter    *meter
	log      logging.Logger
}

// NewDrugBankClient builds a client from the provider configuration.
func NewDrugBankClient(cfg config.ProviderConfig, log logging.Logger) *DrugBankClient {
	return &DrugBankClient{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		http:     &http.Client{},
		policy:   PolicyFromConfig(cfg),
		throttle: NewThrottle(cfg.MinCallInterval),
		log:      log.Named("drugbank"),
	}
}

// WithMetrics attaches call metrics and returns the client for chaining.
func (c *DrugBankClient) WithMetrics(m *prometheus.AppMetrics) *DrugBankClient {
	c.meter = newMeter(m, "drugbank")
	return c
}

// Available reports whether the client holds a credential and may be called.
func (c *DrugBankClient) Available() bool {
	return c.apiKey != ""
}

type drugBankSearchResponse struct {
	Drugs []struct {
		Name    string `json:"name"`
		Formula string `json:"formula"`
		Weight  struct {
			Average json.Number `json:"average"`
		} `json:"weight"`
		Synonyms []string `json:"synonyms"`
		Targets  []struct {
			Name string `json:"name"`
		} `json:"targets"`
		Products          []string `json:"products"`
		MechanismOfAction string   `json:"mechanism_of_action"`
	} `json:"drugs"`
}

// Lookup searches DrugBank by drug name and returns the first match.
// Without a configured API key it fails with a missing-credential error so
// callers can distinguish "could not ask" from "asked, nothing there".
func (c *DrugBankClient) Lookup(ctx context.Context, name string) (*DrugBankRecord, bool, error) {
	if !c.Available() {
		return nil, false, apperrors.New(apperrors.ErrCodeSourceAuthMissing, "drugbank api key not configured")
	}

	u := fmt.Sprintf("%s/drugs/search.json?name=%s", c.baseURL, url.QueryEscape(name))
	header := http.Header{"Authorization": []string{"Bearer " + c.apiKey}}

	var out drugBankSearchResponse
	err := call(ctx, c.throttle, c.policy, c.meter, "drug_search", func(attemptCtx context.Context) error {
		return getJSON(attemptCtx, c.http, u, header, &out)
	})
	if found, err := noMatch(err); !found || err != nil {
		return nil, false, err
	}
	if len(out.Drugs) == 0 {
		return nil, false, nil
	}

	d := out.Drugs[0]
	weight, _ := d.Weight.Average.Float64()
	rec := &DrugBankRecord{
		Name:      d.Name,
		Formula:   d.Formula,
		Weight:    weight,
		Synonyms:  d.Synonyms,
		Products:  d.Products,
		Mechanism: d.MechanismOfAction,
	}
	for _, t := range d.Targets {
		if t.Name != "" {
			rec.Targets = append(rec.Targets, t.Name)
		}
	}
	return rec, true, nil
}
