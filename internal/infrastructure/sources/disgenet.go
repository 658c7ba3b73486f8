package sources

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pharmindex/repurpose/internal/config"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/prometheus"
)

// DisGeNETClient talks to the DisGeNET API.  It is a bulk-only provider used
// by the seeder as the secondary association feed after ChEMBL.
type DisGeNETClient struct {
	baseURL  string
	http     *http.Client
	policy   Policy
	throttle *Throttle
	meter    *meter
	log      logging.Logger
}

// NewDisGeNETClient builds a client from the provider configuration.
func NewDisGeNETClient(cfg config.ProviderConfig, log logging.Logger) *DisGeNETClient {
	return &DisGeNETClient{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		http:     &http.Client{},
		policy:   PolicyFromConfig(cfg),
		throttle: NewThrottle(cfg.MinCallInterval),
		log:      log.Named("disgenet"),
	}
}

// WithMetrics attaches call metrics and returns the client for chaining.
func (c *DisGeNETClient) WithMetrics(m *prometheus.AppMetrics) *DisGeNETClient {
	c.meter = newMeter(m, "disgenet")
	return c
}

type disgenetAssociation struct {
	DiseaseName string  `json:"disease_name"`
	DrugName    string  `json:"drug_name"`
	Score       float64 `json:"score"`
}

// Associations fetches up to limit disease-drug associations.  Records with
// an empty disease or drug name are dropped here so downstream processing
// never sees them.
func (c *DisGeNETClient) Associations(ctx context.Context, limit int) ([]AssociationRecord, error) {
	u := fmt.Sprintf("%s/dda/gene_disease_drug_association.json?limit=%d", c.baseURL, limit)
	var out []disgenetAssociation
	err := call(ctx, c.throttle, c.policy, c.meter, "associations", func(attemptCtx context.Context) error {
		return getJSON(attemptCtx, c.http, u, nil, &out)
	})
	if found, err := noMatch(err); !found || err != nil {
		return nil, err
	}

	records := make([]AssociationRecord, 0, len(out))
	for _, a := range out {
		if a.DiseaseName == "" || a.DrugName == "" {
			continue
		}
		records = append(records, AssociationRecord{
			DiseaseName: a.DiseaseName,
			DrugName:    a.DrugName,
			Score:       a.Score,
		})
	}
	return records, nil
}
