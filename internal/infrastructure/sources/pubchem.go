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
	"github.com/pharmindex/repurpose/pkg/types/common"
)

// PubChemClient talks to the PubChem PUG REST API.  It is the first provider
// consulted both for drug-likeness confirmation and for enrichment.
type PubChemClient struct {
	baseURL  string
	http     *http.Client
	policy   Policy
	throttle *Throttle
	meter    *meter
	log      logging.Logger
}

// NewPubChemClient builds a client from the provider configuration.
func NewPubChemClient(cfg config.ProviderConfig, log logging.Logger) *PubChemClient {
	return &PubChemClient{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		http:     &http.Client{},
		policy:   PolicyFromConfig(cfg),
		throttle: NewThrottle(cfg.MinCallInterval),
		log:      log.Named("pubchem"),
	}
}

// WithMetrics attaches call metrics and returns the client for chaining.
func (c *PubChemClient) WithMetrics(m *prometheus.AppMetrics) *PubChemClient {
	c.meter = newMeter(m, "pubchem")
	return c
}

type cidListResponse struct {
	IdentifierList struct {
		CID []int64 `json:"CID"`
	} `json:"IdentifierList"`
}

type propertyTableResponse struct {
	PropertyTable struct {
		Properties []struct {
			CID              int64       `json:"CID"`
			MolecularFormula string      `json:"MolecularFormula"`
			MolecularWeight  json.Number `json:"MolecularWeight"`
			IUPACName        string      `json:"IUPACName"`
			CanonicalSMILES  string      `json:"CanonicalSMILES"`
			Title            string      `json:"Title"`
		} `json:"Properties"`
	} `json:"PropertyTable"`
}

type synonymListResponse struct {
	InformationList struct {
		Information []struct {
			Synonym []string `json:"Synonym"`
		} `json:"Information"`
	} `json:"InformationList"`
}

// SearchCID resolves a compound name to its first PubChem CID.
func (c *PubChemClient) SearchCID(ctx context.Context, name string) (int64, bool, error) {
	var out cidListResponse
	err := c.get(ctx, "search_cid", fmt.Sprintf("%s/compound/name/%s/cids/JSON", c.baseURL, url.PathEscape(name)), &out)
	if found, err := noMatch(err); !found || err != nil {
		return 0, false, err
	}
	if len(out.IdentifierList.CID) == 0 {
		return 0, false, nil
	}
	return out.IdentifierList.CID[0], true, nil
}

// Properties fetches the identity record for a CID.
func (c *PubChemClient) Properties(ctx context.Context, cid int64) (*CompoundIdentity, bool, error) {
	u := fmt.Sprintf("%s/compound/cid/%d/property/MolecularFormula,MolecularWeight,IUPACName,CanonicalSMILES,Title/JSON",
		c.baseURL, cid)
	var out propertyTableResponse
	err := c.get(ctx, "properties", u, &out)
	if found, err := noMatch(err); !found || err != nil {
		return nil, false, err
	}
	if len(out.PropertyTable.Properties) == 0 {
		return nil, false, nil
	}

	p := out.PropertyTable.Properties[0]
	weight, _ := p.MolecularWeight.Float64()
	return &CompoundIdentity{
		Source:           common.SourcePubChem,
		SourceID:         fmt.Sprintf("%d", cid),
		Title:            p.Title,
		IUPACName:        p.IUPACName,
		MolecularFormula: p.MolecularFormula,
		MolecularWeight:  weight,
		CanonicalSMILES:  p.CanonicalSMILES,
	}, true, nil
}

// Synonyms fetches the synonym list for a CID.  Trade names for marketed
// drugs typically appear near the front of this list.
func (c *PubChemClient) Synonyms(ctx context.Context, cid int64) ([]string, bool, error) {
	var out synonymListResponse
	err := c.get(ctx, "synonyms", fmt.Sprintf("%s/compound/cid/%d/synonyms/JSON", c.baseURL, cid), &out)
	if found, err := noMatch(err); !found || err != nil {
		return nil, false, err
	}
	if len(out.InformationList.Information) == 0 {
		return nil, false, nil
	}
	syns := out.InformationList.Information[0].Synonym
	if len(syns) == 0 {
		return nil, false, nil
	}
	return syns, true, nil
}

// Lookup resolves name to a full identity record: CID search followed by a
// property fetch.  (identity, false, nil) means PubChem has never heard of
// the name.
func (c *PubChemClient) Lookup(ctx context.Context, name string) (*CompoundIdentity, bool, error) {
	cid, found, err := c.SearchCID(ctx, name)
	if err != nil || !found {
		return nil, false, err
	}

	identity, found, err := c.Properties(ctx, cid)
	if err != nil || !found {
		return nil, false, err
	}
	identity.Name = name
	return identity, true, nil
}

func (c *PubChemClient) get(ctx context.Context, op, u string, out interface{}) error {
	return call(ctx, c.throttle, c.policy, c.meter, op, func(attemptCtx context.Context) error {
		return getJSON(attemptCtx, c.http, u, nil, out)
	})
}
