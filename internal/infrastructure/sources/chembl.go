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

// ChEMBLClient talks to the ChEMBL REST API.  It serves two roles: second
// confirmation provider for interactive classification, and primary bulk feed
// (drug_indication) for the seeder.
type ChEMBLClient struct {
	baseURL  string
	http     *http.Client
	policy   Policy
	throttle *Throttle
	meter    *meter
	log      logging.Logger
}

// NewChEMBLClient builds a client from the provider configuration.
func NewChEMBLClient(cfg config.ProviderConfig, log logging.Logger) *ChEMBLClient {
	return &ChEMBLClient{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		http:     &http.Client{},
		policy:   PolicyFromConfig(cfg),
		throttle: NewThrottle(cfg.MinCallInterval),
		log:      log.Named("chembl"),
	}
}

// WithMetrics attaches call metrics and returns the client for chaining.
func (c *ChEMBLClient) WithMetrics(m *prometheus.AppMetrics) *ChEMBLClient {
	c.meter = newMeter(m, "chembl")
	return c
}

type chemblMolecule struct {
	MoleculeChEMBLID string      `json:"molecule_chembl_id"`
	PrefName         string      `json:"pref_name"`
	FullMolformula   string      `json:"full_molformula"`
	MWFreebase       json.Number `json:"mw_freebase"`
	MoleculeSynonyms []struct {
		MoleculeSynonym string `json:"molecule_synonym"`
	} `json:"molecule_synonyms"`
}

type moleculeSearchResponse struct {
	Molecules []chemblMolecule `json:"molecules"`
}

type moleculeResponse struct {
	Molecule *chemblMolecule `json:"molecule"`
}

type drugIndicationResponse struct {
	DrugIndications []struct {
		MoleculeChEMBLID string `json:"molecule_chembl_id"`
		MeshHeading      string `json:"mesh_heading"`
		MaxPhaseForInd   int    `json:"max_phase_for_ind"`
		IndicationRefs   []struct {
			RefType string `json:"ref_type"`
		} `json:"indication_refs"`
	} `json:"drug_indications"`
}

// maxSearchSynonyms caps the synonyms carried out of a molecule search.
const maxSearchSynonyms = 5

func (m *chemblMolecule) identity(queried string) *CompoundIdentity {
	weight, _ := m.MWFreebase.Float64()
	id := &CompoundIdentity{
		Source:           common.SourceChEMBL,
		SourceID:         m.MoleculeChEMBLID,
		Name:             queried,
		Title:            m.PrefName,
		MolecularFormula: m.FullMolformula,
		MolecularWeight:  weight,
	}
	for _, s := range m.MoleculeSynonyms {
		if s.MoleculeSynonym == "" {
			continue
		}
		id.Synonyms = append(id.Synonyms, s.MoleculeSynonym)
		if len(id.Synonyms) == maxSearchSynonyms {
			break
		}
	}
	return id
}

// SearchMolecule looks a name up in the ChEMBL molecule index.  A non-empty
// result set confirms the name denotes a known molecule.
func (c *ChEMBLClient) SearchMolecule(ctx context.Context, name string) (*CompoundIdentity, bool, error) {
	u := fmt.Sprintf("%s/molecule/search.json?q=%s&limit=1", c.baseURL, url.QueryEscape(name))
	var out moleculeSearchResponse
	err := c.get(ctx, "molecule_search", u, &out)
	if found, err := noMatch(err); !found || err != nil {
		return nil, false, err
	}
	if len(out.Molecules) == 0 {
		return nil, false, nil
	}
	return out.Molecules[0].identity(name), true, nil
}

// Molecule fetches a molecule record by its ChEMBL id, used by the seeder to
// enrich CHEMBL-prefixed drug names from the indication feed.
func (c *ChEMBLClient) Molecule(ctx context.Context, chemblID string) (*CompoundIdentity, bool, error) {
	u := fmt.Sprintf("%s/molecule/%s.json", c.baseURL, url.PathEscape(chemblID))
	var out moleculeResponse
	err := c.get(ctx, "molecule", u, &out)
	if found, err := noMatch(err); !found || err != nil {
		return nil, false, err
	}
	if out.Molecule == nil {
		return nil, false, nil
	}
	return out.Molecule.identity(out.Molecule.PrefName), true, nil
}

// DrugIndications fetches one page of the bulk drug-indication feed.  An
// empty page means the feed is exhausted.
func (c *ChEMBLClient) DrugIndications(ctx context.Context, limit, offset int) ([]IndicationRecord, error) {
	u := fmt.Sprintf("%s/drug_indication.json?limit=%d&offset=%d", c.baseURL, limit, offset)
	var out drugIndicationResponse
	if err := c.get(ctx, "drug_indications", u, &out); err != nil {
		return nil, err
	}

	records := make([]IndicationRecord, 0, len(out.DrugIndications))
	for _, di := range out.DrugIndications {
		rec := IndicationRecord{
			MoleculeChEMBLID: di.MoleculeChEMBLID,
			MeshHeading:      di.MeshHeading,
			MaxPhase:         di.MaxPhaseForInd,
		}
		if len(di.IndicationRefs) > 0 {
			rec.RefType = di.IndicationRefs[0].RefType
		}
		records = append(records, rec)
	}
	return records, nil
}

func (c *ChEMBLClient) get(ctx context.Context, op, u string, out interface{}) error {
	return call(ctx, c.throttle, c.policy, c.meter, op, func(attemptCtx context.Context) error {
		return getJSON(attemptCtx, c.http, u, nil, out)
	})
}
