// Package classify decides whether a free-text query names a drug, a disease,
// or neither.  The decision runs through layered checks ordered from cheapest
// to most expensive; the first layer that produces a verdict wins, and the
// network is only touched when every static layer abstains.
package classify

import (
	"context"
	"strings"
	"unicode"

	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	"github.com/pharmindex/repurpose/internal/infrastructure/sources"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
	"github.com/pharmindex/repurpose/pkg/types/common"
)

// Layer identifies which check produced the classification verdict.
type Layer string

const (
	LayerDrugDictionary    Layer = "drug-dictionary"
	LayerDiseaseDictionary Layer = "disease-dictionary"
	LayerKeyword           Layer = "keyword"
	LayerPrefilter         Layer = "prefilter"
	LayerPubChem           Layer = "pubchem"
	LayerChEMBL            Layer = "chembl"
	LayerRxNorm            Layer = "rxnorm"
	LayerExhausted         Layer = "exhausted"
)

// Result is the outcome of classifying one query.
type Result struct {
	Query string
	Kind  common.InputKind
	Layer Layer

	// Evidence is the compound identity collected while confirming a drug via
	// PubChem or ChEMBL; enrichment reuses it to avoid a second lookup.
	Evidence *sources.CompoundIdentity

	// Brands holds the RxNorm branded-product concepts when RxNorm was the
	// confirming layer.
	Brands []string
}

// compoundLookup confirms a name against a compound registry.
type compoundLookup interface {
	Lookup(ctx context.Context, name string) (*sources.CompoundIdentity, bool, error)
}

// moleculeSearch confirms a name against the ChEMBL molecule index.
type moleculeSearch interface {
	SearchMolecule(ctx context.Context, name string) (*sources.CompoundIdentity, bool, error)
}

// brandLookup confirms a name against the RxNorm branded-product index.
type brandLookup interface {
	BrandConcepts(ctx context.Context, name string) ([]string, bool, error)
}

// Classifier implements the layered classification chain.
type Classifier struct {
	dict    *Dictionaries
	pubchem compoundLookup
	chembl  moleculeSearch
	rxnorm  brandLookup
	log     logging.Logger
}

// NewClassifier wires a Classifier from its dictionaries and confirmation
// providers.  Any provider may be nil, in which case its layer is skipped.
func NewClassifier(dict *Dictionaries, pubchem compoundLookup, chembl moleculeSearch, rxnorm brandLookup, log logging.Logger) *Classifier {
	return &Classifier{
		dict:    dict,
		pubchem: pubchem,
		chembl:  chembl,
		rxnorm:  rxnorm,
		log:     log.Named("classify"),
	}
}

// normalizeQuery canonicalises a query for dictionary lookups.
func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// iupacWordLimit rejects PubChem hits whose IUPAC name reads like a systematic
// chemical description rather than a drug.
const iupacWordLimit = 10

// drugLikeIUPAC reports whether a PubChem IUPAC name looks like a marketed
// drug rather than a bare chemical.
func drugLikeIUPAC(iupac string) bool {
	iupac = strings.ToLower(iupac)
	if iupac == "" {
		return false
	}
	if strings.Contains(iupac, "acid") {
		return false
	}
	return len(strings.Fields(iupac)) <= iupacWordLimit
}

// passesPrefilter reports whether a query is plausible enough as a drug name
// to justify network confirmation.  Queries shorter than four characters,
// purely numeric queries, and queries without a single letter are rejected
// outright.
func passesPrefilter(q string) bool {
	if len(q) < 4 {
		return false
	}
	allDigits := true
	hasAlpha := false
	for _, r := range q {
		if !unicode.IsDigit(r) {
			allDigits = false
		}
		if unicode.IsLetter(r) {
			hasAlpha = true
		}
	}
	return !allDigits && hasAlpha
}

// Classify runs the query through the classification chain.  Static layers
// never touch the network; provider errors are logged and treated as
// abstentions so an outage degrades the verdict rather than failing the
// request.
func (c *Classifier) Classify(ctx context.Context, query string) (*Result, error) {
	q := normalizeQuery(query)
	if q == "" {
		return nil, apperrors.New(apperrors.ErrCodeClassifyEmptyQuery, "query must not be empty")
	}

	if _, ok := c.dict.DrugUses[q]; ok {
		return &Result{Query: q, Kind: common.KindDrug, Layer: LayerDrugDictionary}, nil
	}
	if _, ok := c.dict.DiseaseDrugs[q]; ok {
		return &Result{Query: q, Kind: common.KindDisease, Layer: LayerDiseaseDictionary}, nil
	}

	// Substring hints: "stomach ache" is disease-directed even though it is
	// not a dictionary key.  This also means a brand name containing a hint
	// word ("Coldarin") classifies as disease; accepted behaviour.
	for _, hint := range c.dict.DiseaseHints {
		if strings.Contains(q, hint) {
			return &Result{Query: q, Kind: common.KindDisease, Layer: LayerKeyword}, nil
		}
	}

	if !passesPrefilter(q) {
		c.log.Debug("query rejected by prefilter", logging.String("query", q))
		return &Result{Query: q, Kind: common.KindUnknown, Layer: LayerPrefilter}, nil
	}

	if c.pubchem != nil {
		identity, found, err := c.pubchem.Lookup(ctx, q)
		switch {
		case err != nil:
			c.log.Warn("pubchem confirmation failed", logging.String("query", q), logging.Err(err))
		case found && drugLikeIUPAC(identity.IUPACName):
			return &Result{Query: q, Kind: common.KindDrug, Layer: LayerPubChem, Evidence: identity}, nil
		case found:
			c.log.Debug("pubchem hit rejected as non-drug-like",
				logging.String("query", q), logging.String("iupac", identity.IUPACName))
		}
	}

	if c.chembl != nil {
		identity, found, err := c.chembl.SearchMolecule(ctx, q)
		if err != nil {
			c.log.Warn("chembl confirmation failed", logging.String("query", q), logging.Err(err))
		} else if found {
			return &Result{Query: q, Kind: common.KindDrug, Layer: LayerChEMBL, Evidence: identity}, nil
		}
	}

	if c.rxnorm != nil {
		brands, found, err := c.rxnorm.BrandConcepts(ctx, q)
		if err != nil {
			c.log.Warn("rxnorm confirmation failed", logging.String("query", q), logging.Err(err))
		} else if found {
			return &Result{Query: q, Kind: common.KindDrug, Layer: LayerRxNorm, Brands: brands}, nil
		}
	}

	return &Result{Query: q, Kind: common.KindUnknown, Layer: LayerExhausted}, nil
}
