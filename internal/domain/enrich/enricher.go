// Package enrich assembles the full answer record for a classified query:
// composition, alternative uses, market names and protein targets for drugs,
// curated drug lists for diseases.  Enrichment is best-effort throughout; a
// provider outage degrades a field to its fallback, never the whole record.
package enrich

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"github.com/pharmindex/repurpose/internal/domain/classify"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	"github.com/pharmindex/repurpose/internal/infrastructure/sources"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
	"github.com/pharmindex/repurpose/pkg/types/common"
)

const (
	// DataUnavailable marks a field no provider or fallback could fill.
	DataUnavailable = "Data unavailable"

	// NoCuratedDrugs is the sentinel drug entry for diseases outside the
	// curated table.
	NoCuratedDrugs = "No curated drug data available"

	unknownMessage = "No matching drug or disease found."
)

// Record is the enriched answer for one query.  Fields are populated
// according to Kind; the JSON shape is what the search API returns.
type Record struct {
	Kind  common.InputKind `json:"input_type"`
	Query string           `json:"query"`

	// Drug fields.
	Drug            string          `json:"drug,omitempty"`
	Composition     string          `json:"composition,omitempty"`
	AlternativeUses []string        `json:"alternative_uses"`
	MarketNames     []string        `json:"market_names"`
	ProteinTargets  []ProteinTarget `json:"protein_targets,omitempty"`

	// Disease fields.
	Disease           string   `json:"disease,omitempty"`
	RequiredDrugs     []string `json:"required_drugs,omitempty"`
	RequiredDrugsText string   `json:"required_drugs_text,omitempty"`

	// Unknown fields.
	Message string `json:"message,omitempty"`
}

// compoundProvider is the PubChem surface enrichment needs.
type compoundProvider interface {
	Lookup(ctx context.Context, name string) (*sources.CompoundIdentity, bool, error)
	SearchCID(ctx context.Context, name string) (int64, bool, error)
	Synonyms(ctx context.Context, cid int64) ([]string, bool, error)
}

// brandProvider is the RxNorm surface enrichment needs.
type brandProvider interface {
	BrandConcepts(ctx context.Context, name string) ([]string, bool, error)
}

// Enricher builds Records from classification results.
type Enricher struct {
	dict    *classify.Dictionaries
	pubchem compoundProvider
	rxnorm  brandProvider
	log     logging.Logger
}

// NewEnricher wires an Enricher.  Providers may be nil; their fields then
// fall straight through to curated fallbacks.
func NewEnricher(dict *classify.Dictionaries, pubchem compoundProvider, rxnorm brandProvider, log logging.Logger) *Enricher {
	return &Enricher{
		dict:    dict,
		pubchem: pubchem,
		rxnorm:  rxnorm,
		log:     log.Named("enrich"),
	}
}

// Enrich dispatches on the classified kind.
func (e *Enricher) Enrich(ctx context.Context, res *classify.Result) (*Record, error) {
	switch res.Kind {
	case common.KindDrug:
		return e.EnrichDrug(ctx, res), nil
	case common.KindDisease:
		return e.EnrichDisease(res), nil
	case common.KindUnknown:
		return e.EnrichUnknown(res), nil
	default:
		return nil, apperrors.New(apperrors.ErrCodeEnrichUnknownKind, "unhandled input kind").
			WithDetail(string(res.Kind))
	}
}

// EnrichDrug fills the drug record.  The classification evidence is reused
// when it already carries a formula, saving a provider round trip.
func (e *Enricher) EnrichDrug(ctx context.Context, res *classify.Result) *Record {
	name := res.Query
	rec := &Record{
		Kind:            common.KindDrug,
		Query:           name,
		Drug:            titleCase(name),
		AlternativeUses: []string{},
		MarketNames:     []string{},
	}

	identity := res.Evidence
	if identity == nil || identity.MolecularFormula == "" {
		if looked := e.lookupIdentity(ctx, name); looked != nil {
			identity = looked
		}
	}

	rec.Composition = composition(name, identity)

	if uses := AlternativeUses(e.dict.DrugUses, name); len(uses) > 0 {
		rec.AlternativeUses = uses
	} else if uses := fallbackUses[normalizeName(name)]; len(uses) > 0 {
		rec.AlternativeUses = uses
	}

	if names := e.marketNames(ctx, name, identity, res.Brands); len(names) > 0 {
		rec.MarketNames = names
	}

	rec.ProteinTargets = ProteinTargetsFor(name)
	return rec
}

// EnrichDisease fills the disease record from the curated table.
func (e *Enricher) EnrichDisease(res *classify.Result) *Record {
	drugs := e.dict.CuratedDiseaseDrugs(res.Query)
	if len(drugs) == 0 {
		drugs = []string{NoCuratedDrugs}
	}
	return &Record{
		Kind:              common.KindDisease,
		Query:             res.Query,
		Disease:           res.Query,
		RequiredDrugs:     drugs,
		RequiredDrugsText: strings.Join(drugs, ", "),
		AlternativeUses:   []string{},
		MarketNames:       []string{},
	}
}

// EnrichUnknown fills the fixed not-found record.
func (e *Enricher) EnrichUnknown(res *classify.Result) *Record {
	return &Record{
		Kind:            common.KindUnknown,
		Query:           res.Query,
		Message:         unknownMessage,
		Composition:     "N/A",
		AlternativeUses: []string{},
		MarketNames:     []string{},
	}
}

// Preview condenses a record into the one-line summary stored with search
// history.  Drug previews always carry three segments (composition, first
// alternative use, first market name); "N/A" fills an empty slot so the
// stored format stays fixed.  It never fails.
func Preview(rec *Record) string {
	switch rec.Kind {
	case common.KindDrug:
		parts := []string{"N/A", "N/A", "N/A"}
		if rec.Composition != "" && rec.Composition != DataUnavailable {
			parts[0] = rec.Composition
		}
		if len(rec.AlternativeUses) > 0 {
			parts[1] = rec.AlternativeUses[0]
		}
		if len(rec.MarketNames) > 0 {
			parts[2] = rec.MarketNames[0]
		}
		return strings.Join(parts, " | ")
	case common.KindDisease:
		if len(rec.RequiredDrugs) > 0 && rec.RequiredDrugs[0] != NoCuratedDrugs {
			return rec.RequiredDrugs[0]
		}
		return "N/A"
	default:
		return "N/A"
	}
}

func (e *Enricher) lookupIdentity(ctx context.Context, name string) *sources.CompoundIdentity {
	if e.pubchem == nil {
		return nil
	}
	identity, found, err := e.pubchem.Lookup(ctx, name)
	if err != nil {
		e.log.Warn("compound lookup failed during enrichment",
			logging.String("drug", name), logging.Err(err))
		return nil
	}
	if !found {
		return nil
	}
	return identity
}

func composition(name string, identity *sources.CompoundIdentity) string {
	if identity != nil && identity.MolecularFormula != "" {
		return identity.MolecularFormula
	}
	if formula, ok := fallbackFormulas[normalizeName(name)]; ok {
		return formula
	}
	return DataUnavailable
}

// marketNames resolves trade names: PubChem synonyms first, RxNorm branded
// concepts as fallback.  Brands collected during classification are reused
// instead of a second RxNorm call.
func (e *Enricher) marketNames(ctx context.Context, name string, identity *sources.CompoundIdentity, brands []string) []string {
	if names := e.pubchemMarketNames(ctx, name, identity); len(names) > 0 {
		return names
	}

	concepts := brands
	if len(concepts) == 0 && e.rxnorm != nil {
		found := false
		var err error
		concepts, found, err = e.rxnorm.BrandConcepts(ctx, name)
		if err != nil {
			e.log.Warn("rxnorm brand lookup failed during enrichment",
				logging.String("drug", name), logging.Err(err))
			return nil
		}
		if !found {
			return nil
		}
	}
	return BrandsFromConcepts(name, concepts)
}

func (e *Enricher) pubchemMarketNames(ctx context.Context, name string, identity *sources.CompoundIdentity) []string {
	if e.pubchem == nil {
		return nil
	}

	var cid int64
	if identity != nil && identity.Source == common.SourcePubChem {
		cid, _ = strconv.ParseInt(identity.SourceID, 10, 64)
	}
	if cid == 0 {
		var found bool
		var err error
		cid, found, err = e.pubchem.SearchCID(ctx, name)
		if err != nil || !found {
			if err != nil {
				e.log.Warn("cid search failed during enrichment",
					logging.String("drug", name), logging.Err(err))
			}
			return nil
		}
	}

	synonyms, found, err := e.pubchem.Synonyms(ctx, cid)
	if err != nil || !found {
		if err != nil {
			e.log.Warn("synonym fetch failed during enrichment",
				logging.String("drug", name), logging.Err(err))
		}
		return nil
	}
	return FilterMarketNames(name, synonyms)
}

// titleCase capitalises each word the way drug names are displayed.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
