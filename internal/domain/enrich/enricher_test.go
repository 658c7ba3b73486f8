package enrich

import (
	"context"
	"testing"

	"github.com/pharmindex/repurpose/internal/domain/classify"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	"github.com/pharmindex/repurpose/internal/infrastructure/sources"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
	"github.com/pharmindex/repurpose/pkg/types/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePubChem struct {
	lookupCalls   int
	identity      *sources.CompoundIdentity
	identityFound bool
	lookupErr     error

	cidCalls int
	cid      int64
	cidFound bool

	synonyms      []string
	synonymsFound bool
}

func (f *fakePubChem) Lookup(context.Context, string) (*sources.CompoundIdentity, bool, error) {
	f.lookupCalls++
	return f.identity, f.identityFound, f.lookupErr
}

func (f *fakePubChem) SearchCID(context.Context, string) (int64, bool, error) {
	f.cidCalls++
	return f.cid, f.cidFound, nil
}

func (f *fakePubChem) Synonyms(context.Context, int64) ([]string, bool, error) {
	return f.synonyms, f.synonymsFound, nil
}

type fakeRxNorm struct {
	calls    int
	concepts []string
	found    bool
	err      error
}

func (f *fakeRxNorm) BrandConcepts(context.Context, string) ([]string, bool, error) {
	f.calls++
	return f.concepts, f.found, f.err
}

func newTestEnricher(pc *fakePubChem, rx *fakeRxNorm) *Enricher {
	var cp compoundProvider
	if pc != nil {
		cp = pc
	}
	var bp brandProvider
	if rx != nil {
		bp = rx
	}
	return NewEnricher(classify.DefaultDictionaries(), cp, bp, logging.NewNopLogger())
}

func TestEnrichDrug_ProviderBackedRecord(t *testing.T) {
	t.Parallel()

	pc := &fakePubChem{
		identity: &sources.CompoundIdentity{
			Source:           common.SourcePubChem,
			SourceID:         "2244",
			MolecularFormula: "C9H8O4",
		},
		identityFound: true,
		synonyms:      []string{"aspirin", "Ecotrin", "acetylsalicylic acid", "2-Acetoxybenzoate", "Bufferin"},
		synonymsFound: true,
	}
	e := newTestEnricher(pc, nil)

	rec := e.EnrichDrug(context.Background(), &classify.Result{Query: "aspirin", Kind: common.KindDrug})

	assert.Equal(t, "Aspirin", rec.Drug)
	assert.Equal(t, "C9H8O4", rec.Composition)
	assert.Contains(t, rec.AlternativeUses, "Thrombosis prevention")
	assert.Equal(t, []string{"Ecotrin", "Bufferin"}, rec.MarketNames,
		"own name, chemical names and digit-bearing synonyms are filtered out")
	assert.NotEmpty(t, rec.ProteinTargets)
	assert.Equal(t, "COX-1", rec.ProteinTargets[0].Name)
	assert.Zero(t, pc.cidCalls, "cid comes from the identity record, not a second search")
}

func TestEnrichDrug_EvidenceReuseSkipsLookup(t *testing.T) {
	t.Parallel()

	pc := &fakePubChem{synonymsFound: false}
	e := newTestEnricher(pc, nil)

	res := &classify.Result{
		Query: "ibuprofen",
		Kind:  common.KindDrug,
		Evidence: &sources.CompoundIdentity{
			Source:           common.SourcePubChem,
			SourceID:         "3672",
			MolecularFormula: "C13H18O2",
		},
	}
	rec := e.EnrichDrug(context.Background(), res)

	assert.Equal(t, "C13H18O2", rec.Composition)
	assert.Zero(t, pc.lookupCalls, "classification evidence with a formula is reused")
}

func TestEnrichDrug_ProviderOutageFallsBackToCuratedData(t *testing.T) {
	t.Parallel()

	pc := &fakePubChem{lookupErr: apperrors.SourceUnavailable("pubchem is down")}
	rx := &fakeRxNorm{err: apperrors.SourceUnavailable("rxnorm is down")}
	e := newTestEnricher(pc, rx)

	rec := e.EnrichDrug(context.Background(), &classify.Result{Query: "metformin", Kind: common.KindDrug})

	assert.Equal(t, "C4H11N5", rec.Composition, "curated formula fallback")
	assert.Contains(t, rec.AlternativeUses, "Polycystic ovary syndrome")
	assert.Empty(t, rec.MarketNames, "no fabricated market names on outage")
}

func TestEnrichDrug_UnknownDrugReportsDataUnavailable(t *testing.T) {
	t.Parallel()

	e := newTestEnricher(nil, nil)
	rec := e.EnrichDrug(context.Background(), &classify.Result{Query: "zuranolol", Kind: common.KindDrug})

	assert.Equal(t, DataUnavailable, rec.Composition)
	assert.Equal(t, []string{"Hypertension", "Angina pectoris", "Heart failure"}, rec.AlternativeUses,
		"-olol stem infers the beta-blocker class")
	assert.Empty(t, rec.MarketNames)
	assert.Empty(t, rec.ProteinTargets)
}

func TestEnrichDrug_BrandEvidenceAvoidsSecondRxNormCall(t *testing.T) {
	t.Parallel()

	rx := &fakeRxNorm{}
	e := newTestEnricher(nil, rx)

	res := &classify.Result{
		Query:  "aspirin",
		Kind:   common.KindDrug,
		Brands: []string{"aspirin 325 MG Oral Tablet [Bayer]", "{aspirin pack} [Migraine Relief]"},
	}
	rec := e.EnrichDrug(context.Background(), res)

	assert.Equal(t, []string{"{aspirin pack}"}, rec.MarketNames,
		"dosage-bearing concepts are rejected, pack names survive")
	assert.Zero(t, rx.calls)
}

func TestEnrichDisease_CuratedTable(t *testing.T) {
	t.Parallel()

	e := newTestEnricher(nil, nil)
	rec := e.EnrichDisease(&classify.Result{Query: "pcos", Kind: common.KindDisease})

	assert.Equal(t, common.KindDisease, rec.Kind)
	assert.Equal(t, "pcos", rec.Disease)
	assert.Equal(t, []string{"Metformin", "Clomiphene", "Letrozole"}, rec.RequiredDrugs)
	assert.Equal(t, "Metformin, Clomiphene, Letrozole", rec.RequiredDrugsText)
}

func TestEnrichDisease_OutsideTableGetsSentinel(t *testing.T) {
	t.Parallel()

	e := newTestEnricher(nil, nil)
	rec := e.EnrichDisease(&classify.Result{Query: "stomach ache", Kind: common.KindDisease})

	assert.Equal(t, []string{NoCuratedDrugs}, rec.RequiredDrugs)
}

func TestEnrichUnknown_FixedRecord(t *testing.T) {
	t.Parallel()

	e := newTestEnricher(nil, nil)
	rec := e.EnrichUnknown(&classify.Result{Query: "xyz123", Kind: common.KindUnknown})

	assert.Equal(t, common.KindUnknown, rec.Kind)
	assert.Equal(t, "No matching drug or disease found.", rec.Message)
	assert.Equal(t, "N/A", rec.Composition)
	assert.Empty(t, rec.AlternativeUses)
	assert.Empty(t, rec.MarketNames)
}

func TestEnrich_DispatchesOnKind(t *testing.T) {
	t.Parallel()

	e := newTestEnricher(nil, nil)
	ctx := context.Background()

	drug, err := e.Enrich(ctx, &classify.Result{Query: "aspirin", Kind: common.KindDrug})
	require.NoError(t, err)
	assert.Equal(t, common.KindDrug, drug.Kind)

	disease, err := e.Enrich(ctx, &classify.Result{Query: "fever", Kind: common.KindDisease})
	require.NoError(t, err)
	assert.Equal(t, common.KindDisease, disease.Kind)

	_, err = e.Enrich(ctx, &classify.Result{Query: "x", Kind: common.InputKind("bogus")})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeEnrichUnknownKind))
}

func TestPreview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  *Record
		want string
	}{
		{
			name: "drug with all parts",
			rec: &Record{Kind: common.KindDrug, Composition: "C9H8O4",
				AlternativeUses: []string{"Pain relief", "Anti-inflammatory"},
				MarketNames:     []string{"Ecotrin", "Bufferin"}},
			want: "C9H8O4 | Pain relief | Ecotrin",
		},
		{
			name: "drug with unavailable composition",
			rec: &Record{Kind: common.KindDrug, Composition: DataUnavailable,
				AlternativeUses: []string{"Hypertension"}},
			want: "N/A | Hypertension | N/A",
		},
		{
			name: "drug with composition only",
			rec:  &Record{Kind: common.KindDrug, Composition: "C9H8O4"},
			want: "C9H8O4 | N/A | N/A",
		},
		{
			name: "drug with nothing",
			rec:  &Record{Kind: common.KindDrug, Composition: DataUnavailable},
			want: "N/A | N/A | N/A",
		},
		{
			name: "disease with drugs",
			rec:  &Record{Kind: common.KindDisease, RequiredDrugs: []string{"Metformin", "Clomiphene"}},
			want: "Metformin",
		},
		{
			name: "disease with sentinel",
			rec:  &Record{Kind: common.KindDisease, RequiredDrugs: []string{NoCuratedDrugs}},
			want: "N/A",
		},
		{
			name: "unknown",
			rec:  &Record{Kind: common.KindUnknown},
			want: "N/A",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Preview(tt.rec))
		})
	}
}

func TestTitleCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Aspirin", titleCase("ASPIRIN"))
	assert.Equal(t, "Bayer Aspirin", titleCase("bayer aspirin"))
	assert.Equal(t, "Metformin", titleCase("  metformin "))
}
