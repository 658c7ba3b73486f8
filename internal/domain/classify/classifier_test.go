package classify

import (
	"context"
	"strings"
	"testing"

	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	"github.com/pharmindex/repurpose/internal/infrastructure/sources"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
	"github.com/pharmindex/repurpose/pkg/types/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spyPubChem struct {
	calls    int
	identity *sources.CompoundIdentity
	found    bool
	err      error
}

func (s *spyPubChem) Lookup(context.Context, string) (*sources.CompoundIdentity, bool, error) {
	s.calls++
	return s.identity, s.found, s.err
}

type spyChEMBL struct {
	calls    int
	identity *sources.CompoundIdentity
	found    bool
	err      error
}

func (s *spyChEMBL) SearchMolecule(context.Context, string) (*sources.CompoundIdentity, bool, error) {
	s.calls++
	return s.identity, s.found, s.err
}

type spyRxNorm struct {
	calls  int
	brands []string
	found  bool
	err    error
}

func (s *spyRxNorm) BrandConcepts(context.Context, string) ([]string, bool, error) {
	s.calls++
	return s.brands, s.found, s.err
}

func newTestClassifier(pc *spyPubChem, ch *spyChEMBL, rx *spyRxNorm) (*Classifier, *spyPubChem, *spyChEMBL, *spyRxNorm) {
	if pc == nil {
		pc = &spyPubChem{}
	}
	if ch == nil {
		ch = &spyChEMBL{}
	}
	if rx == nil {
		rx = &spyRxNorm{}
	}
	c := NewClassifier(DefaultDictionaries(), pc, ch, rx, logging.NewNopLogger())
	return c, pc, ch, rx
}

func TestClassify_EmptyQueryIsRejected(t *testing.T) {
	t.Parallel()
	c, _, _, _ := newTestClassifier(nil, nil, nil)

	_, err := c.Classify(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeClassifyEmptyQuery))
}

func TestClassify_StaticLayersNeverTouchTheNetwork(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		kind  common.InputKind
		layer Layer
	}{
		{"aspirin", common.KindDrug, LayerDrugDictionary},
		{"  Metformin  ", common.KindDrug, LayerDrugDictionary},
		{"pcos", common.KindDisease, LayerDiseaseDictionary},
		{"Diabetes", common.KindDisease, LayerDiseaseDictionary},
		{"stomach ache", common.KindDisease, LayerKeyword},
		{"severe chest pain", common.KindDisease, LayerKeyword},
		{"abc", common.KindUnknown, LayerPrefilter},
		{"12345", common.KindUnknown, LayerPrefilter},
		{"....----", common.KindUnknown, LayerPrefilter},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			c, pc, ch, rx := newTestClassifier(nil, nil, nil)

			res, err := c.Classify(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, res.Kind)
			assert.Equal(t, tt.layer, res.Layer)
			assert.Zero(t, pc.calls+ch.calls+rx.calls, "static layer must not call any provider")
		})
	}
}

// A brand name containing a disease hint word classifies as disease.  This is
// a known limitation of substring hints, kept for compatibility.
func TestClassify_HintSubstringCatchesBrandNames(t *testing.T) {
	t.Parallel()
	c, _, _, _ := newTestClassifier(nil, nil, nil)

	res, err := c.Classify(context.Background(), "coldarin")
	require.NoError(t, err)
	assert.Equal(t, common.KindDisease, res.Kind)
	assert.Equal(t, LayerKeyword, res.Layer)
}

func TestClassify_PubChemConfirmsDrugLikeCompound(t *testing.T) {
	t.Parallel()

	identity := &sources.CompoundIdentity{
		Source:    common.SourcePubChem,
		SourceID:  "3672",
		IUPACName: "2-[4-(2-methylpropyl)phenyl]propanoate",
	}
	c, pc, ch, _ := newTestClassifier(&spyPubChem{identity: identity, found: true}, nil, nil)

	res, err := c.Classify(context.Background(), "brufen")
	require.NoError(t, err)
	assert.Equal(t, common.KindDrug, res.Kind)
	assert.Equal(t, LayerPubChem, res.Layer)
	assert.Same(t, identity, res.Evidence)
	assert.Equal(t, 1, pc.calls)
	assert.Zero(t, ch.calls, "chembl not consulted after a pubchem confirmation")
}

func TestClassify_PubChemRejectsNonDrugLikeIUPAC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		iupac string
	}{
		{"empty iupac", ""},
		{"acid", "2-acetyloxybenzoic acid"},
		{"too many words", strings.Repeat("word ", 11)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pc := &spyPubChem{identity: &sources.CompoundIdentity{IUPACName: tt.iupac}, found: true}
			c, _, ch, rx := newTestClassifier(pc, nil, nil)

			res, err := c.Classify(context.Background(), "mystery")
			require.NoError(t, err)
			assert.Equal(t, common.KindUnknown, res.Kind)
			assert.Equal(t, LayerExhausted, res.Layer)
			assert.Equal(t, 1, ch.calls, "rejection falls through to chembl")
			assert.Equal(t, 1, rx.calls)
		})
	}
}

func TestClassify_ProviderErrorFallsThroughToNextLayer(t *testing.T) {
	t.Parallel()

	pc := &spyPubChem{err: apperrors.SourceUnavailable("pubchem is down")}
	ch := &spyChEMBL{identity: &sources.CompoundIdentity{SourceID: "CHEMBL1431"}, found: true}
	c, _, _, rx := newTestClassifier(pc, ch, nil)

	res, err := c.Classify(context.Background(), "metforminum")
	require.NoError(t, err, "provider outage must not fail classification")
	assert.Equal(t, common.KindDrug, res.Kind)
	assert.Equal(t, LayerChEMBL, res.Layer)
	assert.Equal(t, "CHEMBL1431", res.Evidence.SourceID)
	assert.Zero(t, rx.calls)
}

func TestClassify_RxNormIsLastConfirmingLayer(t *testing.T) {
	t.Parallel()

	rx := &spyRxNorm{brands: []string{"aspirin 325 MG Oral Tablet [Bayer]"}, found: true}
	c, pc, ch, _ := newTestClassifier(nil, nil, rx)

	res, err := c.Classify(context.Background(), "bayerin")
	require.NoError(t, err)
	assert.Equal(t, common.KindDrug, res.Kind)
	assert.Equal(t, LayerRxNorm, res.Layer)
	assert.Equal(t, rx.brands, res.Brands)
	assert.Equal(t, 1, pc.calls)
	assert.Equal(t, 1, ch.calls)
}

func TestClassify_AllLayersExhaustedIsUnknown(t *testing.T) {
	t.Parallel()
	c, pc, ch, rx := newTestClassifier(nil, nil, nil)

	res, err := c.Classify(context.Background(), "xyzq999")
	require.NoError(t, err)
	assert.Equal(t, common.KindUnknown, res.Kind)
	assert.Equal(t, LayerExhausted, res.Layer)
	assert.Equal(t, 1, pc.calls)
	assert.Equal(t, 1, ch.calls)
	assert.Equal(t, 1, rx.calls)
}

func TestClassify_NilProvidersSkipNetworkLayers(t *testing.T) {
	t.Parallel()
	c := NewClassifier(DefaultDictionaries(), nil, nil, nil, logging.NewNopLogger())

	res, err := c.Classify(context.Background(), "xyzq999")
	require.NoError(t, err)
	assert.Equal(t, common.KindUnknown, res.Kind)
	assert.Equal(t, LayerExhausted, res.Layer)
}
