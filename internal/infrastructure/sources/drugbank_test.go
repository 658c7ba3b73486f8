package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pharmindex/repurpose/internal/config"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrugBankLookup_MissingKeyIsUnavailableNotEmpty(t *testing.T) {
	t.Parallel()

	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewDrugBankClient(testProviderConfig(srv.URL, 1), logging.NewNopLogger())
	require.False(t, c.Available())

	_, found, err := c.Lookup(context.Background(), "metformin")
	assert.False(t, found)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSourceAuthMissing))
	assert.True(t, apperrors.IsSourceUnavailable(err),
		"missing credential counts as unavailable for fallback purposes")
	assert.False(t, called, "no network call without a credential")
}

func TestDrugBankLookup_SendsBearerTokenAndParsesRecord(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sekret", r.Header.Get("Authorization"))
		assert.Equal(t, "metformin", r.URL.Query().Get("name"))
		w.Write([]byte(`{"drugs":[{
			"name":"Metformin",
			"formula":"C4H11N5",
			"weight":{"average":"129.16"},
			"synonyms":["Glucophage"],
			"targets":[{"name":"AMPK"},{"name":""}],
			"products":["Glucophage","Fortamet"],
			"mechanism_of_action":"Decreases hepatic glucose production"}]}`))
	}))
	defer srv.Close()

	cfg := testProviderConfig(srv.URL, 1)
	cfg.APIKey = "sekret"
	c := NewDrugBankClient(cfg, logging.NewNopLogger())
	require.True(t, c.Available())

	rec, found, err := c.Lookup(context.Background(), "metformin")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Metformin", rec.Name)
	assert.Equal(t, "C4H11N5", rec.Formula)
	assert.InDelta(t, 129.16, rec.Weight, 0.001)
	assert.Equal(t, []string{"AMPK"}, rec.Targets, "empty target names are dropped")
	assert.Equal(t, []string{"Glucophage", "Fortamet"}, rec.Products)
}

func TestDrugBankLookup_EmptyResultIsNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"drugs":[]}`))
	}))
	defer srv.Close()

	cfg := testProviderConfig(srv.URL, 1)
	cfg.APIKey = "sekret"
	c := NewDrugBankClient(cfg, logging.NewNopLogger())

	rec, found, err := c.Lookup(context.Background(), "unobtainium")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, rec)
}

func TestDisGeNETAssociations_ParsesAndDropsBlankRecords(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		w.Write([]byte(`[
			{"disease_name":"polycystic ovary syndrome","drug_name":"Metformin","score":0.82},
			{"disease_name":"","drug_name":"Orphan","score":0.5},
			{"disease_name":"fever","drug_name":"","score":0.4},
			{"disease_name":"diabetes mellitus","drug_name":"Insulin","score":0.95}
		]`))
	}))
	defer srv.Close()

	c := NewDisGeNETClient(testProviderConfig(srv.URL, 1), logging.NewNopLogger())
	records, err := c.Associations(context.Background(), 50)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, AssociationRecord{DiseaseName: "polycystic ovary syndrome", DrugName: "Metformin", Score: 0.82}, records[0])
	assert.Equal(t, AssociationRecord{DiseaseName: "diabetes mellitus", DrugName: "Insulin", Score: 0.95}, records[1])
}

func TestDisGeNETAssociations_NotFoundYieldsEmptyList(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewDisGeNETClient(testProviderConfig(srv.URL, 1), logging.NewNopLogger())
	records, err := c.Associations(context.Background(), 10)

	assert.NoError(t, err)
	assert.Empty(t, records)
}

// Guards against config.ProviderConfig drifting away from what the client
// constructors expect.
func TestProviderConfigDefaults_SatisfyClients(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	c := NewPubChemClient(cfg.Sources.PubChem, logging.NewNopLogger())
	assert.NotNil(t, c)
	assert.False(t, NewDrugBankClient(cfg.Sources.DrugBank, logging.NewNopLogger()).Available())
}
