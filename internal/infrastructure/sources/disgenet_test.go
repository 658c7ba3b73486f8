package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisGeNETAssociations(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		w.Write([]byte(`[
			{"disease_name":"Fibromyalgia","drug_name":"Duloxetine","score":0.82},
			{"disease_name":"","drug_name":"Orphan","score":0.5},
			{"disease_name":"Migraine","drug_name":"","score":0.5},
			{"disease_name":"Migraine","drug_name":"Topiramate","score":0.61}
		]`))
	}))
	defer srv.Close()

	c := NewDisGeNETClient(testProviderConfig(srv.URL, 1), logging.NewNopLogger())
	records, err := c.Associations(context.Background(), 50)

	require.NoError(t, err)
	require.Len(t, records, 2, "records without both names are dropped")
	assert.Equal(t, "Fibromyalgia", records[0].DiseaseName)
	assert.Equal(t, "Duloxetine", records[0].DrugName)
	assert.InDelta(t, 0.82, records[0].Score, 0.001)
}

func TestDisGeNETAssociations_EmptyFeedIsNotAnError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewDisGeNETClient(testProviderConfig(srv.URL, 1), logging.NewNopLogger())
	records, err := c.Associations(context.Background(), 10)

	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestDisGeNETAssociations_ServerFailureSurfaces(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewDisGeNETClient(testProviderConfig(srv.URL, 1), logging.NewNopLogger())
	_, err := c.Associations(context.Background(), 10)

	assert.Error(t, err)
}
