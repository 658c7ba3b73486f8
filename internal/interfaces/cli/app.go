package cli

import (
	"github.com/pharmindex/repurpose/internal/domain/classify"
	"github.com/pharmindex/repurpose/internal/domain/enrich"
	"github.com/pharmindex/repurpose/internal/infrastructure/database/postgres"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/prometheus"
	"github.com/pharmindex/repurpose/internal/infrastructure/sources"
)

// providerClients bundles the external source clients built from config.
type providerClients struct {
	pubchem  *sources.PubChemClient
	chembl   *sources.ChEMBLClient
	rxnorm   *sources.RxNormClient
	drugbank *sources.DrugBankClient
	disgenet *sources.DisGeNETClient
}

// buildProviders constructs the source clients; metrics may be nil for
// commands without a metrics endpoint.
func (a *appContext) buildProviders(metrics *prometheus.AppMetrics) *providerClients {
	return &providerClients{
		pubchem:  sources.NewPubChemClient(a.cfg.Sources.PubChem, a.log).WithMetrics(metrics),
		chembl:   sources.NewChEMBLClient(a.cfg.Sources.ChEMBL, a.log).WithMetrics(metrics),
		rxnorm:   sources.NewRxNormClient(a.cfg.Sources.RxNorm, a.log).WithMetrics(metrics),
		drugbank: sources.NewDrugBankClient(a.cfg.Sources.DrugBank, a.log).WithMetrics(metrics),
		disgenet: sources.NewDisGeNETClient(a.cfg.Sources.DisGeNET, a.log).WithMetrics(metrics),
	}
}

// buildPipeline constructs the classification and enrichment chain shared
// by the serve and search commands.
func (a *appContext) buildPipeline(providers *providerClients) (*classify.Dictionaries, *classify.Classifier, *enrich.Enricher) {
	dict := classify.DefaultDictionaries()
	classifier := classify.NewClassifier(dict, providers.pubchem, providers.chembl, providers.rxnorm, a.log)
	enricher := enrich.NewEnricher(dict, providers.pubchem, providers.rxnorm, a.log)
	return dict, classifier, enricher
}

func (a *appContext) openPostgres() (*postgres.Connection, error) {
	return postgres.NewConnection(a.cfg.Database, a.log)
}
