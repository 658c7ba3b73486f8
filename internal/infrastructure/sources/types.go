// Package sources contains the HTTP clients for the external biomedical data
// providers (PubChem, ChEMBL, RxNorm, DrugBank, DisGeNET) together with the
// shared retry and throttling machinery.
//
// Every lookup follows the same three-way contract: (value, found, error).
// A provider that answered with no data yields (zero, false, nil); emptiness
// is an ordinary outcome, not an error.  Errors are reserved for providers
// that could not be consulted at all and always carry a pkg/errors code.
package sources

import "github.com/pharmindex/repurpose/pkg/types/common"

// CompoundIdentity is the normalised identity record a provider returns for a
// chemical compound.  Fields a provider does not know stay zero.
type CompoundIdentity struct {
	Source           common.SourceName
	SourceID         string // PubChem CID or ChEMBL molecule id
	Name             string // the queried name
	Title            string
	IUPACName        string
	MolecularFormula string
	MolecularWeight  float64
	CanonicalSMILES  string
	Synonyms         []string
}

// IndicationRecord is a single ChEMBL drug-indication row from the bulk feed.
type IndicationRecord struct {
	MoleculeChEMBLID string
	MeshHeading      string
	MaxPhase         int
	RefType          string
}

// AssociationRecord is a single DisGeNET disease-drug association with its
// raw score in [0, 1].
type AssociationRecord struct {
	DiseaseName string
	DrugName    string
	Score       float64
}

// DrugBankRecord is the enrichment payload DrugBank returns for a drug.
type DrugBankRecord struct {
	Name      string
	Formula   string
	Weight    float64
	Synonyms  []string
	Targets   []string
	Products  []string
	Mechanism string
}
