// Package mapping holds the disease-drug mapping entity and the rules that
// turn raw provider records into rows worth storing: disease name
// canonicalisation, phase and score based confidence, and first-seen
// deduplication.
package mapping

import (
	"strings"
	"time"

	"github.com/pharmindex/repurpose/internal/infrastructure/sources"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
	"github.com/pharmindex/repurpose/pkg/types/common"
)

// DiseaseMapping is one disease-drug association row.
type DiseaseMapping struct {
	ID                  int64             `json:"id"`
	DiseaseName         string            `json:"disease_name"`
	DrugName            string            `json:"drug_name"`
	ConfidenceScore     float64           `json:"confidence_score"`
	MechanismOfAction   string            `json:"mechanism_of_action,omitempty"`
	ProteinTargets      []string          `json:"protein_targets,omitempty"`
	MarketNames         []string          `json:"market_names,omitempty"`
	ChemicalComposition string            `json:"chemical_composition,omitempty"`
	MolecularWeight     float64           `json:"molecular_weight,omitempty"`
	IUPACName           string            `json:"iupac_name,omitempty"`
	Synonyms            []string          `json:"synonyms,omitempty"`
	Source              common.SourceName `json:"source"`
	CreatedAt           time.Time         `json:"created_at"`
}

// Key identifies a mapping for deduplication and exists checks.  The drug
// name is case-folded so feeds that disagree on casing collapse to one row;
// disease names are already canonical by the time a key is built.
type Key struct {
	DiseaseName string
	DrugName    string
}

// NewKey builds a dedup key, folding the drug name.
func NewKey(diseaseName, drugName string) Key {
	return Key{
		DiseaseName: diseaseName,
		DrugName:    strings.ToLower(strings.TrimSpace(drugName)),
	}
}

// Key returns the mapping's dedup key.
func (m *DiseaseMapping) Key() Key {
	return NewKey(m.DiseaseName, m.DrugName)
}

// Validate rejects mappings that must never reach storage.
func (m *DiseaseMapping) Validate() error {
	if m.DiseaseName == "" {
		return apperrors.New(apperrors.ErrCodeMappingInvalid, "disease name is required")
	}
	if m.DrugName == "" {
		return apperrors.New(apperrors.ErrCodeMappingInvalid, "drug name is required")
	}
	if m.ConfidenceScore < 0 || m.ConfidenceScore > 100 {
		return apperrors.New(apperrors.ErrCodeMappingInvalid, "confidence score out of range").
			WithDetail("must be within [0, 100]")
	}
	return nil
}

// FromIndication converts a ChEMBL drug indication into a mapping.  Returns
// (nil, false) when the record lacks a disease or drug name after
// canonicalisation.
func FromIndication(rec sources.IndicationRecord) (*DiseaseMapping, bool) {
	disease := CanonicalDiseaseName(rec.MeshHeading)
	if disease == "" || rec.MoleculeChEMBLID == "" {
		return nil, false
	}
	return &DiseaseMapping{
		DiseaseName:       disease,
		DrugName:          rec.MoleculeChEMBLID,
		ConfidenceScore:   ConfidenceFromPhase(rec.MaxPhase),
		MechanismOfAction: rec.RefType,
		Source:            common.SourceChEMBL,
	}, true
}

// FromAssociation converts a DisGeNET association into a mapping.
func FromAssociation(rec sources.AssociationRecord) (*DiseaseMapping, bool) {
	disease := CanonicalDiseaseName(rec.DiseaseName)
	if disease == "" || rec.DrugName == "" {
		return nil, false
	}
	return &DiseaseMapping{
		DiseaseName:     disease,
		DrugName:        rec.DrugName,
		ConfidenceScore: ConfidenceFromScore(rec.Score),
		Source:          common.SourceDisGeNET,
	}, true
}

// Dedupe keeps the first mapping seen per (disease, drug) key, preserving
// input order.
func Dedupe(mappings []*DiseaseMapping) []*DiseaseMapping {
	seen := make(map[Key]struct{}, len(mappings))
	unique := mappings[:0:0]
	for _, m := range mappings {
		if _, dup := seen[m.Key()]; dup {
			continue
		}
		seen[m.Key()] = struct{}{}
		unique = append(unique, m)
	}
	return unique
}
