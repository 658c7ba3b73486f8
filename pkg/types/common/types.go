// Package common defines shared primitive types used across the repurpose
// service: identifiers, pagination, and the generic API response envelope.
package common

import (
	"time"

	"github.com/google/uuid"
)

// ID is a string alias for UUID v4.
type ID string

// NewID generates a fresh random ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// InputKind classifies what a user query refers to.
type InputKind string

const (
	KindDrug    InputKind = "drug"
	KindDisease InputKind = "disease"
	KindUnknown InputKind = "unknown"
)

// Valid reports whether k is one of the three recognised kinds.
func (k InputKind) Valid() bool {
	switch k {
	case KindDrug, KindDisease, KindUnknown:
		return true
	}
	return false
}

// SourceName identifies an external data provider.
type SourceName string

const (
	SourcePubChem  SourceName = "pubchem"
	SourceChEMBL   SourceName = "chembl"
	SourceRxNorm   SourceName = "rxnorm"
	SourceDrugBank SourceName = "drugbank"
	SourceDisGeNET SourceName = "disgenet"
	SourceCurated  SourceName = "curated"
)

// Pagination defines parameters for paginated requests.
type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total,omitempty"`
}

// Offset returns the zero-based item offset for the current page.
func (p Pagination) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// ErrorDetail provides structured error information for API responses.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// APIResponse is the generic wrapper for all API responses.
type APIResponse[T any] struct {
	Success    bool         `json:"success"`
	Data       T            `json:"data,omitempty"`
	Error      *ErrorDetail `json:"error,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	RequestID  string       `json:"request_id"`
	Timestamp  time.Time    `json:"timestamp"`
}

// OK builds a successful APIResponse around data.
func OK[T any](requestID string, data T) APIResponse[T] {
	return APIResponse[T]{
		Success:   true,
		Data:      data,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
	}
}

// Fail builds a failed APIResponse carrying structured error detail.
func Fail[T any](requestID, code, message, detail string) APIResponse[T] {
	return APIResponse[T]{
		Success:   false,
		Error:     &ErrorDetail{Code: code, Message: message, Detail: detail},
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
	}
}
