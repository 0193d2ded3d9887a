// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
	CampaignID string
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign with ID %s not found", e.CampaignID)
}

// Helper constructor
func NewCampaignNotFound(id string) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

// IsNotFound reports whether err is a campaign-not-found error anywhere
// in its chain.
func IsNotFound(err error) bool {
	var nf *ErrCampaignNotFound
	return errors.As(err, &nf)
}

// ErrValidation carries the field-level problems that block a create or
// update. It is reported to the caller, never logged as a fault.
type ErrValidation struct {
	Fields map[string]string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func NewValidation(fields map[string]string) error {
	return &ErrValidation{Fields: fields}
}

// IsValidation reports whether err is a validation error anywhere in
// its chain.
func IsValidation(err error) (*ErrValidation, bool) {
	var ve *ErrValidation
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
