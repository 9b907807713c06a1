package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Status vocabularies per entity kind.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	CarAvailable   = "available"
	CarRented      = "rented"
	CarMaintenance = "maintenance"

	CustomerBlocked = "blocked"

	FAQPublished = "published"
	FAQDraft     = "draft"

	LeadNew       = "new"
	LeadContacted = "contacted"
	LeadQualified = "qualified"
	LeadLost      = "lost"

	TradePersonPending  = "pending"
	TradePersonApproved = "approved"
	TradePersonRejected = "rejected"

	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
	TransactionRefunded  = "refunded"
)

// NewStatus normalises s and checks it against the allowed vocabulary.
func NewStatus(s string, allowed []string) (string, error) {
	status := strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(allowed, status) {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}
