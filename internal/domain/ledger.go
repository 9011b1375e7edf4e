package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors
var (
	ErrInvalidLedgerName  = errors.New("invalid ledger name")
	ErrInvalidDisplayName = errors.New("invalid member display name")
	ErrDuplicateMember    = errors.New("member already in ledger")
)

// Validation constants
const (
	MaxLedgerNameLength  = 255
	MaxDisplayNameLength = 100
)

// Member is a participant in one ledger. Identity is the ID; the display
// name is cosmetic and may repeat across members.
type Member struct {
	ID          string
	DisplayName string
	JoinedAt    time.Time
}

// Ledger is a named group of members and their shared expenses.
type Ledger struct {
	ID        string
	Name      string
	Members   []Member
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasMember reports whether memberID belongs to the ledger.
func (l *Ledger) HasMember(memberID string) bool {
	for _, m := range l.Members {
		if m.ID == memberID {
			return true
		}
	}
	return false
}

// AddMember appends a member, rejecting duplicates by ID.
func (l *Ledger) AddMember(m Member) error {
	if l.HasMember(m.ID) {
		return ErrDuplicateMember
	}
	l.Members = append(l.Members, m)
	return nil
}

// ValidateLedgerName validates a ledger name.
func ValidateLedgerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidLedgerName)
	}
	if len(name) > MaxLedgerNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidLedgerName, MaxLedgerNameLength)
	}
	return nil
}

// ValidateDisplayName validates a member display name.
func ValidateDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: display name cannot be empty", ErrInvalidDisplayName)
	}
	if len(name) > MaxDisplayNameLength {
		return fmt.Errorf("%w: display name exceeds %d characters", ErrInvalidDisplayName, MaxDisplayNameLength)
	}
	return nil
}
