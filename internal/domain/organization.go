package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrganizationName identifies an organization. Comparisons are
// case-insensitive because the hosting service treats names that way.
type OrganizationName string

func (n OrganizationName) Equal(other OrganizationName) bool {
	return strings.EqualFold(string(n), string(other))
}

// Organization is an account a signed-in session can access.
type Organization struct {
	Name OrganizationName
}

// OrganizationChoice is a user's persisted answer to "which organization
// governs this workspace". The tenant pins the session that made the pick.
type OrganizationChoice struct {
	Workspace    string
	Organization OrganizationName
	TenantID     uuid.UUID
	ChosenAt     time.Time
}
