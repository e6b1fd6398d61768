package job

import (
	"time"

	"github.com/google/uuid"
)

// Posting is a job record from the live search API or the persisted
// snapshot. Optional fields are nil when the source omits them.
type Posting struct {
	ID           uuid.UUID
	ExternalID   string
	Title        string
	Description  string
	Company      string
	Location     string
	SalaryMin    *float64
	SalaryMax    *float64
	Currency     string
	ContractTime string
	Tags         string
	Created      *time.Time
	Expires      *time.Time
	ApplyURL     string
}

// Text is the string a posting is embedded as.
func (p Posting) Text() string {
	return p.Title + " " + p.Description
}
