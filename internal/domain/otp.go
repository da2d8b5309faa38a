package domain

import (
	"fmt"
	"time"
)

// OTPRecord is one outstanding passcode, keyed by organization and employee.
// At most one record exists per key; issuing again overwrites it.
type OTPRecord struct {
	Key       string    `db:"key" json:"key"`
	Code      string    `db:"code" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// OTPKey builds the storage key for an (organization, employee) pair.
func OTPKey(orgID, empID int64) string {
	return fmt.Sprintf("%d-%d", orgID, empID)
}

// Expired reports whether the record's validity window has elapsed at now.
func (r OTPRecord) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(r.CreatedAt) > ttl
}
