package domain

import "time"

type Session struct {
	ID        int64     `db:"id" json:"id"`
	OrgID     int64     `db:"orgid" json:"orgId"`
	EmpID     int64     `db:"empid" json:"empId"`
	Token     string    `db:"token" json:"token"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	IsActive  bool      `db:"is_active" json:"is_active"`
}
