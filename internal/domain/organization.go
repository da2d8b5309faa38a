package domain

import "time"

type Organization struct {
	OrgID     int64     `db:"orgid" json:"orgId"`
	OrgName   string    `db:"orgname" json:"orgName"`
	ShortName string    `db:"shortname" json:"shortName"`
	Address   string    `db:"address" json:"address"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
