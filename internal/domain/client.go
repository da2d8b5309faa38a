package domain

import "time"

type Client struct {
	ClientID  int64     `db:"clientid" json:"clientId"`
	OrgID     int64     `db:"orgid" json:"orgId"`
	Name      string    `db:"clientname" json:"clientName"`
	ShortName string    `db:"clientshortname" json:"clientShortname"`
	Phone     string    `db:"clientphone" json:"clientPhone"`
	Email     string    `db:"clientemail" json:"clientEmail"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ClientSummary is a client row joined with its note count for listings.
type ClientSummary struct {
	Client
	NoteCount int64 `db:"-" json:"noteCount"`
}
