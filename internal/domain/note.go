package domain

import "time"

type Note struct {
	OrgID      int64     `db:"orgid" json:"orgId"`
	EmpID      int64     `db:"empid" json:"empId"`
	ClientID   int64     `db:"clientid" json:"clientId"`
	MeetingID  int64     `db:"meetingid" json:"meetingId"`
	DateTime   time.Time `db:"datetime" json:"dateTime"`
	AudioNotes []byte    `db:"audionotes" json:"-"`
	TextNotes  string    `db:"textnotes" json:"textNotes"`
}
