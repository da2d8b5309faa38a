package domain

import "time"

type Employee struct {
	EmpID     int64     `db:"empid" json:"empId"`
	OrgID     int64     `db:"orgid" json:"orgId"`
	Name      string    `db:"empname" json:"empName"`
	ShortName string    `db:"empshortname" json:"empShortname"`
	Phone     string    `db:"empphone" json:"empPhone"`
	Email     string    `db:"empemail" json:"empEmail"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
