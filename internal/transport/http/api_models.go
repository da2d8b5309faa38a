package http

// ErrorResponse represents a generic error payload.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid OTP"`
}

// MessageResponse denotes a plain confirmation payload.
type MessageResponse struct {
	Message string `json:"message" example:"Registration successful"`
}

// RegisterRequest carries the organization fields together with its first
// employee. Registering an existing organization only adds the employee.
type RegisterRequest struct {
	OrgID        int64  `json:"orgId" example:"101"`
	OrgName      string `json:"orgName" example:"Harbor Clinic"`
	Shortname    string `json:"shortname" example:"HC"`
	Address      string `json:"address" example:"12 Pier Road"`
	OrgPhone     string `json:"orgPhone" example:"555-0100"`
	OrgEmail     string `json:"orgEmail" example:"office@harborclinic.example"`
	EmpID        int64  `json:"empId" example:"1"`
	EmpName      string `json:"empName" example:"Dana Reyes"`
	EmpShortname string `json:"empShortname" example:"DR"`
	EmpPhone     string `json:"empPhone" example:"555-0101"`
	EmpEmail     string `json:"empEmail" example:"dana@harborclinic.example"`
}

// RegisterClientRequest carries the fields for a new client of an organization.
type RegisterClientRequest struct {
	OrgID           int64  `json:"orgId" example:"101"`
	ClientName      string `json:"clientName" example:"Alex Moreno"`
	ClientShortname string `json:"clientShortname" example:"AM"`
	ClientPhone     string `json:"clientPhone" example:"555-0200"`
	ClientEmail     string `json:"clientEmail" example:"alex@example.com"`
}

// RegisterClientResponse returns the client id allocated by the server.
type RegisterClientResponse struct {
	Message  string `json:"message" example:"Client registered successfully"`
	ClientID int64  `json:"clientId" example:"3"`
}

// FetchClientsRequest selects the organization whose clients are listed.
type FetchClientsRequest struct {
	OrgID int64 `json:"orgId" example:"101"`
}

// ClientEntry is one row of a client listing. The field names match what the
// frontend renders.
type ClientEntry struct {
	ClientID        int64  `json:"ClientID" example:"3"`
	ClientName      string `json:"ClientName" example:"Alex Moreno"`
	ClientShortname string `json:"ClientShortname" example:"AM"`
	NoteCount       int64  `json:"NoteCount" example:"4"`
}

// ClientsResponse wraps a client listing.
type ClientsResponse struct {
	Clients []ClientEntry `json:"clients"`
}

// SaveTranscriptionRequest carries a finished transcription, optionally with
// the recorded audio as standard base64.
type SaveTranscriptionRequest struct {
	OrgID             int64  `json:"orgId" example:"101"`
	EmpID             int64  `json:"empId" example:"1"`
	ClientID          int64  `json:"clientId" example:"3"`
	TranscriptionText string `json:"transcriptionText" example:"Reviewed the treatment plan."`
	AudioData         string `json:"audioData,omitempty" example:"GkXfo0AgQoaBAUL3gQFC8g=="`
}

// FetchNotesRequest selects one client's notes, optionally narrowed to a day.
type FetchNotesRequest struct {
	OrgID        int64  `json:"orgId" example:"101"`
	EmpID        int64  `json:"empId" example:"1"`
	ClientID     int64  `json:"clientId" example:"3"`
	SelectedDate string `json:"selectedDate,omitempty" example:"2025-06-02"`
}

// NoteEntry is one row of a notes listing. AudioNotes is base64 or null.
type NoteEntry struct {
	DateTime   string  `json:"DateTime" example:"2025-06-02T09:30:00Z"`
	TextNotes  string  `json:"TextNotes" example:"Reviewed the treatment plan."`
	AudioNotes *string `json:"AudioNotes" example:"GkXfo0AgQoaBAUL3gQFC8g=="`
}

// NotesResponse wraps a notes listing.
type NotesResponse struct {
	Notes []NoteEntry `json:"notes"`
}

// UpdateNoteRequest addresses a note by its exact timestamp and replaces its
// text.
type UpdateNoteRequest struct {
	OrgID    int64  `json:"orgId" example:"101"`
	EmpID    int64  `json:"empId" example:"1"`
	ClientID int64  `json:"clientId" example:"3"`
	DateTime string `json:"dateTime" example:"2025-06-02T09:30:00Z"`
	NewText  string `json:"newText" example:"Amended the treatment plan."`
}

// OTPRequest identifies the employee asking for a login code.
type OTPRequest struct {
	OrgID int64 `json:"orgId" example:"101"`
	EmpID int64 `json:"empId" example:"1"`
}

// ValidateOTPRequest carries the code the employee entered.
type ValidateOTPRequest struct {
	OrgID int64  `json:"orgId" example:"101"`
	EmpID int64  `json:"empId" example:"1"`
	OTP   string `json:"otp" example:"4821"`
}

// ValidateOTPResponse confirms a login and carries the session token when
// session issuance is available.
type ValidateOTPResponse struct {
	Message   string `json:"message" example:"OTP validated successfully"`
	OrgID     int64  `json:"orgId" example:"101"`
	EmpID     int64  `json:"empId" example:"1"`
	Token     string `json:"token,omitempty" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt string `json:"expiresAt,omitempty" example:"2025-06-03T09:30:00Z"`
}

// DeepgramWSResponse carries the signed websocket URL for live transcription.
type DeepgramWSResponse struct {
	WSURL string `json:"wsUrl" example:"wss://api.deepgram.com/v1/listen?model=nova-3-medical&token=..."`
}

// EmployeeResponse is the authenticated profile payload.
type EmployeeResponse struct {
	OrgID        int64  `json:"orgId" example:"101"`
	EmpID        int64  `json:"empId" example:"1"`
	EmpName      string `json:"empName" example:"Dana Reyes"`
	EmpShortname string `json:"empShortname" example:"DR"`
	EmpPhone     string `json:"empPhone" example:"555-0101"`
	EmpEmail     string `json:"empEmail" example:"dana@harborclinic.example"`
}
