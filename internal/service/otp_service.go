package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/megamind1212/notesmate-api/internal/domain"
	"github.com/megamind1212/notesmate-api/internal/repository/ports"
	"github.com/megamind1212/notesmate-api/internal/util"
)

// Delivery outcome messages. Issuance succeeds even when the email cannot go
// out: the code is always printed to the server log, and the message tells the
// caller where to find it.
const (
	MsgOTPSent             = "OTP sent to your registered email address"
	MsgOTPSendFailed       = "Failed to send OTP via email. Check the server console for the OTP."
	MsgOTPMailUnconfigured = "Email service not configured. Check the server console for the OTP."
	MsgOTPValidated        = "OTP validated successfully"
)

var (
	ErrOTPNotFound          = errors.New("OTP not found or expired")
	ErrOTPExpired           = errors.New("OTP expired")
	ErrOTPInvalid           = errors.New("Invalid OTP")
	ErrEmployeeEmailMissing = errors.New("Employee email not found")
)

type OTPSender interface {
	SendOTP(ctx context.Context, email, code string) error
}

const (
	defaultOTPTTL    = 5 * time.Minute
	defaultOTPDigits = 4
)

type OTPService struct {
	store     ports.OTPStore
	directory ports.DirectoryRepository
	sender    OTPSender

	ttl    time.Duration
	digits int
	now    func() time.Time
}

func NewOTPService(store ports.OTPStore, directory ports.DirectoryRepository, sender OTPSender, ttl time.Duration, digits int) *OTPService {
	if ttl <= 0 {
		ttl = defaultOTPTTL
	}
	if digits <= 0 {
		digits = defaultOTPDigits
	}
	return &OTPService{
		store:     store,
		directory: directory,
		sender:    sender,
		ttl:       ttl,
		digits:    digits,
		now:       time.Now,
	}
}

// RequestOTP issues a fresh code for the employee and stores it under the
// (org, emp) key, replacing any earlier code. The returned message reports the
// delivery outcome; delivery failure is not an error.
func (s *OTPService) RequestOTP(ctx context.Context, orgID, empID int64) (string, error) {
	emp, err := s.directory.FindEmployee(ctx, orgID, empID)
	if err != nil {
		if isNotFound(err) {
			return "", ErrEmployeeNotFound
		}
		return "", err
	}
	if strings.TrimSpace(emp.Email) == "" {
		return "", ErrEmployeeEmailMissing
	}

	code, err := util.GenerateNumericOTP(s.digits)
	if err != nil {
		return "", err
	}

	key := domain.OTPKey(orgID, empID)
	if err := s.store.Upsert(ctx, key, code, s.now().UTC()); err != nil {
		return "", err
	}

	// Operational channel: the code is always visible in the server log.
	log.Printf("OTP for %s: %s", emp.Email, code)

	if s.sender == nil {
		return MsgOTPMailUnconfigured, nil
	}
	if err := s.sender.SendOTP(ctx, emp.Email, code); err != nil {
		log.Printf("Failed to send email to %s: %v", emp.Email, err)
		return MsgOTPSendFailed, nil
	}
	return MsgOTPSent, nil
}

// ValidateOTP checks the submitted code against the stored record. A correct
// code consumes the record; an expired record is discarded on sight; a wrong
// code leaves the record in place so the caller may retry until expiry.
func (s *OTPService) ValidateOTP(ctx context.Context, orgID, empID int64, submitted string) error {
	key := domain.OTPKey(orgID, empID)

	record, err := s.store.Find(ctx, key)
	if err != nil {
		if isNotFound(err) {
			return ErrOTPNotFound
		}
		return err
	}

	if record.Expired(s.now(), s.ttl) {
		if err := s.store.Delete(ctx, key); err != nil {
			return err
		}
		return ErrOTPExpired
	}

	if record.Code != submitted {
		return ErrOTPInvalid
	}

	return s.store.Delete(ctx, key)
}
