package services

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"sync"
	"time"
)

// IVerificationService handles the mocked phone verification flow: a code is
// issued for a phone number and checking any well-formed code marks the
// session user verified. No SMS is ever sent; the code is logged locally.
type IVerificationService interface {
	SendCode(phone string) error
	VerifyCode(phone, code string) error
}

// codeEntry is a single issued verification code held in memory.
type codeEntry struct {
	Code      string
	ExpiresAt time.Time
}

// verificationService implements IVerificationService.
type verificationService struct {
	session ISessionService
	mu      sync.Mutex
	codes   map[string]*codeEntry // key = phone number
}

const verificationCodeTTL = 5 * time.Minute

// NewVerificationService creates a new VerificationService.
func NewVerificationService(session ISessionService) IVerificationService {
	return &verificationService{
		session: session,
		codes:   make(map[string]*codeEntry),
	}
}

// SendCode issues a 6-digit code for the phone number. Completes
// synchronously; the simulated SMS is a log line.
func (s *verificationService) SendCode(phone string) error {
	if !validPhone(phone) {
		return fmt.Errorf("please enter a valid 10-digit phone number")
	}

	code, err := generateCode(6)
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	s.mu.Lock()
	s.codes[phone] = &codeEntry{Code: code, ExpiresAt: time.Now().Add(verificationCodeTTL)}
	s.mu.Unlock()

	log.Printf("Mock SMS to %s: your verification code is %s", phone, code)
	return nil
}

// VerifyCode checks the submitted code and, on success, records the phone on
// the session user and marks them verified. The check is shape-only: any
// 6-digit code passes, matching the simulated OTP flow.
func (s *verificationService) VerifyCode(phone, code string) error {
	if !validPhone(phone) {
		return fmt.Errorf("please enter a valid 10-digit phone number")
	}
	if !validCode(code) {
		return fmt.Errorf("please enter a valid 6-digit code")
	}

	s.mu.Lock()
	delete(s.codes, phone)
	s.mu.Unlock()

	return s.session.VerifyPhone(phone)
}

// validPhone requires at least ten digits.
func validPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10
}

// validCode requires exactly six digits.
func validCode(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// generateCode returns a random numeric code of the given length.
func generateCode(length int) (string, error) {
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}
