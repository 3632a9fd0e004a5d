package flow

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/MBahyeldin/online-shoping/domain"
	"github.com/MBahyeldin/online-shoping/internal/store"
	"github.com/MBahyeldin/online-shoping/internal/validation"
)

// OTPState is the verification state of the OTP sign-in flow.
type OTPState int

const (
	OTPAwaitingCode OTPState = iota
	OTPVerifying
	OTPAuthenticated
	OTPVerificationFailed
)

func (s OTPState) String() string {
	switch s {
	case OTPAwaitingCode:
		return "awaiting_code"
	case OTPVerifying:
		return "verifying"
	case OTPAuthenticated:
		return "authenticated"
	case OTPVerificationFailed:
		return "verification_failed"
	}
	return "unknown"
}

// OTPFlow drives the OTP verification screen: AwaitingCode -> Verifying ->
// {Authenticated, VerificationFailed}, with an orthogonal resend cooldown
// that ticks independently of the verification state.
type OTPFlow struct {
	mu sync.Mutex

	state         OTPState
	lastError     string
	isResending   bool
	cooldownUntil time.Time

	auth     domain.AuthService
	sessions *store.SessionStore
	cooldown time.Duration
	now      func() time.Time
	log      *logrus.Entry
}

// NewOTPFlow creates the flow. cooldown is the resend throttle window.
func NewOTPFlow(auth domain.AuthService, sessions *store.SessionStore, cooldown time.Duration, logger *logrus.Logger) *OTPFlow {
	return &OTPFlow{
		state:    OTPAwaitingCode,
		auth:     auth,
		sessions: sessions,
		cooldown: cooldown,
		now:      time.Now,
		log:      logger.WithField("component", "otp_flow"),
	}
}

// Verify exchanges the code for a session. Field validation failures are
// local and leave the state untouched; only a backend rejection moves the
// flow to VerificationFailed.
func (f *OTPFlow) Verify(ctx context.Context, email, otp string) error {
	payload := domain.VerifyOTPPayload{Email: email, OTP: otp}
	if err := validation.Struct(payload); err != nil {
		return err
	}

	f.mu.Lock()
	f.state = OTPVerifying
	f.lastError = ""
	f.mu.Unlock()

	result, err := f.auth.VerifyOTP(ctx, payload)
	if err != nil {
		f.mu.Lock()
		f.state = OTPVerificationFailed
		f.lastError = err.Error()
		f.mu.Unlock()
		return err
	}

	if err := f.sessions.SetAuth(ctx, result.User, result.Token); err != nil {
		f.mu.Lock()
		f.state = OTPVerificationFailed
		f.lastError = err.Error()
		f.mu.Unlock()
		return err
	}

	f.mu.Lock()
	f.state = OTPAuthenticated
	f.mu.Unlock()
	f.log.WithField("email", result.User.Email).Info("otp verified, session established")
	return nil
}

// Resend re-triggers the OTP email. An empty email is a local validation
// failure, not a server round-trip. Refused while a resend is in flight or
// the cooldown is running; a successful resend starts the cooldown.
func (f *OTPFlow) Resend(ctx context.Context, email string) error {
	if err := validation.Var("email", email, "required,email", "enter your email address first"); err != nil {
		return err
	}

	f.mu.Lock()
	if f.isResending || f.now().Before(f.cooldownUntil) {
		f.mu.Unlock()
		return domain.ErrResendThrottled
	}
	f.isResending = true
	f.mu.Unlock()

	err := f.auth.ResendOTP(ctx, email)

	f.mu.Lock()
	f.isResending = false
	if err == nil {
		f.cooldownUntil = f.now().Add(f.cooldown)
	}
	f.mu.Unlock()
	return err
}

// CooldownRemaining is the whole seconds left before another resend is
// allowed, derived from the clock on every read.
func (f *OTPFlow) CooldownRemaining() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	remaining := f.cooldownUntil.Sub(f.now())
	if remaining <= 0 {
		return 0
	}
	return int(remaining.Round(time.Second) / time.Second)
}

// State returns the current verification state.
func (f *OTPFlow) State() OTPState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// LastError returns the message from the most recent failed verification.
func (f *OTPFlow) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastError
}
