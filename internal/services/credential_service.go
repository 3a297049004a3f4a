package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/acadhub-2025/records-service/internal/events"
	"github.com/acadhub-2025/records-service/internal/repositories"
)

type LoginState string

const (
	StateLoggedOut       LoginState = "LoggedOut"
	StateFirstTimeSetup  LoginState = "FirstTimeSetup"
	StateAuthenticated   LoginState = "Authenticated"
	StateForgotPassword  LoginState = "ForgotPassword"
	StateOtpVerify       LoginState = "OtpVerify"
	StateResetCredential LoginState = "ResetCredential"
)

// AdminCredentials is the single fixed administrator identity/secret pair.
// INSECURE by construction: a plaintext comparison against one hardcoded
// account. Kept verbatim for operator-workflow compatibility; flagged for
// replacement before any multi-user deployment.
type AdminCredentials struct {
	Email    string
	Password string
}

// credentialService gates every non-admin view. Each login attempt runs
// through its own LoginFlow; Authenticated is a terminal signal the caller
// consumes immediately — there are no sessions or tokens.
type credentialService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	publisher events.EventPublisher
	admin     AdminCredentials
}

func NewCredentialService(repo repositories.Repository, logger *slog.Logger, publisher events.EventPublisher, admin AdminCredentials) CredentialService {
	return &credentialService{repo: repo, logger: logger, publisher: publisher, admin: admin}
}

func (s *credentialService) Begin(scope RoleScope) *LoginFlow {
	return &LoginFlow{svc: s, scope: scope, state: StateLoggedOut}
}

func (s *credentialService) VerifyAdmin(identity, secret string) bool {
	return identity == s.admin.Email && secret == s.admin.Password
}

// LoginFlow is one login attempt's state machine. Single-threaded per
// attempt; not safe for concurrent use.
type LoginFlow struct {
	svc   *credentialService
	scope RoleScope
	state LoginState

	// captured during bootstrap or recovery, consumed at the setup/reset step
	pendingStudentID string
	issuedOTP        string

	authenticatedID string
}

func (f *LoginFlow) State() LoginState { return f.state }

// AuthenticatedID is the matched student roll number once the flow reaches
// Authenticated for the student role; empty for staff roles.
func (f *LoginFlow) AuthenticatedID() string { return f.authenticatedID }

// IssuedCode exposes the one-time code bound to this flow. Code delivery
// (email) is the embedding host's concern, not this module's.
func (f *LoginFlow) IssuedCode() string { return f.issuedOTP }

// Submit is the LoggedOut entry point: (identity, secret) plus the role scope
// the flow was opened with.
func (f *LoginFlow) Submit(ctx context.Context, identity, secret string) error {
	if f.state != StateLoggedOut {
		return ErrInvalidState
	}

	switch scope := f.scope.(type) {
	case StudentScope:
		return f.submitStudent(ctx, identity, secret)
	case HODScope:
		return f.submitHOD(ctx, identity, secret, scope)
	case AdvisorScope:
		return f.submitAdvisor(ctx, identity, secret, scope)
	case StaffScope:
		return f.submitStaff(ctx, identity, secret, scope)
	case AdminScope:
		if f.svc.VerifyAdmin(identity, secret) {
			f.state = StateAuthenticated
			return nil
		}
		return ErrInvalidCredentials
	default:
		return ErrInvalidCredentials
	}
}

func (f *LoginFlow) submitStudent(ctx context.Context, identity, secret string) error {
	st, err := f.svc.repo.Student().Get(ctx, strings.TrimSpace(identity))
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrRollNumberNotFound
		}
		return fmt.Errorf("failed to look up student: %w", err)
	}

	if st.Password == "" {
		// First login bootstraps via date of birth, compared verbatim.
		if secret != st.DOB {
			return ErrFirstLoginPasskey
		}
		f.pendingStudentID = st.ID
		f.state = StateFirstTimeSetup
		return nil
	}

	if secret != st.Password {
		return ErrInvalidCredentials
	}
	f.authenticatedID = st.ID
	f.state = StateAuthenticated
	f.svc.logger.Info("student authenticated", "roll_no", st.ID)
	return nil
}

// Staff-role submissions match identity (email or display name,
// case-insensitive), secret and the full scope tuple against a single stored
// account. Every mismatch collapses into the same generic error: the machine
// never tells the caller whether the scope or the password was wrong.

func (f *LoginFlow) submitHOD(ctx context.Context, identity, secret string, scope HODScope) error {
	accounts, err := f.svc.repo.HOD().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}
	id := strings.TrimSpace(identity)
	for _, a := range accounts {
		if (strings.EqualFold(a.Email, id) || strings.EqualFold(a.Name, id)) &&
			a.Password == secret &&
			a.DepartmentID == scope.DepartmentID {
			f.state = StateAuthenticated
			f.svc.logger.Info("hod authenticated", "department_id", scope.DepartmentID)
			return nil
		}
	}
	return ErrInvalidCredentials
}

func (f *LoginFlow) submitAdvisor(ctx context.Context, identity, secret string, scope AdvisorScope) error {
	accounts, err := f.svc.repo.Advisor().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}
	id := strings.TrimSpace(identity)
	for _, a := range accounts {
		if (strings.EqualFold(a.Email, id) || strings.EqualFold(a.Name, id)) &&
			a.Password == secret &&
			a.DepartmentID == scope.DepartmentID &&
			a.Year == scope.Year &&
			a.Section == scope.Section {
			f.state = StateAuthenticated
			f.svc.logger.Info("advisor authenticated", "department_id", scope.DepartmentID, "year", scope.Year, "section", scope.Section)
			return nil
		}
	}
	return ErrInvalidCredentials
}

func (f *LoginFlow) submitStaff(ctx context.Context, identity, secret string, scope StaffScope) error {
	accounts, err := f.svc.repo.StaffAssignment().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}
	id := strings.TrimSpace(identity)
	for _, a := range accounts {
		if (strings.EqualFold(a.Email, id) || strings.EqualFold(a.StaffName, id)) &&
			a.Password == secret &&
			a.Subject == scope.Subject &&
			a.DepartmentID == scope.DepartmentID &&
			a.Section == scope.Section {
			f.state = StateAuthenticated
			f.svc.logger.Info("staff authenticated", "department_id", scope.DepartmentID, "subject", scope.Subject)
			return nil
		}
	}
	return ErrInvalidCredentials
}

// CompleteSetup finishes the first-login bootstrap: the student record gains
// its recovery email and permanent password, and future logins take the
// password path.
func (f *LoginFlow) CompleteSetup(ctx context.Context, email, newPassword, confirm string) error {
	if f.state != StateFirstTimeSetup {
		return ErrInvalidState
	}
	if strings.TrimSpace(email) == "" {
		// Without a recovery email the OTP path can never match this student.
		return NewValidationError("email", "must not be empty", email)
	}
	if newPassword != confirm {
		// Stay in FirstTimeSetup; the operator retries.
		return ErrPasswordMismatch
	}
	if err := f.persistCredentials(ctx, f.pendingStudentID, email, newPassword); err != nil {
		return err
	}
	f.authenticatedID = f.pendingStudentID
	f.state = StateAuthenticated
	f.svc.publish(ctx, events.TypeCredentialBootstrapped, map[string]interface{}{"roll_no": f.pendingStudentID})
	return nil
}

// StartRecovery begins the forgotten-password path from LoggedOut.
func (f *LoginFlow) StartRecovery() error {
	if f.state != StateLoggedOut {
		return ErrInvalidState
	}
	f.state = StateForgotPassword
	return nil
}

// RequestCode matches the recovery email and issues a 4-digit one-time code
// bound to the matched student.
func (f *LoginFlow) RequestCode(ctx context.Context, email string) error {
	if f.state != StateForgotPassword {
		return ErrInvalidState
	}

	st, err := f.svc.repo.Student().GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrEmailNotFound
		}
		return fmt.Errorf("failed to look up student: %w", err)
	}

	f.pendingStudentID = st.ID
	f.issuedOTP = fmt.Sprintf("%d", 1000+rand.Intn(9000))
	f.state = StateOtpVerify
	f.svc.publish(ctx, events.TypeOTPIssued, map[string]interface{}{"roll_no": st.ID})
	return nil
}

// VerifyCode compares the entered code by exact string equality.
func (f *LoginFlow) VerifyCode(code string) error {
	if f.state != StateOtpVerify {
		return ErrInvalidState
	}
	if code != f.issuedOTP {
		// Stay in OtpVerify.
		return ErrInvalidOTP
	}
	f.state = StateResetCredential
	return nil
}

// ResetPassword persists the new password on the student captured during
// recovery, with the same confirmation rule as first-time setup.
func (f *LoginFlow) ResetPassword(ctx context.Context, newPassword, confirm string) error {
	if f.state != StateResetCredential {
		return ErrInvalidState
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}

	st, err := f.svc.repo.Student().Get(ctx, f.pendingStudentID)
	if err != nil {
		return fmt.Errorf("failed to look up student: %w", err)
	}
	if err := f.persistCredentials(ctx, st.ID, st.Email, newPassword); err != nil {
		return err
	}
	f.authenticatedID = st.ID
	f.state = StateAuthenticated
	f.svc.publish(ctx, events.TypePasswordReset, map[string]interface{}{"roll_no": st.ID})
	return nil
}

func (f *LoginFlow) persistCredentials(ctx context.Context, rollNo, email, password string) error {
	st, err := f.svc.repo.Student().Get(ctx, rollNo)
	if err != nil {
		return fmt.Errorf("failed to look up student: %w", err)
	}
	st.Email = email
	st.Password = password
	if err := f.svc.repo.Student().Update(ctx, st); err != nil {
		return fmt.Errorf("failed to persist credentials: %w", err)
	}
	return nil
}

func (s *credentialService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.NewEvent(eventType, data)); err != nil {
		s.logger.Warn("event publish failed", "event_type", eventType, "error", err)
	}
}
