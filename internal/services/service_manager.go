package services

import (
	"log/slog"

	"github.com/acadhub-2025/records-service/internal/events"
	"github.com/acadhub-2025/records-service/internal/repositories"
	"github.com/acadhub-2025/records-service/internal/validator"
)

// ServiceManager hands out the service instances the presentation layer
// consumes. One instance per process.
type ServiceManager interface {
	Hierarchy() HierarchyService
	Roster() RosterService
	Accounts() AccountService
	Scope() ScopeService
	Analytics() AnalyticsService
	Credentials() CredentialService
	Timetables() TimetableService
	Cycle() CycleService
	Export() ExportService
}

// ServiceManagerConfig carries the policy knobs services need beyond their
// repositories.
type ServiceManagerConfig struct {
	Analytics AnalyticsPolicy
	Admin     AdminCredentials
}

type serviceManager struct {
	hierarchy  HierarchyService
	roster     RosterService
	accounts   AccountService
	scope      ScopeService
	analytics  AnalyticsService
	credential CredentialService
	timetable  TimetableService
	cycle      CycleService
	export     ExportService
}

func NewServiceManager(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher, cfg ServiceManagerConfig) ServiceManager {
	scope := NewScopeService(repo, logger)
	analytics := NewAnalyticsService(repo, cfg.Analytics)
	return &serviceManager{
		hierarchy:  NewHierarchyService(repo, logger, v),
		roster:     NewRosterService(repo, logger, v, publisher),
		accounts:   NewAccountService(repo, logger, v),
		scope:      scope,
		analytics:  analytics,
		credential: NewCredentialService(repo, logger, publisher, cfg.Admin),
		timetable:  NewTimetableService(repo, logger, v, publisher),
		cycle:      NewCycleService(repo, logger, v, publisher),
		export:     NewExportService(repo, scope, analytics, logger),
	}
}

// NewDefaultServiceManager applies the default analytics policy.
func NewDefaultServiceManager(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher, admin AdminCredentials) ServiceManager {
	return NewServiceManager(repo, logger, v, publisher, ServiceManagerConfig{
		Analytics: DefaultAnalyticsPolicy(),
		Admin:     admin,
	})
}

func (m *serviceManager) Hierarchy() HierarchyService    { return m.hierarchy }
func (m *serviceManager) Roster() RosterService          { return m.roster }
func (m *serviceManager) Accounts() AccountService       { return m.accounts }
func (m *serviceManager) Scope() ScopeService            { return m.scope }
func (m *serviceManager) Analytics() AnalyticsService    { return m.analytics }
func (m *serviceManager) Credentials() CredentialService { return m.credential }
func (m *serviceManager) Timetables() TimetableService   { return m.timetable }
func (m *serviceManager) Cycle() CycleService            { return m.cycle }
func (m *serviceManager) Export() ExportService          { return m.export }
