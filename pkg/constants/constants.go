// Package constants defines shared enumerations and context keys for the
// FieldBase service.
package constants

// ContextKey is the type used for values stored on a request context.
type ContextKey string

const (
	ContextKeyRequestID ContextKey = "request_id"
	ContextKeyUserID    ContextKey = "user_id"
	ContextKeyUserRole  ContextKey = "user_role"
)

// LogLevel represents a logging verbosity level.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	ErrCodeInvalidRequest ErrorCode = "invalid_request"
	ErrCodeUnauthorized   ErrorCode = "unauthorized"
	ErrCodeForbidden      ErrorCode = "forbidden"
	ErrCodeNotFound       ErrorCode = "not_found"
	ErrCodeConflict       ErrorCode = "conflict"
	ErrCodeInternal       ErrorCode = "internal_error"
)

// UserRole enumerates staff roles carried in the login token.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleGroupAdmin UserRole = "groupadmin"
	RoleFieldStaff UserRole = "fieldstaff"
	RoleTeamLeader UserRole = "teamleader"
	RoleVolunteer  UserRole = "volunteer"
)

// ProjectStatus enumerates the lifecycle states of a project.
type ProjectStatus string

const (
	ProjectInProgress ProjectStatus = "inprogress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "onhold"
	ProjectArchived   ProjectStatus = "archived"
)

// OwnerKind discriminates which entity a risk or assignment row belongs to.
type OwnerKind string

const (
	OwnerProject  OwnerKind = "project"
	OwnerActivity OwnerKind = "activity"
)

// AssignmentKind names one of the owner/member bridging tables.
type AssignmentKind string

const (
	AssignProjectVolunteer    AssignmentKind = "project_volunteer"
	AssignProjectStaff        AssignmentKind = "project_staff"
	AssignProjectChecklist    AssignmentKind = "project_checklist"
	AssignActivityChecklist   AssignmentKind = "activity_checklist"
	AssignProjectSiteHazard   AssignmentKind = "project_site_hazard"
	AssignProjectPeopleHazard AssignmentKind = "project_people_hazard"
)

// PredatorSubType enumerates the predator-control record categories.
type PredatorSubType string

const (
	PredatorTrapsEstablished PredatorSubType = "traps_established"
	PredatorTrapsChecked     PredatorSubType = "traps_checked"
	PredatorCatches          PredatorSubType = "catches"
)

// AuditEventType names a mutation published to the audit stream.
type AuditEventType string

const (
	AuditEventCreated  AuditEventType = "entity_created"
	AuditEventUpdated  AuditEventType = "entity_updated"
	AuditEventDeleted  AuditEventType = "entity_deleted"
	AuditEventAttached AuditEventType = "link_attached"
	AuditEventDetached AuditEventType = "link_detached"
	AuditEventLogin    AuditEventType = "user_login"
	AuditEventLogout   AuditEventType = "user_logout"
)

// DefaultAccessTokenTTLSeconds is the login token lifetime (one hour).
const DefaultAccessTokenTTLSeconds = 3600
