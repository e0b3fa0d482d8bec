package core

import (
	"time"
)

// Application is an optional scoping namespace. The empty name is the
// default namespace and has no row of its own.
type Application struct {
	ID          string    `json:"id" gorm:"primaryKey;type:char(20)"`
	Name        string    `json:"name" gorm:"type:text;uniqueIndex"`
	Description string    `json:"description" gorm:"type:text"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate       time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

type Role struct {
	ID          string    `json:"id" gorm:"primaryKey;type:char(20)"`
	Application string    `json:"application" gorm:"type:text;uniqueIndex:uniq_role;index"`
	Name        string    `json:"name" gorm:"type:text;uniqueIndex:uniq_role"`
	IsSuperRole bool      `json:"isSuperRole" gorm:"default:false"`
	IsDefault   bool      `json:"isDefault" gorm:"default:false"`
	Description string    `json:"description" gorm:"type:text"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate       time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

// Route is a logical (application, path pattern, method) operation.
// Inactive routes behave as if deleted.
type Route struct {
	ID             string    `json:"id" gorm:"primaryKey;type:char(20)"`
	Application    string    `json:"application" gorm:"type:text;uniqueIndex:uniq_route;index:idx_route_app_method"`
	Path           string    `json:"path" gorm:"type:text;uniqueIndex:uniq_route"`
	NormalizedPath string    `json:"normalizedPath" gorm:"type:text;index"`
	Method         string    `json:"method" gorm:"type:text;uniqueIndex:uniq_route;index:idx_route_app_method"`
	Service        string    `json:"service" gorm:"type:text;index"`
	Action         string    `json:"action" gorm:"type:text"`
	IsActive       bool      `json:"isActive" gorm:"default:true"`
	IsSensitive    bool      `json:"isSensitive" gorm:"default:false"`
	IsIgnored      bool      `json:"isIgnored" gorm:"default:false"`
	CDate          time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate          time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

// RoleBinding is an allow/deny edge between a role and a route.
// At most one binding per (role, route); writes are last-write-wins.
type RoleBinding struct {
	ID        string    `json:"id" gorm:"primaryKey;type:char(20)"`
	RoleID    string    `json:"roleId" gorm:"type:char(20);uniqueIndex:uniq_role_binding;index"`
	RouteID   string    `json:"routeId" gorm:"type:char(20);uniqueIndex:uniq_role_binding;index"`
	IsAllowed bool      `json:"isAllowed" gorm:"default:true"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate     time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

// PriorityBinding is the tiered-policy edge: it may target a user, a
// role (by name), or a team, and carries a priority. Multiple bindings
// per (subject, route) are permitted and disambiguated by priority.
type PriorityBinding struct {
	ID        string    `json:"id" gorm:"primaryKey;type:char(20)"`
	RouteID   string    `json:"routeId" gorm:"type:char(20);index"`
	Kind      string    `json:"kind" gorm:"type:text;index"`
	SubjectID string    `json:"subjectId" gorm:"type:text;index"`
	Allow     bool      `json:"allow" gorm:"default:true"`
	Priority  int       `json:"priority" gorm:"default:0"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate     time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

type RoleAssignment struct {
	ID          string    `json:"id" gorm:"primaryKey;type:char(20)"`
	SubjectID   string    `json:"subjectId" gorm:"type:text;uniqueIndex:uniq_assignment;index:idx_assignment_subject_app"`
	Application string    `json:"application" gorm:"type:text;uniqueIndex:uniq_assignment;index:idx_assignment_subject_app"`
	RoleID      string    `json:"roleId" gorm:"type:char(20);uniqueIndex:uniq_assignment"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
}

type TeamMembership struct {
	ID        string    `json:"id" gorm:"primaryKey;type:char(20)"`
	SubjectID string    `json:"subjectId" gorm:"type:text;uniqueIndex:uniq_membership;index"`
	TeamID    string    `json:"teamId" gorm:"type:text;uniqueIndex:uniq_membership;index"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
}

// AccessLog is append-only; written by the gate as a side effect,
// never read on the decision path.
type AccessLog struct {
	ID        string    `json:"id" gorm:"primaryKey;type:char(20)"`
	SubjectID string    `json:"subjectId" gorm:"type:text;index:idx_accesslog_subject_time"`
	RouteID   *string   `json:"routeId" gorm:"type:char(20);default:null"`
	Method    string    `json:"method" gorm:"type:text;index"`
	Path      string    `json:"path" gorm:"type:text"`
	Allowed   bool      `json:"allowed"`
	Reason    string    `json:"reason" gorm:"type:text"`
	IPAddress string    `json:"ipAddress" gorm:"type:text"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime;index:idx_accesslog_subject_time"`
}
