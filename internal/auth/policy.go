package auth

import "github.com/ecoleplus/drivingschool/internal/domain"

// Action is a capability a role may or may not hold. Handlers check
// capabilities through Allow instead of testing roles inline.
type Action string

const (
	ActionManageUsers         Action = "manage_users"
	ActionManageSessions      Action = "manage_sessions"
	ActionPublishNews         Action = "publish_news"
	ActionModerateComments    Action = "moderate_comments"
	ActionManageTickets       Action = "manage_tickets"
	ActionReviewRegistrations Action = "review_registrations"
)

var grants = map[domain.Role]map[Action]bool{
	domain.RoleAdmin: {
		ActionManageUsers:         true,
		ActionManageSessions:      true,
		ActionPublishNews:         true,
		ActionModerateComments:    true,
		ActionManageTickets:       true,
		ActionReviewRegistrations: true,
	},
	domain.RoleInstructor: {
		ActionManageSessions:   true,
		ActionPublishNews:      true,
		ActionModerateComments: true,
	},
	domain.RoleStudent: {},
}

// Allow reports whether role holds the capability for action.
func Allow(role domain.Role, action Action) bool {
	return grants[role][action]
}
