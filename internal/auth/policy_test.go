package auth

import (
	"testing"

	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	testCases := []struct {
		name    string
		role    domain.Role
		action  Action
		allowed bool
	}{
		{"admin manages users", domain.RoleAdmin, ActionManageUsers, true},
		{"admin reviews registrations", domain.RoleAdmin, ActionReviewRegistrations, true},
		{"instructor manages sessions", domain.RoleInstructor, ActionManageSessions, true},
		{"instructor publishes news", domain.RoleInstructor, ActionPublishNews, true},
		{"instructor cannot manage users", domain.RoleInstructor, ActionManageUsers, false},
		{"instructor cannot review registrations", domain.RoleInstructor, ActionReviewRegistrations, false},
		{"student holds no capabilities", domain.RoleStudent, ActionManageSessions, false},
		{"unknown role denied", domain.Role("ghost"), ActionManageUsers, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, Allow(tc.role, tc.action))
		})
	}
}
