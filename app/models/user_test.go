package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRole(t *testing.T) {
	t.Parallel()

	for _, role := range []string{RoleStudent, RoleTeacher, RoleAdmin} {
		assert.True(t, ValidRole(role), role)
	}
	for _, role := range []string{"", "Student", "superadmin", "parent"} {
		assert.False(t, ValidRole(role), role)
	}
}
