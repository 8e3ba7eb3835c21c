package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Massi21022535/Asistencia-Back/internal/models"
)

func TestRequireRolesAllows(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/teacher/groups", nil)
	c.Set(ContextUserKey, &models.JWTClaims{UserID: "u1", Role: models.RoleTeacher})

	RequireRoles(models.RoleTeacher)(c)
	assert.False(t, c.IsAborted())
}

func TestRequireRolesForbidsOtherRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/director/groups", nil)
	c.Set(ContextUserKey, &models.JWTClaims{UserID: "u1", Role: models.RoleTeacher})

	RequireRoles(models.RoleDirector)(c)
	require.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolesRejectsMissingClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/teacher/groups", nil)

	RequireRoles(models.RoleTeacher)(c)
	require.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
