package rbac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront-app/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(
		&models.User{},
		&models.AdminGrant{},
		&models.Role{},
		&models.Permission{},
		&models.UserRole{},
	))
	return database
}

func createUser(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Name: "Test", Email: email, Discord: "@" + email, Password: "x"}
	require.NoError(t, database.Create(&user).Error)
	return user
}

func createRole(t *testing.T, database *gorm.DB, name string, tags ...string) models.Role {
	t.Helper()
	permissions := make([]models.Permission, 0, len(tags))
	for _, tag := range tags {
		var permission models.Permission
		if database.Where("name = ?", tag).First(&permission).RowsAffected == 0 {
			permission = models.Permission{Name: tag}
			require.NoError(t, database.Create(&permission).Error)
		}
		permissions = append(permissions, permission)
	}
	role := models.Role{Name: name, Permissions: permissions}
	require.NoError(t, database.Create(&role).Error)
	return role
}

func assign(t *testing.T, database *gorm.DB, user models.User, role models.Role) {
	t.Helper()
	require.NoError(t, database.Create(&models.UserRole{UserID: user.ID, RoleID: role.ID}).Error)
}

func TestResolveUnknownEmail(t *testing.T) {
	database := setupDB(t)

	access := ResolveAccess(database, "nobody@example.com")

	assert.False(t, access.IsAdmin)
	assert.False(t, access.HasCustomRole)
	assert.Empty(t, access.Permissions)
}

func TestResolveNoRoles(t *testing.T) {
	database := setupDB(t)
	createUser(t, database, "plain@example.com")

	access := ResolveAccess(database, "plain@example.com")

	assert.False(t, access.IsAdmin)
	assert.False(t, access.HasCustomRole)
	assert.Empty(t, access.Permissions)
}

func TestResolveAdminShortCircuitsCustomRoles(t *testing.T) {
	database := setupDB(t)
	user := createUser(t, database, "admin@example.com")
	require.NoError(t, database.Create(&models.AdminGrant{UserID: user.ID, GrantedBy: 1}).Error)

	// Custom roles must not leak into an admin's decision.
	role := createRole(t, database, "catalog", "products", "categories")
	assign(t, database, user, role)

	access := ResolveAccess(database, "admin@example.com")

	assert.True(t, access.IsAdmin)
	assert.False(t, access.HasCustomRole)
	assert.Empty(t, access.Permissions)
	assert.True(t, access.Allows("orders"))
}

func TestResolveRevokedAdminFallsBackToRoles(t *testing.T) {
	database := setupDB(t)
	user := createUser(t, database, "former@example.com")

	removed := time.Now()
	require.NoError(t, database.Create(&models.AdminGrant{
		UserID:    user.ID,
		GrantedBy: 1,
		RemovedAt: &removed,
	}).Error)

	role := createRole(t, database, "catalog", "products")
	assign(t, database, user, role)

	access := ResolveAccess(database, "former@example.com")

	assert.False(t, access.IsAdmin)
	assert.True(t, access.HasCustomRole)
	assert.Equal(t, []string{"products"}, access.Permissions)
	assert.False(t, access.Allows("orders"))
}

func TestResolveUnionDeduplicates(t *testing.T) {
	database := setupDB(t)
	user := createUser(t, database, "staff@example.com")

	catalog := createRole(t, database, "catalog", "products", "categories")
	fulfilment := createRole(t, database, "fulfilment", "orders", "products")
	assign(t, database, user, catalog)
	assign(t, database, user, fulfilment)

	access := ResolveAccess(database, "staff@example.com")

	assert.True(t, access.HasCustomRole)
	assert.Equal(t, []string{"categories", "orders", "products"}, access.Permissions)
}

func TestResolveOrderOfAssignmentDoesNotMatter(t *testing.T) {
	database := setupDB(t)

	catalog := createRole(t, database, "catalog", "products", "categories")
	fulfilment := createRole(t, database, "fulfilment", "orders", "products")

	first := createUser(t, database, "first@example.com")
	assign(t, database, first, catalog)
	assign(t, database, first, fulfilment)

	second := createUser(t, database, "second@example.com")
	assign(t, database, second, fulfilment)
	assign(t, database, second, catalog)

	assert.Equal(t,
		ResolveAccess(database, "first@example.com"),
		ResolveAccess(database, "second@example.com"),
	)
}
