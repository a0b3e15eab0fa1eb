package approval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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
		&models.RegistrationRequest{},
		&models.User{},
		&models.AdminGrant{},
	))
	return database
}

func submit(t *testing.T, database *gorm.DB, email, discord string) *models.RegistrationRequest {
	t.Helper()
	request, err := Submit(database, SubmitInput{
		Name:     "Test",
		Email:    email,
		Discord:  discord,
		Password: "hunter22",
	})
	require.NoError(t, err)
	return request
}

func TestSubmitHashesCredential(t *testing.T) {
	database := setupDB(t)

	request := submit(t, database, "a@x.com", "@a")

	assert.Equal(t, models.StatusPending, request.Status)
	assert.NotEqual(t, "hunter22", request.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(request.Password), []byte("hunter22")))
}

func TestSubmitMissingFields(t *testing.T) {
	database := setupDB(t)

	_, err := Submit(database, SubmitInput{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitDuplicateDiscordBeforeApproval(t *testing.T) {
	database := setupDB(t)
	submit(t, database, "a@x.com", "@a")

	_, err := Submit(database, SubmitInput{
		Name:     "Other",
		Email:    "b@x.com",
		Discord:  "@a",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrConflict)

	var count int64
	database.Model(&models.RegistrationRequest{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSubmitDuplicateEmailAfterApproval(t *testing.T) {
	database := setupDB(t)
	request := submit(t, database, "a@x.com", "@a")
	_, err := Approve(database, request.ID)
	require.NoError(t, err)

	_, err = Submit(database, SubmitInput{
		Name:     "Other",
		Email:    "a@x.com",
		Discord:  "@other",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestApprovePreservesIdentity(t *testing.T) {
	database := setupDB(t)
	request := submit(t, database, "a@x.com", "@a")

	user, err := Approve(database, request.ID)
	require.NoError(t, err)

	assert.Equal(t, request.ID, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "@a", user.Discord)
	assert.Equal(t, request.Password, user.Password)

	var updated models.RegistrationRequest
	require.NoError(t, database.First(&updated, request.ID).Error)
	assert.Equal(t, models.StatusApproved, updated.Status)
}

func TestApproveTwiceFails(t *testing.T) {
	database := setupDB(t)
	request := submit(t, database, "a@x.com", "@a")

	_, err := Approve(database, request.ID)
	require.NoError(t, err)

	_, err = Approve(database, request.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	database.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRejectDeletesPendingOutright(t *testing.T) {
	database := setupDB(t)
	request := submit(t, database, "a@x.com", "@a")

	_, err := Reject(database, request.ID)
	require.NoError(t, err)

	var count int64
	database.Model(&models.RegistrationRequest{}).Count(&count)
	assert.EqualValues(t, 0, count)

	_, err = Reject(database, request.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The slate is clean, so the same identity can register again.
	submit(t, database, "a@x.com", "@a")
}

func TestRejectApprovedNotPossible(t *testing.T) {
	database := setupDB(t)
	request := submit(t, database, "a@x.com", "@a")
	_, err := Approve(database, request.ID)
	require.NoError(t, err)

	_, err = Reject(database, request.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeactivateRequiresReason(t *testing.T) {
	database := setupDB(t)
	request := submit(t, database, "a@x.com", "@a")
	user, err := Approve(database, request.ID)
	require.NoError(t, err)

	_, err = Deactivate(database, user.ID, 99, "   ")
	assert.ErrorIs(t, err, ErrValidation)

	// No partial state change: the account is still approved.
	var stillThere models.User
	assert.EqualValues(t, 1, database.First(&stillThere, user.ID).RowsAffected)
}

func TestDeactivateBlacklistsAndStripsAdmin(t *testing.T) {
	database := setupDB(t)
	request := submit(t, database, "a@x.com", "@a")
	user, err := Approve(database, request.ID)
	require.NoError(t, err)
	require.NoError(t, database.Create(&models.AdminGrant{UserID: user.ID, GrantedBy: 99}).Error)

	blacklisted, err := Deactivate(database, user.ID, 99, "spam")
	require.NoError(t, err)

	assert.Equal(t, models.StatusRejected, blacklisted.Status)
	require.NotNil(t, blacklisted.Reason)
	assert.Equal(t, "spam", *blacklisted.Reason)
	require.NotNil(t, blacklisted.DeactivatedBy)
	assert.EqualValues(t, 99, *blacklisted.DeactivatedBy)
	assert.NotNil(t, blacklisted.DeactivatedAt)

	// Gone from the approved set.
	var count int64
	database.Model(&models.User{}).Where("id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 0, count)

	// The admin grant is revoked, not deleted.
	var grant models.AdminGrant
	require.NoError(t, database.Where("user_id = ?", user.ID).First(&grant).Error)
	assert.NotNil(t, grant.RemovedAt)
}

func TestDeactivateUnknownUser(t *testing.T) {
	database := setupDB(t)

	_, err := Deactivate(database, 12345, 99, "spam")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReactivateClearsReasonKeepsAudit(t *testing.T) {
	database := setupDB(t)
	request := submit(t, database, "a@x.com", "@a")
	user, err := Approve(database, request.ID)
	require.NoError(t, err)
	_, err = Deactivate(database, user.ID, 99, "spam")
	require.NoError(t, err)

	reactivated, err := Reactivate(database, user.ID)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, reactivated.Status)
	assert.Nil(t, reactivated.Reason)
	// Audit trail stays until a future deactivation overwrites it.
	require.NotNil(t, reactivated.DeactivatedBy)
	assert.EqualValues(t, 99, *reactivated.DeactivatedBy)

	// Back in the approval queue.
	var pending []models.RegistrationRequest
	database.Where("status = ?", models.StatusPending).Find(&pending)
	assert.Len(t, pending, 1)
}

func TestReactivatePendingFails(t *testing.T) {
	database := setupDB(t)
	request := submit(t, database, "a@x.com", "@a")

	_, err := Reactivate(database, request.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
