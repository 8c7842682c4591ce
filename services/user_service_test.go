package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateGoal(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", 2000)

	svc := NewUserService(db)
	require.NoError(t, svc.UpdateGoal(user.ID, 1800))

	got, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1800, got.DailyCalorieGoal)
}

func TestUpdateGoal_RejectsNonPositive(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", 2000)

	svc := NewUserService(db)
	assert.ErrorIs(t, svc.UpdateGoal(user.ID, 0), ErrInvalidGoal)
	assert.ErrorIs(t, svc.UpdateGoal(user.ID, -100), ErrInvalidGoal)
}

func TestUpdateGoal_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	assert.ErrorIs(t, NewUserService(db).UpdateGoal(9999, 1800), ErrUserNotFound)
}

func TestGet_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	_, err := NewUserService(db).Get(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
