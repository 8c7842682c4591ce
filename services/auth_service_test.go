package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_HashesPasswordAndDefaultsGoal(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register("alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", user.Password)
	assert.Equal(t, 2000, user.DailyCalorieGoal)
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	first, err := svc.Register("alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register("alice", "other@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// the first account is unaffected and still logs in
	got, err := svc.Authenticate("alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register("bob", "alice@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestConflictFor_ResolvesLostRaceToConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	// the winner of the race is already committed when the loser's insert
	// fails on the unique index
	winner, err := svc.Register("alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	indexErr := errors.New("UNIQUE constraint failed: users.username")
	assert.ErrorIs(t, svc.conflictFor("alice", "loser@example.com", indexErr), ErrUsernameTaken)
	assert.ErrorIs(t, svc.conflictFor("loser", "alice@example.com", indexErr), ErrEmailTaken)

	// anything that is not a uniqueness conflict passes through untouched
	otherErr := errors.New("disk I/O error")
	assert.Equal(t, otherErr, svc.conflictFor("nobody", "nobody@example.com", otherErr))

	// the committed account is unharmed
	got, err := svc.Authenticate("alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, got.ID)
}

func TestAuthenticate_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, errUnknown := svc.Authenticate("nobody", "whatever")
	_, errWrongPw := svc.Authenticate("alice", "wrong")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
}
