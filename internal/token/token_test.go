package token

import (
	"testing"
	"time"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(ttl time.Duration) *Service {
	return NewService("test-secret", ttl)
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(100 * time.Hour)

	tok, err := svc.Issue(models.UserID(42))
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, models.UserID(42), userID)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := newTestService(time.Hour)

	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	tok, err := svc.Issue(models.UserID(7))
	require.NoError(t, err)

	// Still valid just before expiry.
	svc.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	_, err = svc.Verify(tok)
	require.NoError(t, err)

	// Rejected once the clock passes the recorded expiry.
	svc.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	svc := newTestService(time.Hour)

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newTestService(time.Hour).Issue(models.UserID(1))
	require.NoError(t, err)

	other := NewService("other-secret", time.Hour)
	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerify_StatelessAcceptsUnknownUser(t *testing.T) {
	t.Parallel()

	// Verification does not consult any store: a token for a user ID that
	// was never registered still verifies.
	svc := newTestService(time.Hour)
	tok, err := svc.Issue(models.UserID(999999))
	require.NoError(t, err)

	userID, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, models.UserID(999999), userID)
}
