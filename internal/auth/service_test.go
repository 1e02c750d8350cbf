package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinefeed/cinefeed/internal/message"
)

type fakeRepo struct {
	byEmail map[string]*Account
	byID    map[string]*Account
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: map[string]*Account{}, byID: map[string]*Account{}}
}

func (f *fakeRepo) Insert(_ context.Context, a *Account) error {
	if _, ok := f.byEmail[a.Email]; ok {
		return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	}
	if a.ID == "" {
		a.ID = "acct-" + a.Username
	}
	f.byEmail[a.Email] = a
	f.byID[a.ID] = a
	return nil
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (*Account, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return a, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (*Account, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return a, nil
}

type fakeMessages struct {
	byUser map[string][]message.Message
}

func (f *fakeMessages) FindByUser(_ context.Context, userID string) ([]message.Message, error) {
	return f.byUser[userID], nil
}

func testService() (*AuthService, *fakeRepo, *fakeMessages) {
	repo := newFakeRepo()
	msgs := &fakeMessages{byUser: map[string][]message.Message{}}
	return NewAuthService(repo, msgs), repo, msgs
}

func TestSignup_HashesAndNormalizes(t *testing.T) {
	t.Parallel()

	svc, _, _ := testService()
	a, err := svc.Signup(context.Background(), "alice", " Alice@B.com ", "pw")
	require.NoError(t, err)
	require.Equal(t, "alice@b.com", a.Email)
	require.NotEqual(t, "pw", a.Password)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, _, _ := testService()
	_, err := svc.Signup(context.Background(), "alice", "a@b.com", "pw")
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), "bob", "a@b.com", "pw2")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignin_DistinctFailures(t *testing.T) {
	t.Parallel()

	svc, _, _ := testService()
	_, err := svc.Signup(context.Background(), "alice", "a@b.com", "pw")
	require.NoError(t, err)

	_, err = svc.Signin(context.Background(), "nobody@b.com", "pw")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Signin(context.Background(), "a@b.com", "wrong")
	require.ErrorIs(t, err, ErrBadCredentials)
}

func TestSignin_Success(t *testing.T) {
	t.Parallel()

	svc, _, _ := testService()
	created, err := svc.Signup(context.Background(), "alice", "a@b.com", "pw")
	require.NoError(t, err)

	got, err := svc.Signin(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
}

func TestGetProfile_PopulatesMessages(t *testing.T) {
	t.Parallel()

	svc, _, msgs := testService()
	a, err := svc.Signup(context.Background(), "alice", "a@b.com", "pw")
	require.NoError(t, err)
	msgs.byUser[a.ID] = []message.Message{{ID: "m1", Name: "hi", User: a.ID}}

	p, err := svc.GetProfile(context.Background(), a.ID)
	require.NoError(t, err)
	require.Len(t, p.Messages, 1)
	require.Equal(t, "hi", p.Messages[0].Name)
}

func TestGetProfile_UnknownID(t *testing.T) {
	t.Parallel()

	svc, _, _ := testService()
	_, err := svc.GetProfile(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}
