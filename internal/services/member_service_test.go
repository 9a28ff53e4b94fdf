package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foundation_backend/internal/models"
	"foundation_backend/internal/repositories"
)

func TestCreateMember_MissingFields(t *testing.T) {
	repo := &fakeMemberRepo{}
	svc := NewMemberService(repo, nil)

	_, err := svc.CreateMember(CreateMemberRequest{Name: "", Email: "a@example.com"})
	assert.True(t, errors.Is(err, ErrMemberValidation))

	_, err = svc.CreateMember(CreateMemberRequest{Name: "Alice", Email: ""})
	assert.True(t, errors.Is(err, ErrMemberValidation))

	assert.Empty(t, repo.created, "nothing should be inserted on validation failure")
}

func TestCreateMember_InvalidEmail(t *testing.T) {
	svc := NewMemberService(&fakeMemberRepo{}, nil)

	_, err := svc.CreateMember(CreateMemberRequest{Name: "Alice", Email: "not-an-email"})
	assert.True(t, errors.Is(err, ErrMemberValidation))
}

func TestCreateMember_Success(t *testing.T) {
	repo := &fakeMemberRepo{}
	svc := NewMemberService(repo, nil)

	id, err := svc.CreateMember(CreateMemberRequest{Name: "Alice Johnson", Email: "alice@example.com"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "alice@example.com", repo.created[0].Email)
}

func TestCreateMember_DuplicateEmail(t *testing.T) {
	repo := &fakeMemberRepo{createErr: repositories.ErrDuplicateKey}
	svc := NewMemberService(repo, nil)

	_, err := svc.CreateMember(CreateMemberRequest{Name: "Alice", Email: "alice@example.com"})

	assert.True(t, errors.Is(err, ErrEmailExists), "duplicate key should map to ErrEmailExists, got %v", err)
}

func TestListMembers_EmptyIsSuccess(t *testing.T) {
	svc := NewMemberService(&fakeMemberRepo{members: nil}, nil)

	members, err := svc.ListMembers()

	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Len(t, members, 0)
}

func TestListMembers_PassesThrough(t *testing.T) {
	repo := &fakeMemberRepo{members: []models.Member{
		{ID: 1, Name: "Treasure Abundance", Role: "Foundation Director"},
		{ID: 2, Name: "Alice Johnson", Role: "Volunteer"},
	}}
	svc := NewMemberService(repo, nil)

	members, err := svc.ListMembers()

	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Foundation Director", members[0].Role)
}
