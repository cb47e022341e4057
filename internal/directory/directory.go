// Package directory resolves team-member display names to ids and
// registers members by email.
package directory

import (
	"context"
	"fmt"
	"strings"

	"taskmanager/internal/model"
	"taskmanager/internal/repository"
)

// MemberStore is the persistence the directory needs.
type MemberStore interface {
	repository.MemberFinder
	CreateIfAbsent(ctx context.Context, member *model.TeamMember) (bool, error)
	List(ctx context.Context) ([]model.TeamMember, error)
}

type Directory struct {
	members MemberStore
}

func New(members MemberStore) *Directory {
	return &Directory{members: members}
}

// Resolve returns the id of the first member named name, or
// repository.ErrMemberNotFound.
func (d *Directory) Resolve(ctx context.Context, name string) (uint, error) {
	return Resolve(ctx, d.members, name)
}

// Resolve looks name up through members, which may be bound to an open
// transaction.
func Resolve(ctx context.Context, members repository.MemberFinder, name string) (uint, error) {
	member, err := members.FindByName(ctx, name)
	if err != nil {
		return 0, err
	}
	return member.ID, nil
}

// Register returns the member registered under email, creating it when the
// email is new. An existing member is returned as stored; its name is not
// updated. The bool reports whether a row was created.
func (d *Directory) Register(ctx context.Context, name, email string) (*model.TeamMember, bool, error) {
	member := &model.TeamMember{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}
	created, err := d.members.CreateIfAbsent(ctx, member)
	if err != nil {
		return nil, false, fmt.Errorf("register member %q: %w", member.Email, err)
	}
	return member, created, nil
}

func (d *Directory) List(ctx context.Context) ([]model.TeamMember, error) {
	return d.members.List(ctx)
}
