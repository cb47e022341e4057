package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskmanager/internal/model"
)

type TeamMemberRepository struct {
	db *gorm.DB
}

type TeamMemberRepositoryInterface interface {
	FindByName(ctx context.Context, name string) (*model.TeamMember, error)
	FindByEmail(ctx context.Context, email string) (*model.TeamMember, error)
	CreateIfAbsent(ctx context.Context, member *model.TeamMember) (bool, error)
	List(ctx context.Context) ([]model.TeamMember, error)
}

var _ TeamMemberRepositoryInterface = (*TeamMemberRepository)(nil)

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// FindByName returns the first member with the given display name.
// Names are not unique in storage; duplicates resolve to the lowest id.
func (r *TeamMemberRepository) FindByName(ctx context.Context, name string) (*model.TeamMember, error) {
	if name == "" {
		return nil, ErrMemberNotFound
	}

	var member model.TeamMember
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *TeamMemberRepository) FindByEmail(ctx context.Context, email string) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// CreateIfAbsent inserts member unless its email is already registered, in
// which case member is overwritten with the stored row and false is returned.
func (r *TeamMemberRepository) CreateIfAbsent(ctx context.Context, member *model.TeamMember) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(member)
	if result.Error != nil && !hasPgCode(result.Error, pgUniqueViolation) {
		return false, result.Error
	}
	if result.Error == nil && result.RowsAffected > 0 {
		return true, nil
	}

	existing, err := r.FindByEmail(ctx, member.Email)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, fmt.Errorf("member %q conflicted but could not be loaded", member.Email)
	}
	*member = *existing
	return false, nil
}

func (r *TeamMemberRepository) List(ctx context.Context) ([]model.TeamMember, error) {
	var members []model.TeamMember
	err := r.db.WithContext(ctx).Order("id").Find(&members).Error
	return members, err
}
