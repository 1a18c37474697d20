package application

import (
	"context"

	"github.com/amilz/tap-cash/internal/backend/domain"
)

type MemberInfoCase struct {
	directory domain.AccountDirectory
}

func NewMemberInfoCase(directory domain.AccountDirectory) *MemberInfoCase {
	return &MemberInfoCase{
		directory: directory,
	}
}

func (mc *MemberInfoCase) GetMember(ctx context.Context, email string) (domain.Member, error) {
	member, err := mc.directory.Lookup(ctx, email)
	if err != nil {
		return domain.Member{}, err
	}

	return member, nil
}
