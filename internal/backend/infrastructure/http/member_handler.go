package http

import (
	"context"
	"net/http"
	"time"

	"github.com/amilz/tap-cash/internal/backend/domain"
	"github.com/gin-gonic/gin"
)

const EmailKey = "email"

type MemberProvider interface {
	GetMember(ctx context.Context, email string) (domain.Member, error)
}

type memberResponse struct {
	Email           string    `json:"email"`
	OnChainAddress  string    `json:"onChainAddress"`
	CachedBalance   string    `json:"cachedBalance"`
	BalanceSyncedAt time.Time `json:"balanceSyncedAt"`
}

type MemberHandler struct {
	members MemberProvider
}

func NewMemberHandler(members MemberProvider) *MemberHandler {
	return &MemberHandler{
		members: members,
	}
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	member, err := h.members.GetMember(c.Request.Context(), c.Param(EmailKey))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, memberResponse{
		Email:           member.Email,
		OnChainAddress:  member.OnChainAddress,
		CachedBalance:   member.CachedBalance.String(),
		BalanceSyncedAt: member.BalanceSyncedAt,
	})
}
