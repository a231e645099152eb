package request

import (
	"strings"

	"parkspace-booking/internal/domain/contract"
	"parkspace-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateTemplateRequest struct {
	Name      string     `json:"name" binding:"required,min=2,max=200"`
	ScopeType string     `json:"scope_type" binding:"required,oneof=global company location"`
	ScopeID   *uuid.UUID `json:"scope_id"`
	BodyMD    string     `json:"body_md" binding:"required,min=10"`
}

func (r *CreateTemplateRequest) ToInput() commands.TemplateInput {
	return commands.TemplateInput{
		Name:      strings.TrimSpace(r.Name),
		ScopeType: contract.ScopeType(r.ScopeType),
		ScopeID:   r.ScopeID,
		Body:      r.BodyMD,
	}
}
