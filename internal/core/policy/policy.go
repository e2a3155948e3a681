// Package policy decides who may view and change team-scoped resources.
// The same rule set covers accounts, transactions and categories.
package policy

import (
	"fmt"

	"github.com/SscSPs/family_finance_tracker/internal/apperrors"
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
)

// TeamScoped is any resource owned by exactly one team.
type TeamScoped interface {
	GetTeamID() string
}

// Ability names a guarded action.
type Ability string

const (
	AbilityViewAny     Ability = "viewAny"
	AbilityView        Ability = "view"
	AbilityCreate      Ability = "create"
	AbilityUpdate      Ability = "update"
	AbilityDelete      Ability = "delete"
	AbilityRestore     Ability = "restore"
	AbilityForceDelete Ability = "forceDelete"
)

// Policy is stateless: every check is evaluated against the identity
// snapshot it is handed.
type Policy[T TeamScoped] struct {
	resource string
}

// New creates a policy whose denials name resource, e.g. "account".
func New[T TeamScoped](resource string) Policy[T] {
	return Policy[T]{resource: resource}
}

var (
	Accounts     = New[*domain.Account]("account")
	Transactions = New[*domain.Transaction]("transaction")
	Categories   = New[*domain.Category]("category")
	Teams        = New[*domain.Team]("team")
)

// CanViewAny always allows listing; team scoping is done by the query.
func (p Policy[T]) CanViewAny(id *domain.Identity) bool {
	return true
}

func (p Policy[T]) CanView(id *domain.Identity, resource T) bool {
	return id.BelongsToTeam(resource.GetTeamID())
}

// CanCreate requires a current team that the identity owns or administers.
func (p Policy[T]) CanCreate(id *domain.Identity) bool {
	teamID, ok := id.CurrentTeam()
	if !ok {
		return false
	}
	return canManage(id, teamID)
}

func (p Policy[T]) CanUpdate(id *domain.Identity, resource T) bool {
	return canManage(id, resource.GetTeamID())
}

func (p Policy[T]) CanDelete(id *domain.Identity, resource T) bool {
	return p.CanUpdate(id, resource)
}

func (p Policy[T]) CanRestore(id *domain.Identity, resource T) bool {
	return false
}

func (p Policy[T]) CanForceDelete(id *domain.Identity, resource T) bool {
	return false
}

// Allows dispatches on ability. resource is ignored for viewAny and create.
func (p Policy[T]) Allows(ability Ability, id *domain.Identity, resource T) bool {
	switch ability {
	case AbilityViewAny:
		return p.CanViewAny(id)
	case AbilityView:
		return p.CanView(id, resource)
	case AbilityCreate:
		return p.CanCreate(id)
	case AbilityUpdate:
		return p.CanUpdate(id, resource)
	case AbilityDelete:
		return p.CanDelete(id, resource)
	case AbilityRestore:
		return p.CanRestore(id, resource)
	case AbilityForceDelete:
		return p.CanForceDelete(id, resource)
	}
	return false
}

// Authorize returns an error matching apperrors.ErrForbidden on denial.
func (p Policy[T]) Authorize(ability Ability, id *domain.Identity, resource T) error {
	if p.Allows(ability, id, resource) {
		return nil
	}
	return fmt.Errorf("%w: %s on %s is not allowed", apperrors.ErrForbidden, ability, p.resource)
}

// AuthorizeCreate is Authorize for AbilityCreate, which needs no resource.
func (p Policy[T]) AuthorizeCreate(id *domain.Identity) error {
	if p.CanCreate(id) {
		return nil
	}
	return fmt.Errorf("%w: create on %s is not allowed", apperrors.ErrForbidden, p.resource)
}

func canManage(id *domain.Identity, teamID string) bool {
	return id.OwnsTeam(teamID) || id.HasRole(teamID, domain.RoleAdmin)
}
