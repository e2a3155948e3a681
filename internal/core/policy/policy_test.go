package policy_test

import (
	"testing"

	"github.com/SscSPs/family_finance_tracker/internal/apperrors"
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/core/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type PolicyTestSuite struct {
	suite.Suite
	owner    *domain.Identity
	admin    *domain.Identity
	member   *domain.Identity
	readOnly *domain.Identity
	outsider *domain.Identity
	account  *domain.Account
	txn      *domain.Transaction
}

func strPtr(s string) *string { return &s }

func (s *PolicyTestSuite) SetupTest() {
	s.owner = domain.NewIdentity("owner", strPtr("team-a"), []string{"team-a"}, nil)
	s.admin = domain.NewIdentity("admin", strPtr("team-a"), nil, []domain.TeamMembership{
		{TeamID: "team-a", UserID: "admin", Role: domain.RoleAdmin},
	})
	s.member = domain.NewIdentity("member", strPtr("team-a"), nil, []domain.TeamMembership{
		{TeamID: "team-a", UserID: "member", Role: domain.RoleMember},
	})
	s.readOnly = domain.NewIdentity("viewer", strPtr("team-a"), nil, []domain.TeamMembership{
		{TeamID: "team-a", UserID: "viewer", Role: domain.RoleReadOnly},
	})
	s.outsider = domain.NewIdentity("outsider", strPtr("team-b"), []string{"team-b"}, nil)
	s.account = &domain.Account{AccountID: "acc-1", TeamID: "team-a"}
	s.txn = &domain.Transaction{TransactionID: "txn-1", TeamID: "team-a"}
}

func (s *PolicyTestSuite) TestOwnerAndAdminMayManage() {
	for _, id := range []*domain.Identity{s.owner, s.admin} {
		s.True(policy.Accounts.CanCreate(id))
		s.True(policy.Accounts.CanView(id, s.account))
		s.True(policy.Accounts.CanUpdate(id, s.account))
		s.True(policy.Accounts.CanDelete(id, s.account))
		s.True(policy.Transactions.CanUpdate(id, s.txn))
		s.True(policy.Transactions.CanDelete(id, s.txn))
	}
}

func (s *PolicyTestSuite) TestPlainMembersMayOnlyView() {
	for _, id := range []*domain.Identity{s.member, s.readOnly} {
		s.True(policy.Accounts.CanViewAny(id))
		s.True(policy.Accounts.CanView(id, s.account))
		s.False(policy.Accounts.CanCreate(id))
		s.False(policy.Accounts.CanUpdate(id, s.account))
		s.False(policy.Accounts.CanDelete(id, s.account))
		s.False(policy.Transactions.CanCreate(id))
		s.False(policy.Transactions.CanUpdate(id, s.txn))
		s.False(policy.Transactions.CanDelete(id, s.txn))
	}
}

func (s *PolicyTestSuite) TestOtherTeamIsInvisible() {
	s.False(policy.Accounts.CanView(s.outsider, s.account))
	s.False(policy.Accounts.CanUpdate(s.outsider, s.account))
	s.False(policy.Transactions.CanView(s.outsider, s.txn))
	// outsider still manages their own current team
	s.True(policy.Accounts.CanCreate(s.outsider))
}

func (s *PolicyTestSuite) TestCreateNeedsCurrentTeam() {
	noTeam := domain.NewIdentity("owner", nil, []string{"team-a"}, nil)
	s.False(policy.Accounts.CanCreate(noTeam))
	s.ErrorIs(policy.Accounts.AuthorizeCreate(noTeam), apperrors.ErrForbidden)
}

func (s *PolicyTestSuite) TestRestoreAndForceDeleteNeverAllowed() {
	s.False(policy.Accounts.CanRestore(s.owner, s.account))
	s.False(policy.Accounts.CanForceDelete(s.owner, s.account))
	s.False(policy.Transactions.Allows(policy.AbilityRestore, s.admin, s.txn))
	s.False(policy.Transactions.Allows(policy.AbilityForceDelete, s.admin, s.txn))
}

func (s *PolicyTestSuite) TestAuthorize() {
	s.NoError(policy.Accounts.Authorize(policy.AbilityUpdate, s.owner, s.account))

	err := policy.Accounts.Authorize(policy.AbilityDelete, s.member, s.account)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.Contains(err.Error(), "delete on account")
}

func TestPolicyTestSuite(t *testing.T) {
	suite.Run(t, new(PolicyTestSuite))
}

func TestAllowsUnknownAbility(t *testing.T) {
	owner := domain.NewIdentity("owner", nil, []string{"team-a"}, nil)
	assert.False(t, policy.Categories.Allows(policy.Ability("archive"), owner, &domain.Category{TeamID: "team-a"}))
}
