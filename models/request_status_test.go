package models

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParseRequestAction(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		for token, want := range map[string]RequestAction{
			"approve":  RequestActionApprove,
			"REJECT":   RequestActionReject,
			" Action ": RequestActionStart,
			"close":    RequestActionClose,
		} {
			action, err := ParseRequestAction(token)
			require.NoError(t, err)
			require.Equal(t, want, action)
		}
	})

	t.Run("rejects unknown tokens", func(t *testing.T) {
		_, err := ParseRequestAction("delete")
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrInvalidInput))
	})
}

func TestTransitionTable(t *testing.T) {
	t.Run("every action has exactly one legal edge", func(t *testing.T) {
		rule, ok := RequestActionApprove.Rule()
		require.True(t, ok)
		require.Equal(t, UserRoleManager, rule.Role)
		require.Equal(t, RequestStatusPendingApproval, rule.From)
		require.Equal(t, RequestStatusApproved, rule.To)

		rule, ok = RequestActionReject.Rule()
		require.True(t, ok)
		require.Equal(t, UserRoleManager, rule.Role)
		require.Equal(t, RequestStatusPendingApproval, rule.From)
		require.Equal(t, RequestStatusRejected, rule.To)

		rule, ok = RequestActionStart.Rule()
		require.True(t, ok)
		require.Equal(t, UserRoleEmployee, rule.Role)
		require.Equal(t, RequestStatusApproved, rule.From)
		require.Equal(t, RequestStatusInProgress, rule.To)

		rule, ok = RequestActionClose.Rule()
		require.True(t, ok)
		require.Equal(t, UserRoleEmployee, rule.Role)
		require.Equal(t, RequestStatusInProgress, rule.From)
		require.Equal(t, RequestStatusClosed, rule.To)
	})

	t.Run("no edge leaves a terminal status", func(t *testing.T) {
		for action := range transitionTable {
			rule, _ := action.Rule()
			require.False(t, rule.From.IsTerminal(), "action %s starts from terminal status %s", action, rule.From)
		}
	})

	t.Run("terminal statuses", func(t *testing.T) {
		require.True(t, RequestStatusRejected.IsTerminal())
		require.True(t, RequestStatusClosed.IsTerminal())
		require.False(t, RequestStatusPendingApproval.IsTerminal())
		require.False(t, RequestStatusApproved.IsTerminal())
		require.False(t, RequestStatusInProgress.IsTerminal())
	})
}

func TestVisibleStatuses(t *testing.T) {
	t.Run("managers never see employee-phase states", func(t *testing.T) {
		require.NotContains(t, ManagerVisibleStatuses(), RequestStatusInProgress)
		require.NotContains(t, ManagerVisibleStatuses(), RequestStatusClosed)
		require.Contains(t, ManagerVisibleStatuses(), RequestStatusPendingApproval)
		require.Contains(t, ManagerVisibleStatuses(), RequestStatusRejected)
	})

	t.Run("employees never see pending or rejected in listings", func(t *testing.T) {
		require.NotContains(t, EmployeeVisibleStatuses(), RequestStatusPendingApproval)
		require.NotContains(t, EmployeeVisibleStatuses(), RequestStatusRejected)
		require.Contains(t, EmployeeVisibleStatuses(), RequestStatusApproved)
		require.Contains(t, EmployeeVisibleStatuses(), RequestStatusInProgress)
	})
}
