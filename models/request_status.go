package models

import (
	"strings"

	"github.com/pkg/errors"
)

type RequestStatus string

const (
	RequestStatusPendingApproval RequestStatus = "PENDING_MANAGER_APPROVAL"
	RequestStatusApproved        RequestStatus = "MANAGER_APPROVED"
	RequestStatusRejected        RequestStatus = "MANAGER_REJECTED"
	RequestStatusInProgress      RequestStatus = "ACTION_IN_PROGRESS"
	RequestStatusClosed          RequestStatus = "CLOSED"
)

// HistoryActionCreated marks the initial history entry written on create,
// all other entries carry the resulting status as the action.
const HistoryActionCreated = "REQUEST_CREATED"

func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusRejected || s == RequestStatusClosed
}

type RequestAction string

const (
	RequestActionApprove RequestAction = "APPROVE"
	RequestActionReject  RequestAction = "REJECT"
	RequestActionStart   RequestAction = "ACTION"
	RequestActionClose   RequestAction = "CLOSE"
)

// ParseRequestAction normalizes an action token from the transport layer
// into the closed action set.
func ParseRequestAction(value string) (RequestAction, error) {
	action := RequestAction(strings.ToUpper(strings.TrimSpace(value)))
	switch action {
	case RequestActionApprove, RequestActionReject, RequestActionStart, RequestActionClose:
		return action, nil
	}
	return "", errors.Wrapf(ErrInvalidInput, "unknown action %q", value)
}

// TransitionRule describes the single legal edge for an action: who may
// perform it and from which status.
type TransitionRule struct {
	Role UserRole
	From RequestStatus
	To   RequestStatus
}

var transitionTable = map[RequestAction]TransitionRule{
	RequestActionApprove: {Role: UserRoleManager, From: RequestStatusPendingApproval, To: RequestStatusApproved},
	RequestActionReject:  {Role: UserRoleManager, From: RequestStatusPendingApproval, To: RequestStatusRejected},
	RequestActionStart:   {Role: UserRoleEmployee, From: RequestStatusApproved, To: RequestStatusInProgress},
	RequestActionClose:   {Role: UserRoleEmployee, From: RequestStatusInProgress, To: RequestStatusClosed},
}

func (a RequestAction) Rule() (TransitionRule, bool) {
	rule, ok := transitionTable[a]
	return rule, ok
}

// ManagerVisibleStatuses limits manager listings to the approval phase.
func ManagerVisibleStatuses() []RequestStatus {
	return []RequestStatus{RequestStatusPendingApproval, RequestStatusApproved, RequestStatusRejected}
}

// EmployeeVisibleStatuses limits employee listings to actionable requests.
func EmployeeVisibleStatuses() []RequestStatus {
	return []RequestStatus{RequestStatusApproved, RequestStatusInProgress}
}
