package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaveStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from LeaveStatus
		to   LeaveStatus
		want bool
	}{
		{LeaveStatusPending, LeaveStatusApproved, true},
		{LeaveStatusPending, LeaveStatusRejected, true},
		{LeaveStatusPending, LeaveStatusCancelled, true},
		{LeaveStatusPending, LeaveStatusWithdrawn, true},
		{LeaveStatusApproved, LeaveStatusCancelled, true},
		{LeaveStatusApproved, LeaveStatusRejected, false},
		{LeaveStatusApproved, LeaveStatusPending, false},
		{LeaveStatusRejected, LeaveStatusCancelled, false},
		{LeaveStatusCancelled, LeaveStatusApproved, false},
		{LeaveStatusWithdrawn, LeaveStatusPending, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, c.from.CanTransitionTo(c.to),
			"transition %s -> %s", c.from, c.to)
	}
}

func TestLeaveTypeValid(t *testing.T) {
	for _, lt := range []LeaveType{
		LeaveTypeAnnual, LeaveTypeSick, LeaveTypeMaternity, LeaveTypePaternity,
		LeaveTypeMarriage, LeaveTypeBereavement, LeaveTypeUnpaid,
		LeaveTypeAdministrative, LeaveTypeOther,
	} {
		assert.True(t, lt.Valid(), "%s should be valid", lt)
	}
	assert.False(t, LeaveType("vacation").Valid())
	assert.False(t, LeaveType("").Valid())
}

func TestLeaveTypeHasBalance(t *testing.T) {
	assert.True(t, LeaveTypeAnnual.HasBalance())
	assert.True(t, LeaveTypeSick.HasBalance())

	for _, lt := range []LeaveType{
		LeaveTypeMaternity, LeaveTypePaternity, LeaveTypeMarriage,
		LeaveTypeBereavement, LeaveTypeUnpaid, LeaveTypeAdministrative,
		LeaveTypeOther,
	} {
		assert.False(t, lt.HasBalance(), "%s should not be balance checked", lt)
	}
}

func TestCreateLeaveRequestRequestValidate(t *testing.T) {
	period := "morning"
	valid := CreateLeaveRequestRequest{
		LeaveType: "annual",
		StartDate: "2025-06-02",
		EndDate:   "2025-06-06",
		Reason:    "family visit",
	}
	assert.NoError(t, valid.Validate())

	halfDay := valid
	halfDay.IsHalfDay = true
	halfDay.HalfDayPeriod = &period
	assert.NoError(t, halfDay.Validate())

	t.Run("unknown leave type", func(t *testing.T) {
		req := valid
		req.LeaveType = "holiday"
		assert.Error(t, req.Validate())
	})

	t.Run("bad date format", func(t *testing.T) {
		req := valid
		req.StartDate = "02/06/2025"
		assert.Error(t, req.Validate())
	})

	t.Run("missing reason", func(t *testing.T) {
		req := valid
		req.Reason = "  "
		assert.Error(t, req.Validate())
	})

	t.Run("half day without period", func(t *testing.T) {
		req := valid
		req.IsHalfDay = true
		assert.Error(t, req.Validate())
	})

	t.Run("bad half day period", func(t *testing.T) {
		req := valid
		bad := "evening"
		req.IsHalfDay = true
		req.HalfDayPeriod = &bad
		assert.Error(t, req.Validate())
	})
}
