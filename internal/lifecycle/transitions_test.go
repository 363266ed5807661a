package lifecycle

import (
	"testing"

	apperrors "field-service-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []Status{
	StatusPendingAssignment, StatusAssigned, StatusOnRoute,
	StatusInProgress, StatusCompleted, StatusCancelled,
}

var allEvents = []Event{
	EventAutoAssign, EventAssign, EventReject, EventStart,
	EventCheckIn, EventComplete, EventCancel,
}

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		event   Event
		want    Status
		wantErr bool
	}{
		{"auto assign pending", StatusPendingAssignment, EventAutoAssign, StatusAssigned, false},
		{"auto assign already assigned", StatusAssigned, EventAutoAssign, "", true},
		{"manual assign pending", StatusPendingAssignment, EventAssign, StatusAssigned, false},
		{"manual reassign", StatusAssigned, EventAssign, StatusAssigned, false},
		{"manual assign on route", StatusOnRoute, EventAssign, "", true},
		{"reject assigned", StatusAssigned, EventReject, StatusPendingAssignment, false},
		{"reject on route", StatusOnRoute, EventReject, StatusPendingAssignment, false},
		{"reject in progress", StatusInProgress, EventReject, "", true},
		{"start assigned", StatusAssigned, EventStart, StatusOnRoute, false},
		{"start pending", StatusPendingAssignment, EventStart, "", true},
		{"start on route", StatusOnRoute, EventStart, "", true},
		{"check in on route", StatusOnRoute, EventCheckIn, StatusInProgress, false},
		{"check in assigned", StatusAssigned, EventCheckIn, StatusInProgress, false},
		{"check in pending", StatusPendingAssignment, EventCheckIn, "", true},
		{"complete in progress", StatusInProgress, EventComplete, StatusCompleted, false},
		{"complete on route", StatusOnRoute, EventComplete, "", true},
		{"cancel pending", StatusPendingAssignment, EventCancel, StatusCancelled, false},
		{"cancel in progress", StatusInProgress, EventCancel, StatusCancelled, false},
		{"cancel cancelled", StatusCancelled, EventCancel, "", true},
		{"cancel completed", StatusCompleted, EventCancel, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next("job-1", tt.from, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsStateConflict(err))
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTerminalStatesRejectEveryEvent(t *testing.T) {
	for _, from := range []Status{StatusCompleted, StatusCancelled} {
		assert.True(t, from.IsTerminal())
		for _, ev := range allEvents {
			_, err := Next("job-1", from, ev)
			assert.True(t, apperrors.IsStateConflict(err), "%s from %s", ev, from)
		}
	}
}

func TestStateConflictMessage(t *testing.T) {
	_, err := Next("job-7", StatusCompleted, EventStart)
	require.Error(t, err)
	assert.Equal(t, "cannot start job job-7 in status completed", err.Error())
}

func TestIsActive(t *testing.T) {
	active := map[Status]bool{}
	for _, s := range ActiveStatuses() {
		active[s] = true
	}
	for _, s := range allStatuses {
		assert.Equal(t, active[s], s.IsActive(), s)
	}
	assert.Len(t, active, 3)
}

func TestParse(t *testing.T) {
	for _, s := range allStatuses {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseStatus("archived")
	assert.Error(t, err)

	for _, ev := range allEvents {
		got, err := ParseEvent(string(ev))
		require.NoError(t, err)
		assert.Equal(t, ev, got)
	}
	_, err = ParseEvent("teleport")
	assert.Error(t, err)
}

func TestSourcesReturnsCopy(t *testing.T) {
	src := Sources(EventCheckIn)
	assert.ElementsMatch(t, []Status{StatusAssigned, StatusOnRoute}, src)

	src[0] = StatusCompleted
	assert.False(t, IsTransitionAllowed(StatusCompleted, EventCheckIn))
	assert.Nil(t, Sources(Event("unknown")))
}
