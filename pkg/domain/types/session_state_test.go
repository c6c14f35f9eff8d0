package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

func TestSessionStateTransitions(t *testing.T) {
	testCases := []struct {
		from    types.SessionState
		to      types.SessionState
		allowed bool
	}{
		{types.StateSelectingHazards, types.StateRespondentInfo, true},
		{types.StateRespondentInfo, types.StateHazardEvaluation, true},
		{types.StateHazardEvaluation, types.StateSubmitted, true},
		{types.StateHazardEvaluation, types.StateRespondentInfo, true},
		{types.StateSelectingHazards, types.StateHazardEvaluation, false},
		{types.StateSelectingHazards, types.StateSubmitted, false},
		{types.StateRespondentInfo, types.StateSelectingHazards, false},
		{types.StateSubmitted, types.StateHazardEvaluation, false},
		{types.StateSubmitted, types.StateRespondentInfo, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			gt.Value(t, tc.from.CanTransitionTo(tc.to)).Equal(tc.allowed)
		})
	}
}

func TestSessionStateTerminal(t *testing.T) {
	gt.Bool(t, types.StateSubmitted.IsTerminal()).True()

	for _, state := range types.AllSessionStates() {
		if state == types.StateSubmitted {
			continue
		}
		gt.Bool(t, state.IsTerminal()).False()
	}
}

func TestParseSessionState(t *testing.T) {
	t.Run("known state", func(t *testing.T) {
		state, err := types.ParseSessionState("HAZARD_EVALUATION")
		gt.NoError(t, err).Required()
		gt.Value(t, state).Equal(types.StateHazardEvaluation)
	})

	t.Run("unknown state", func(t *testing.T) {
		_, err := types.ParseSessionState("DONE")
		gt.Error(t, err)
	})
}
