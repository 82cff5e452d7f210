package adapter

import (
	"context"

	"go.temporal.io/sdk/activity"
)

// ActivityExecution identifies one attempt of a market job activity
type ActivityExecution struct {
	WorkflowID string
	RunID      string
	Attempt    int32
}

// Activity reads the execution an activity context belongs to. Outside the
// worker, activity.GetInfo panics, so handlers go through this seam.
//
//go:generate mockgen -source=temporal.go -destination=../mocks/temporal.go -package=mocks -mock_names=Activity=MockActivity
type Activity interface {
	Execution(ctx context.Context) ActivityExecution
}

type temporalActivity struct{}

func NewActivity() Activity {
	return temporalActivity{}
}

func (temporalActivity) Execution(ctx context.Context) ActivityExecution {
	info := activity.GetInfo(ctx)
	return ActivityExecution{
		WorkflowID: info.WorkflowExecution.ID,
		RunID:      info.WorkflowExecution.RunID,
		Attempt:    info.Attempt,
	}
}
