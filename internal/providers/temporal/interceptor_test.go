package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/workflow"
)

func TestActivityTags(t *testing.T) {
	info := activity.Info{
		ActivityType:      activity.Type{Name: "VerifyDeal"},
		WorkflowType:      &workflow.Type{Name: "MarketJobWorkflow"},
		WorkflowExecution: workflow.Execution{ID: "deal-0.0.5-1-2"},
		TaskQueue:         "market",
		Attempt:           3,
	}

	assert.Equal(t, map[string]string{
		"activity_type": "VerifyDeal",
		"workflow_type": "MarketJobWorkflow",
		"workflow_id":   "deal-0.0.5-1-2",
		"task_queue":    "market",
		"attempt":       "3",
	}, activityTags(info))
}
