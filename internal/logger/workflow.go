package logger

import (
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
)

// WorkflowInfo carries the identifiers attached to every workflow log line
type WorkflowInfo struct {
	WorkflowType string
	WorkflowID   string
	RunID        string
	Namespace    string
	TaskQueue    string
	Attempt      int32
}

func (i WorkflowInfo) fields() []zap.Field {
	return []zap.Field{
		zap.String("workflow_type", i.WorkflowType),
		zap.String("workflow_id", i.WorkflowID),
		zap.String("run_id", i.RunID),
		zap.String("namespace", i.Namespace),
		zap.String("task_queue", i.TaskQueue),
		zap.Int32("attempt", i.Attempt),
	}
}

// GetWorkflowInfo extracts workflow identifiers from a workflow context.
// Returns nil outside of a workflow.
func GetWorkflowInfo(ctx workflow.Context) *WorkflowInfo {
	if ctx == nil {
		return nil
	}
	info := workflow.GetInfo(ctx)
	if info == nil {
		return nil
	}

	workflowTypeName := info.WorkflowType.Name
	if workflowTypeName == "" {
		workflowTypeName = "unknown"
	}

	return &WorkflowInfo{
		WorkflowType: workflowTypeName,
		WorkflowID:   info.WorkflowExecution.ID,
		RunID:        info.WorkflowExecution.RunID,
		Namespace:    info.Namespace,
		TaskQueue:    info.TaskQueueName,
		Attempt:      info.Attempt,
	}
}

// FromWorkflow returns a logger annotated with the workflow identifiers.
// Log lines emitted while the workflow replays history are dropped.
func FromWorkflow(ctx workflow.Context) *zap.Logger {
	if workflow.IsReplaying(ctx) {
		return zap.NewNop()
	}
	info := GetWorkflowInfo(ctx)
	if info == nil {
		return log
	}
	return log.With(info.fields()...)
}

// InfoWf logs an info message with workflow context
func InfoWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	FromWorkflow(ctx).Info(msg, fields...)
}

// ErrorWf logs an error with workflow context
func ErrorWf(ctx workflow.Context, err error, fields ...zap.Field) {
	if err == nil {
		FromWorkflow(ctx).Error("error occurred", fields...)
		return
	}
	FromWorkflow(ctx).Error(err.Error(), fields...)
}

// WarnWf logs a warning with workflow context
func WarnWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	FromWorkflow(ctx).Warn(msg, fields...)
}

// DebugWf logs a debug message with workflow context
func DebugWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	FromWorkflow(ctx).Debug(msg, fields...)
}
