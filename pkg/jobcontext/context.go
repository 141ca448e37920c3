package jobcontext

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KeyContext string

var (
	keyJobID        KeyContext = "job_id"
	keyJobType      KeyContext = "job_type"
	keySessionID    KeyContext = "session_id"
	keyJobStartTime KeyContext = "job_start_time"
)

// Job types
const (
	JobFetchTranscript = "fetch_transcript"
	JobShortSummary    = "short_summary"
	JobDetailedSummary = "detailed_summary"
	JobBulletPoints    = "bullet_points"
	JobChat            = "chat"
)

// JobBegin tags ctx with a fresh job id, the job type and the owning session
func JobBegin(parentCtx context.Context, sessionID uuid.UUID, jobType string) context.Context {
	ctx := context.WithValue(parentCtx, keyJobID, uuid.New())
	ctx = context.WithValue(ctx, keyJobType, jobType)
	ctx = context.WithValue(ctx, keySessionID, sessionID)
	ctx = context.WithValue(ctx, keyJobStartTime, time.Now())
	return ctx
}

// JobEnd runs jobFunc once, turning a panic into an error.
// There is no retry: every failure is reported once to the caller.
func JobEnd(ctx context.Context, jobFunc func(context.Context) error) (err error) {
	if ctx.Err() != nil {
		return fmt.Errorf("context cancelled before job execution: %w", ctx.Err())
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic recovered: %v", p)
		}
	}()

	return jobFunc(ctx)
}

// GetJobID extracts job ID from context
func GetJobID(ctx context.Context) (uuid.UUID, bool) {
	jobID, ok := ctx.Value(keyJobID).(uuid.UUID)
	return jobID, ok
}

// GetJobType extracts job type from context
func GetJobType(ctx context.Context) (string, bool) {
	jobType, ok := ctx.Value(keyJobType).(string)
	return jobType, ok
}

// GetSessionID extracts the session ID from context
func GetSessionID(ctx context.Context) (uuid.UUID, bool) {
	sessionID, ok := ctx.Value(keySessionID).(uuid.UUID)
	return sessionID, ok
}

// GetJobStartTime extracts job start time from context
func GetJobStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyJobStartTime).(time.Time)
	return startTime, ok
}

// Fields returns the job metadata as zap fields, skipping anything unset
func Fields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 4)
	if id, ok := GetJobID(ctx); ok {
		fields = append(fields, zap.String("job_id", id.String()))
	}
	if t, ok := GetJobType(ctx); ok {
		fields = append(fields, zap.String("job_type", t))
	}
	if sid, ok := GetSessionID(ctx); ok {
		fields = append(fields, zap.String("session_id", sid.String()))
	}
	if start, ok := GetJobStartTime(ctx); ok {
		fields = append(fields, zap.Duration("elapsed", time.Since(start)))
	}
	return fields
}
