package entities

// ProgressStage names a step of a transcript fetch
type ProgressStage string

const (
	ProgressStageStart      ProgressStage = "start"
	ProgressStageProcessing ProgressStage = "processing"
	ProgressStageDone       ProgressStage = "done"
	ProgressStageError      ProgressStage = "error"
)

// ProgressEvent is emitted in order while a fetch runs
type ProgressEvent struct {
	Stage   ProgressStage `json:"stage"`
	Message string        `json:"message"`
}
