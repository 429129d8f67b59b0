package ports

type TurnMetrics interface {
	RecordSuccess(outcome string)
	RecordConflict()
	RecordFailure(kind string)
}
