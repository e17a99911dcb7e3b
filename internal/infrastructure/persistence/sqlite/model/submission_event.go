package model

type SubmissionEvent struct {
	EventID      uint64 `gorm:"column:event_id;primaryKey;autoIncrement"`
	SubmissionID string `gorm:"column:submission_id;type:text;not null;index"`
	Stage        string `gorm:"column:stage;type:text;not null"`
	Detail       string `gorm:"column:detail;type:text;not null"`
	CreatedAt    string `gorm:"column:created_at;type:text;not null"`
}

func (SubmissionEvent) TableName() string {
	return "submission_events"
}
