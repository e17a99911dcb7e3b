package model

type VerificationReport struct {
	ReportID         uint64 `gorm:"column:report_id;primaryKey;autoIncrement"`
	SubmissionID     string `gorm:"column:submission_id;type:text;not null;uniqueIndex"`
	VerificationType string `gorm:"column:verification_type;type:text;not null;index"`
	FormType         string `gorm:"column:form_type;type:text;not null"`
	TableName_       string `gorm:"column:table_name;type:text;not null"`
	RecordJSON       string `gorm:"column:record_json;type:text;not null"`
	Valid            bool   `gorm:"column:is_valid;not null;default:0"`
	MissingJSON      string `gorm:"column:missing_json;type:text;not null"`
	WarningsJSON     string `gorm:"column:warnings_json;type:text;not null"`
	CreatedAt        string `gorm:"column:created_at;type:text;not null"`
}

func (VerificationReport) TableName() string {
	return "verification_report_archive"
}
