package audit

const (
	DefaultPageSize = 100
	MaxPageSize     = 1000
)

const (
	LogMsgAuditWriteFailed = "Audit write failed"
)
