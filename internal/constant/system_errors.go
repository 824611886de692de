package constant

// System-level codes (1xxx)

const (
	CodeSuccess            = 0
	CodeSystemError        = 1000
	CodeDatabaseError      = 1001
	CodeRedisError         = 1002
	CodeInternalError      = 1003
	CodeServiceUnavailable = 1004
	CodeTimeout            = 1005
)

// Parameter codes
const (
	CodeInvalidParams = 1100
	CodeMissingParams = 1101
)

// Auth codes
const (
	CodeUnauthorized   = 1200
	CodeSignatureError = 1203
)
