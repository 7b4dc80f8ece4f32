package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingOperationKey    = "operation"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingStatusCodeKey   = "status_code"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingPatientIDKey    = "patient_id"
	LoggingRecordIDKey     = "record_id"
	LoggingTestNameKey     = "test_name"
	LoggingObjectIDKey     = "object_id"
	LoggingAttemptKey      = "attempt"
	LoggingErrorCodeKey    = "error_code"
	LoggingErrorMessageKey = "error_message"
)
