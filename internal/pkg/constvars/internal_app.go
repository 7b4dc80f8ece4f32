package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDFLW_SVC_"
)

const (
	MongoCollectionPatients      = "patients"
	MongoCollectionLabRecords    = "lab_records"
	MongoCollectionXrayRecords   = "xray_records"
	MongoCollectionWalkInRecords = "walkin_xray_records"
)

const (
	StorageFolderXrays   = "hospital/xrays"
	StorageFolderWalkIns = "hospital/walkins"
)

const (
	// MaxUploadFilesPerRequest caps one multipart batch; excess files are
	// rejected before any upload starts.
	MaxUploadFilesPerRequest = 10

	MultipartImagesField = "images"
)

const (
	LedgerSyncQueueName           = "ledger_sync_queue"
	LedgerSyncDeadLetterQueueName = "ledger_sync_dlq"
	LedgerSyncMaxAttempts         = 5
)

const (
	RedisKeyXrayStatistics = "mediflow:statistics:xray"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	// XrayLedgerResult is the fixed ledger result text written for completed
	// X-ray test items.
	XrayLedgerResult = "X-ray images completed"

	WalkInIDPrefix = "WALKIN"
)
