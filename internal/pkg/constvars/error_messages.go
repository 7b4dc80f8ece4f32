package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"oneof":         "must be one of [%s]",
	"numeric":       "must be a number",
	"datetime":      "must be a valid date",
	"priority":      "must be one of [Normal Urgent Emergency]",
	"record_status": "must be one of [Pending InProgress Completed Cancelled]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientRecordNotFound                = "the requested record does not exist"
	ErrClientPatientNotFound               = "the requested patient does not exist"
	ErrClientNoFilesUploaded               = "please attach at least one image file"
	ErrClientTooManyFiles                  = "too many files uploaded, the maximum is 10 per request"
	ErrClientEmptyLabParameters            = "a lab record needs at least one test parameter"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "validation on the request failed"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form body"
	ErrDevCannotParseDate            = "cannot parse the requested date"
	ErrDevURLParamIDValidationFailed = "url param %s failed validation"
	ErrDevServerProcess              = "something wrong while processing"
	ErrDevServerDeadlineExceeded     = "server process exceeded the given deadline"

	ErrDevDBFailedToFindDocument     = "failed to find document in database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document to database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document in database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBFailedToCountDocuments   = "failed to count documents in database"
	ErrDevDBStringNotObjectID        = "given string is not a valid ObjectID"
	ErrDevDBDocumentNotFound         = "document does not exist in database"

	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToRemoveObject  = "failed to remove object %s"
	ErrDevMinioFailedToPresignObject = "failed to create presigned url for object %s"

	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	ErrDevRabbitMQPublish = "failed to publish message to queue %s"
	ErrDevRabbitMQConsume = "failed to consume messages from queue %s"

	ErrDevLedgerNoMatchingTestItem = "no recommended test item matches the record"
	ErrDevLedgerSyncFailed         = "failed to synchronize patient test ledger"
)
