package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldSchema     = "schema"
	FieldMessageID  = "message_id"
	FieldEndToEndID = "end_to_end_id"
	FieldAmount     = "amount"
	FieldCurrency   = "currency"
	FieldReason     = "reason"
	FieldOperation  = "operation"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
