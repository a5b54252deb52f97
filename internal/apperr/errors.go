package apperr

// ConfigError reports a malformed evaluator specification or an
// unrecognized metric kind. It is fatal for the whole evaluation call:
// a silently skipped metric would corrupt the positional alignment of
// the target vector.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func NewConfig(msg string) *ConfigError {
	return &ConfigError{Message: msg}
}

func NewConfigWrap(msg string, err error) *ConfigError {
	return &ConfigError{Message: msg, Err: err}
}

// UndefinedMetricError reports a metric whose value is mathematically
// undefined for the given data (zero denominator, empty slice). The
// caller decides whether to fail the trial or resample; no fallback
// numeric value is invented here.
type UndefinedMetricError struct {
	Kind    string
	Column  string
	Message string
}

func (e *UndefinedMetricError) Error() string {
	if e.Kind != "" {
		return e.Kind + " on column " + e.Column + ": " + e.Message
	}
	return e.Message
}

func NewUndefined(msg string) *UndefinedMetricError {
	return &UndefinedMetricError{Message: msg}
}

// DataShapeError reports a column referenced by a specification that is
// absent from the dataset.
type DataShapeError struct {
	Column  string
	Message string
}

func (e *DataShapeError) Error() string {
	return e.Message
}

func NewDataShape(column, msg string) *DataShapeError {
	return &DataShapeError{Column: column, Message: msg}
}
