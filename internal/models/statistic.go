package models

// Operation identifies which statistic is computed over a list of numbers
type Operation string

const (
	OperationMean   Operation = "mean"
	OperationMedian Operation = "median"
	OperationMode   Operation = "mode"
)

// IsValid checks if the operation is one of the supported statistics
func (o Operation) IsValid() bool {
	switch o {
	case OperationMean, OperationMedian, OperationMode:
		return true
	}
	return false
}

// String returns the string representation of Operation
func (o Operation) String() string {
	return string(o)
}

// StatisticResult is the outcome of a single statistic computation.
// Value holds a float64 for mean and median and an int64 for mode.
type StatisticResult struct {
	Operation Operation `json:"operation"`
	Value     any       `json:"value"`
}

// StatisticResponse represents the API response for a computed statistic
type StatisticResponse struct {
	Response StatisticResult `json:"response"`
}

// ErrorBody carries the message and HTTP status of a failed request
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorResponse represents the API response for any failed request
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
