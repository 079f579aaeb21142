package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeUnknownCalculation = "UNKNOWN_CALCULATION"
	CodeInvalidProperties  = "INVALID_PROPERTIES"
	CodeUnknownStatus      = "UNKNOWN_STATUS"
	CodeInvalidDirection   = "INVALID_DIRECTION"
	CodeInvalidPeriod      = "INVALID_PERIOD"
	CodeInvalidChildren    = "INVALID_CHILDREN"
	CodeInvalidParts       = "INVALID_PARTS"
	CodeInvalidPercent     = "INVALID_PERCENT"
	CodeDegenerateAmount   = "DEGENERATE_AMOUNT"
)
