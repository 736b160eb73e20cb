package output

import (
	"encoding/json"

	"github.com/tadbeer/refund-calculator/internal/domain"
)

// JSONFormatter serializes the refund statement as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(statement *domain.RefundStatement) ([]byte, error) {
	return json.MarshalIndent(statement, "", "  ")
}
