package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Decimal is a monetary or quantity amount kept in the exact text the API sent. The API
// serialises amounts either as strings ("12.50") or as JSON numbers (12.5); both decode
// without going through float64.
type Decimal string

func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Decimal(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a string or number: %w", err)
	}
	*d = Decimal(n.String())
	return nil
}

func (d Decimal) String() string { return string(d) }
