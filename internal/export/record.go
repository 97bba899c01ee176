// Package export renders a user's financial history as CSV or PDF reports.
package export

import (
	"reflect"
	"strings"
	"time"
)

// Record is the common column superset every exportable row is normalized
// into. Fields that do not apply to a record's type stay empty.
type Record struct {
	Type        string
	ID          uint
	Name        string
	Amount      int64
	Sender      string
	Receiver    string
	BankName    string
	WalletName  string
	Description string
	CreatedAt   time.Time
}

// Headers returns the humanized field names of Record, in declaration order.
func Headers() []string {
	t := reflect.TypeOf(Record{})
	headers := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		headers = append(headers, humanize(t.Field(i).Name))
	}
	return headers
}

// humanize splits a CamelCase field name into space-separated words,
// keeping initialisms intact ("BankName" -> "Bank Name", "ID" -> "ID").
func humanize(field string) string {
	var words []string
	runes := []rune(field)
	start := 0
	for i := 1; i < len(runes); i++ {
		if isUpper(runes[i]) && !isUpper(runes[i-1]) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))
	return strings.Join(words, " ")
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
