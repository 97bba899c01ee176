package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// WriteCSV writes the given records with a humanized header row. The caller
// is responsible for rejecting an empty record set before getting here.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Headers()); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Type,
			fmt.Sprintf("%d", r.ID),
			r.Name,
			FormatCents(r.Amount),
			r.Sender,
			r.Receiver,
			r.BankName,
			r.WalletName,
			r.Description,
			r.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
