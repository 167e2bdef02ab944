// Package export renders draw history for offline reconciliation.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/kioskworks/roulette-go/internal/domain"
)

// utf8BOM makes spreadsheet tools detect the encoding; without it, non-ASCII
// prize names open garbled in Excel.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{
	"Drawn At",
	"Record ID",
	"Prize ID",
	"Prize Name",
	"Win Message",
	"Idempotency Key",
	"Signature",
	"Is Reversal",
}

// WriteDrawRecordsCSV streams records as CSV, oldest first is the caller's
// choice of ordering. The prize name and message come from the record's
// snapshot, not the current prize row.
func WriteDrawRecordsCSV(w io.Writer, records []domain.DrawRecord) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range records {
		if err := cw.Write(recordRow(&records[i])); err != nil {
			return fmt.Errorf("failed to write record %s: %w", records[i].ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func recordRow(record *domain.DrawRecord) []string {
	prizeID := domain.NoPrizeID
	if record.PrizeID != nil {
		prizeID = record.PrizeID.String()
	}
	return []string{
		record.CreatedAt.UTC().Format(time.RFC3339),
		record.ID.String(),
		prizeID,
		record.PrizeName,
		record.PrizeWinMessage,
		record.IdempotencyKey,
		record.Signature,
		strconv.FormatBool(record.IsReversal),
	}
}

// Filename builds the attachment name for a roulette's export
func Filename(rouletteName string, now time.Time) string {
	return fmt.Sprintf("draw-records-%s-%s.csv", rouletteName, now.UTC().Format("20060102-150405"))
}
