package topup

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	enc "github.com/khawla-14/markyticket/internal/encoding"
	"github.com/khawla-14/markyticket/internal/wallet"
)

// Parser reads wallet top-up CSV exports from ticket counters and agencies.
// It auto-detects which export format is being used by matching column
// headers against known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]wallet.TopUp, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching top-up format found: expected columns for guichet or agence")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts top-ups from data rows using the matched profile.
// Rows without a client id (totals, blank lines) are skipped.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]wallet.TopUp, error) {
	clientIdx := cols[p.ClientCol]
	amountIdx := cols[p.AmountCol]

	refIdx := -1
	if i, ok := cols[p.RefCol]; ok {
		refIdx = i
	}

	var topUps []wallet.TopUp

	for i, row := range rows {
		rowNum := headerRowNum + i + 1 // 1-based line of the row

		clientID, ok := parseClientID(cellValue(row, clientIdx))
		if !ok {
			continue
		}

		raw := cellValue(row, amountIdx)

		amount, err := parseFrenchAmount(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid amount %q", rowNum, raw)
		}

		topUps = append(topUps, wallet.TopUp{
			ClientID:  clientID,
			Amount:    amount,
			Reference: cellValue(row, refIdx),
		})
	}

	return topUps, nil
}

func parseClientID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
