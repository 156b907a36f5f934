// Package spreadsheet decodes uploaded roster files into header-keyed rows.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/SscSPs/hr_payroll_admin/internal/apperrors"
	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	portssvc "github.com/SscSPs/hr_payroll_admin/internal/core/ports/services"
	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Decoder reads the first sheet of .xlsx, .xls and .csv uploads. The first non-blank row
// is the header; blank rows after it are skipped.
type Decoder struct{}

// NewDecoder creates a roster decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

var _ portssvc.RosterDecoder = (*Decoder)(nil)

// Decode returns one SheetRow per non-blank data row, numbered by its row in the sheet.
// Cells beyond the header are dropped.
func (d *Decoder) Decode(fileName string, data []byte) ([]domain.SheetRow, error) {
	if len(data) == 0 {
		return nil, &apperrors.ParseError{Reason: "file is empty"}
	}

	var (
		lines []line
		err   error
	)
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx", ".xlsm":
		lines, err = readXLSX(data)
	case ".xls":
		lines, err = readXLS(data)
	case ".csv":
		lines, err = readCSV(data)
	default:
		return nil, &apperrors.ParseError{Reason: fmt.Sprintf("unsupported file type %q, upload .xlsx, .xls or .csv", filepath.Ext(fileName))}
	}
	if err != nil {
		return nil, &apperrors.ParseError{Reason: "could not read spreadsheet", Err: err}
	}

	rows := toSheetRows(lines)
	if len(rows) == 0 {
		return nil, &apperrors.ParseError{Reason: "file is empty"}
	}
	return rows, nil
}

// line is one raw sheet row and its 1-based row number.
type line struct {
	number int
	values []string
}

// numbered treats cells[i] as sheet row i+1.
func numbered(cells [][]string) []line {
	lines := make([]line, len(cells))
	for i, values := range cells {
		lines[i] = line{number: i + 1, values: values}
	}
	return lines
}

func readXLSX(data []byte) ([]line, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}
	// Raw values keep date cells as serial numbers so the validator can convert them.
	// Empty rows between filled ones come back as empty slices, so indexes match the sheet.
	cells, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return numbered(cells), nil
}

func readXLS(data []byte) (lines []line, err error) {
	// The legacy reader panics on some malformed workbooks.
	defer func() {
		if r := recover(); r != nil {
			lines, err = nil, fmt.Errorf("malformed xls workbook: %v", r)
		}
	}()

	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if workbook.NumSheets() == 0 {
		return nil, fmt.Errorf("no worksheet found")
	}
	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("no worksheet found")
	}

	cells := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			cells = append(cells, nil)
			continue
		}
		values := make([]string, 0, row.LastCol()+1)
		for j := 0; j <= row.LastCol(); j++ {
			values = append(values, row.Col(j))
		}
		cells = append(cells, values)
	}
	return numbered(cells), nil
}

func readCSV(data []byte) ([]line, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var lines []line
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
		// The reader skips empty lines, so the position is the only reliable row number.
		number, _ := reader.FieldPos(0)
		lines = append(lines, line{number: number, values: record})
	}
}

func toSheetRows(lines []line) []domain.SheetRow {
	headerIdx := -1
	for i, l := range lines {
		if !isBlank(l.values) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	header := make([]string, len(lines[headerIdx].values))
	for i, h := range lines[headerIdx].values {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]domain.SheetRow, 0, len(lines)-headerIdx-1)
	for _, l := range lines[headerIdx+1:] {
		if isBlank(l.values) {
			continue
		}
		row := make(domain.RosterRow, len(header))
		for i, col := range header {
			if col == "" || i >= len(l.values) {
				continue
			}
			if _, seen := row[col]; seen {
				continue
			}
			row[col] = strings.TrimSpace(l.values[i])
		}
		rows = append(rows, domain.SheetRow{Number: l.number, Cells: row})
	}
	return rows
}

func isBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
