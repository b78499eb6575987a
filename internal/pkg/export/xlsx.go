package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const moneyFormat = "#,##0.00"

// Column describes one register column.
type Column struct {
	Header string
	Width  float64
	Money  bool
}

// Sheet is a single-sheet workbook with a bold frozen header row.
type Sheet struct {
	file       *excelize.File
	name       string
	columns    []Column
	nextRow    int
	moneyStyle int
}

func NewSheet(name string, columns []Column) (*Sheet, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", name); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	numFmt := moneyFormat
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create money style: %w", err)
	}

	s := &Sheet{file: f, name: name, columns: columns, nextRow: 2, moneyStyle: moneyStyle}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(name, cell, col.Header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write header %q: %w", col.Header, err)
		}
		if col.Width > 0 {
			colName, _ := excelize.ColumnNumberToName(i + 1)
			if err := f.SetColWidth(name, colName, colName, col.Width); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	if len(columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(columns), 1)
		if err := f.SetCellStyle(name, "A1", last, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to style header: %w", err)
		}
	}

	if err := f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	return s, nil
}

// AddRow appends one row. decimal.Decimal values are written as numbers.
func (s *Sheet) AddRow(values ...any) error {
	if len(values) != len(s.columns) {
		return fmt.Errorf("row has %d values, sheet has %d columns", len(values), len(s.columns))
	}

	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, s.nextRow)
		if err != nil {
			return err
		}
		if d, ok := v.(decimal.Decimal); ok {
			v = d.InexactFloat64()
		}
		if err := s.file.SetCellValue(s.name, cell, v); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
		if s.columns[i].Money {
			if err := s.file.SetCellStyle(s.name, cell, cell, s.moneyStyle); err != nil {
				return fmt.Errorf("failed to style cell %s: %w", cell, err)
			}
		}
	}

	s.nextRow++
	return nil
}

// Rows returns the number of data rows written so far.
func (s *Sheet) Rows() int {
	return s.nextRow - 2
}

func (s *Sheet) Write(w io.Writer) error {
	if err := s.file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (s *Sheet) Close() error {
	return s.file.Close()
}
