package infrastructure

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"restoBotClient/internal/modules/menu/domain"
)

// ErrNoRows is returned when a sheet has no importable dish rows.
var ErrNoRows = errors.New("no valid dish rows")

// Sheet columns, after one header row.
const (
	colCategoryID = iota
	colPrice
	colName
	colDescription
	colPreparationTime
	colImageURL

	requiredColumns = colName + 1
)

// RowIssue explains why a spreadsheet row was skipped. Row is 1-based as shown in the sheet.
type RowIssue struct {
	Row    int
	Reason string
}

func (i RowIssue) String() string {
	return fmt.Sprintf("row %d: %s", i.Row, i.Reason)
}

// ReadDishSheet parses dishes from an .xlsx workbook. Columns are category_id, price, name,
// then optional description, preparation_time and image_url. An empty sheet name selects the
// first sheet. Malformed rows are skipped and reported; imported dishes start available.
func ReadDishSheet(r io.Reader, sheet string) ([]domain.DishCreate, []RowIssue, error) {
	xl, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer xl.Close()

	if strings.TrimSpace(sheet) == "" {
		sheet = xl.GetSheetName(0)
	}
	rows, err := xl.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("sheet %q: %w", sheet, ErrNoRows)
	}

	var dishes []domain.DishCreate
	var issues []RowIssue
	for index, row := range rows[1:] {
		rowNumber := index + 2
		if isBlank(row) {
			continue
		}
		dish, reason := parseDishRow(row)
		if reason != "" {
			issues = append(issues, RowIssue{Row: rowNumber, Reason: reason})
			continue
		}
		dishes = append(dishes, dish)
	}
	if len(dishes) == 0 {
		return nil, issues, fmt.Errorf("sheet %q: %w", sheet, ErrNoRows)
	}
	return dishes, issues, nil
}

func parseDishRow(row []string) (domain.DishCreate, string) {
	if len(row) < requiredColumns {
		return domain.DishCreate{}, "incomplete row"
	}
	categoryID, err := strconv.Atoi(strings.TrimSpace(row[colCategoryID]))
	if err != nil || categoryID <= 0 {
		return domain.DishCreate{}, fmt.Sprintf("invalid category id %q", row[colCategoryID])
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(row[colPrice]), 64)
	if err != nil || price <= 0 {
		return domain.DishCreate{}, fmt.Sprintf("invalid price %q", row[colPrice])
	}
	name := strings.TrimSpace(row[colName])
	if name == "" {
		return domain.DishCreate{}, "empty name"
	}

	dish := domain.DishCreate{
		Name:        name,
		Price:       price,
		CategoryID:  categoryID,
		IsAvailable: true,
		Description: cell(row, colDescription),
		ImageURL:    cell(row, colImageURL),
	}
	if raw := cell(row, colPreparationTime); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes < 0 {
			return domain.DishCreate{}, fmt.Sprintf("invalid preparation time %q", raw)
		}
		dish.PreparationTime = minutes
	}
	return dish, ""
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func isBlank(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
