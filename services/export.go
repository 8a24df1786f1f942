package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"paju/constants"
	"paju/models"
)

var exportHeaders = []string{"ID", "Menu", "Category", "Title", "Description", "Price", "Available", "Order", "Image URL"}

// BuildMenuWorkbook tạo file xlsx, mỗi menu type một sheet
func BuildMenuWorkbook(items []models.MenuItem) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for _, m := range constants.MenuTypes {
		sheet := m.Label()
		if first {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, err
			}
			first = false
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}

		for i, h := range exportHeaders {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return nil, err
			}
		}

		row := 2
		for _, it := range items {
			if it.MenuType != m {
				continue
			}
			values := []interface{}{it.ID, string(it.MenuType), it.Category, it.Title, it.Description, it.Price, it.IsAvailable, it.DisplayOrder, it.ImageURL}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return nil, err
				}
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

// Export xuất toàn bộ món ăn ra xlsx
func (s *MenuService) Export(ctx context.Context) (*bytes.Buffer, error) {
	items, err := s.Store.Items.List(ctx, nil)
	if err != nil {
		return nil, s.storeError("export menu", err)
	}
	buf, err := BuildMenuWorkbook(items)
	if err != nil {
		s.Logger.Error("build menu workbook: %v", err)
		return nil, err
	}
	s.Logger.Info("exported %d menu items", len(items))
	return buf, nil
}
