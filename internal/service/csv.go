package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"smartwarehouse/internal/dto"
)

// rowResult carries one parsed upload row together with its 0-based position,
// so error reports can point at the offending line. Parse failures are stored
// in err - the row is still emitted so the batch keeps its positions.
type rowResult struct {
	index int
	row   dto.MovementRow
	err   error
}

// parseMovementRows validates the typed row schema {item_id, quantity} at
// parse time. It only fails as a whole when the payload is not structured
// tabular data at all (empty file, no header).
func parseMovementRows(data []byte) ([]rowResult, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}

	idxItem, idxQty := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "item_id":
			idxItem = i
		case "quantity":
			idxQty = i
		}
	}

	var rows []rowResult
	for i := 0; ; i++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rows = append(rows, rowResult{index: i, err: err})
			continue
		}
		rows = append(rows, parseRow(i, rec, idxItem, idxQty))
	}
	return rows, nil
}

func parseRow(index int, rec []string, idxItem, idxQty int) rowResult {
	if idxItem < 0 || idxQty < 0 || idxItem >= len(rec) || idxQty >= len(rec) {
		return rowResult{index: index, err: errors.New("missing item_id or quantity column")}
	}
	id, errID := strconv.Atoi(strings.TrimSpace(rec[idxItem]))
	qty, errQty := strconv.Atoi(strings.TrimSpace(rec[idxQty]))
	if errID != nil || errQty != nil {
		return rowResult{index: index, err: errors.New("item_id and quantity must be integers")}
	}
	if id <= 0 {
		return rowResult{index: index, err: errors.New("item_id must be a positive integer")}
	}
	if qty <= 0 {
		return rowResult{index: index, err: errors.New("quantity must be a positive integer")}
	}
	return rowResult{index: index, row: dto.MovementRow{ItemID: uint(id), Quantity: qty}}
}
