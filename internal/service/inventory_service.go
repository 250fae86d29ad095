package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartwarehouse/internal/dto"
	"smartwarehouse/internal/model"
	"smartwarehouse/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// lowStockThreshold fires a single-item alert when a committed outgoing
// movement leaves current_stock strictly below it. Fixed business rule.
const lowStockThreshold = 5

// InventoryService applies incoming and outgoing stock movements under the
// ledger's consistency rules and decides when an alert condition fires.
type InventoryService interface {
	// RecordOutgoing atomically decrements stock and appends an order record.
	// Fails with ErrItemNotFound / ErrInsufficientStock; on success returns the
	// item with its post-mutation stock.
	RecordOutgoing(ctx context.Context, req dto.CreateOrderRequest) (*dto.ItemResponse, error)
	// RecordIncoming atomically increments stock. No order record, no alert.
	RecordIncoming(ctx context.Context, req dto.RestockRequest) (*dto.ItemResponse, error)
	// ProcessOutgoingCSV applies one outgoing movement per CSV row. Rows fail
	// independently; the batch only errors when the input is not parseable as
	// CSV at all.
	ProcessOutgoingCSV(ctx context.Context, data []byte) (*dto.UploadResponse, error)
	// ProcessIncomingCSV applies one restock per CSV row.
	ProcessIncomingCSV(ctx context.Context, data []byte) (*dto.UploadResponse, error)
}

type inventoryService struct {
	items    repository.ItemRepository
	orders   repository.OrderRepository
	notifier Notifier
}

func NewInventoryService(items repository.ItemRepository, orders repository.OrderRepository, notifier Notifier) InventoryService {
	return &inventoryService{items: items, orders: orders, notifier: notifier}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *inventoryService) RecordOutgoing(ctx context.Context, req dto.CreateOrderRequest) (*dto.ItemResponse, error) {
	// Pre-flight checks give callers precise errors without opening a tx.
	item, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, ErrItemNotFound
	}
	if item.CurrentStock < req.Quantity {
		return nil, ErrInsufficientStock
	}

	// Atomic unit: the stock decrement and the order record commit together or
	// neither does. The guarded decrement re-checks stock inside the tx, so a
	// concurrent sale of the same item cannot drive stock negative.
	txErr := runTx(ctx, s.items.DB(), func(tx *gorm.DB) error {
		if err := s.items.DecrementStockTx(tx, req.ItemID, req.Quantity); err != nil {
			if errors.Is(err, repository.ErrStockConflict) {
				return ErrInsufficientStock
			}
			return err
		}
		order := &model.Order{
			ItemID:   req.ItemID,
			Quantity: req.Quantity,
			Date:     time.Now().UTC(),
		}
		return s.orders.CreateTx(tx, order)
	})
	if txErr != nil {
		return nil, txErr
	}

	// Re-read post-commit: the alert decision uses the post-mutation value.
	updated, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	// Alert dispatch is decoupled from the transaction - enqueued after commit,
	// fire-and-forget. Its outcome has zero effect on the mutation's result.
	if updated.CurrentStock < lowStockThreshold && s.notifier != nil {
		s.notifier.NotifyCriticalItem(ctx, updated.Name, updated.CurrentStock)
	}

	return itemToResponse(updated), nil
}

func (s *inventoryService) RecordIncoming(ctx context.Context, req dto.RestockRequest) (*dto.ItemResponse, error) {
	if _, err := s.items.FindByID(ctx, req.ItemID); err != nil {
		return nil, ErrItemNotFound
	}

	// Restocks increment stock only: no order record (they are excluded from
	// burn-rate history) and never an alert.
	txErr := runTx(ctx, s.items.DB(), func(tx *gorm.DB) error {
		return s.items.IncrementStockTx(tx, req.ItemID, req.Quantity)
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, txErr
	}

	updated, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	return itemToResponse(updated), nil
}

// ── Batch uploads ─────────────────────────────────────────────────────────────

func (s *inventoryService) ProcessOutgoingCSV(ctx context.Context, data []byte) (*dto.UploadResponse, error) {
	rows, err := parseMovementRows(data)
	if err != nil {
		return nil, err
	}

	resp := &dto.UploadResponse{Status: "Complete", Errors: []string{}}
	for _, r := range rows {
		if r.err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("Row %d Error: %v", r.index, r.err))
			continue
		}
		_, err := s.RecordOutgoing(ctx, dto.CreateOrderRequest{ItemID: r.row.ItemID, Quantity: r.row.Quantity})
		switch {
		case errors.Is(err, ErrItemNotFound):
			resp.Errors = append(resp.Errors, fmt.Sprintf("Row %d: Item %d not found", r.index, r.row.ItemID))
		case err != nil:
			resp.Errors = append(resp.Errors, fmt.Sprintf("Row %d Error: %v", r.index, err))
		default:
			resp.Processed++
		}
	}
	return resp, nil
}

func (s *inventoryService) ProcessIncomingCSV(ctx context.Context, data []byte) (*dto.UploadResponse, error) {
	rows, err := parseMovementRows(data)
	if err != nil {
		return nil, err
	}

	resp := &dto.UploadResponse{Status: "Complete", Errors: []string{}}
	for _, r := range rows {
		if r.err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("Row %d Error: %v", r.index, r.err))
			continue
		}
		_, err := s.RecordIncoming(ctx, dto.RestockRequest{ItemID: r.row.ItemID, Quantity: r.row.Quantity})
		switch {
		case errors.Is(err, ErrItemNotFound):
			resp.Errors = append(resp.Errors, fmt.Sprintf("Row %d: Item %d not found", r.index, r.row.ItemID))
		case err != nil:
			resp.Errors = append(resp.Errors, fmt.Sprintf("Row %d Error: %v", r.index, err))
		default:
			resp.Processed++
		}
	}
	if len(resp.Errors) > 0 {
		log.Warn().Int("processed", resp.Processed).Int("errors", len(resp.Errors)).
			Msg("incoming CSV finished with row errors")
	}
	return resp, nil
}
