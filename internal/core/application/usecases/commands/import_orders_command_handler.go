package commands

import (
	"context"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/imports"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/services"
)

// ImportOrdersResult summarizes one import run. Errors carries at most
// imports.ErrorPreviewLimit entries; the full log stays on the batch.
type ImportOrdersResult struct {
	BatchID   kernel.UUID
	TotalRows int
	Processed int
	Failed    int
	Status    imports.BatchStatus
	Errors    []imports.RowError
}

// ImportOrdersCommandHandler runs the CSV ingestion cascade: batch record,
// per-row parsing and order creation, batch finalization. A broken row is
// logged against the batch and never aborts the run.
type ImportOrdersCommandHandler struct {
	uowFactory ImportUoWFactory
	parser     *services.ImportParser
}

func NewImportOrdersCommandHandler(uowFactory ImportUoWFactory) ImportOrdersCommandHandler {
	return ImportOrdersCommandHandler{
		uowFactory: uowFactory,
		parser:     services.NewImportParser(),
	}
}

func (h *ImportOrdersCommandHandler) Handle(ctx context.Context, cmd ImportOrdersCommand) (ImportOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return ImportOrdersResult{}, err
	}

	now := time.Now().UTC()
	batch, err := imports.NewBatch(kernel.NewUUID(), cmd.HubID(), cmd.FileName(), cmd.CreatedBy(), now)
	if err != nil {
		return ImportOrdersResult{}, err
	}

	drafts, rowErrors, err := h.parser.Parse(cmd.CSV())
	if err != nil {
		return ImportOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ImportOrdersResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ImportRepository().Add(ctx, batch); err != nil {
		return ImportOrdersResult{}, err
	}

	orderRepo := uow.OrderRepository()
	for _, draft := range drafts {
		aggregate, err := order.NewOrder(
			kernel.NewUUID(),
			cmd.HubID(),
			order.NewOrderNumber(),
			order.SourceCSV,
			draft.Details,
			draft.Payment,
			draft.Priority,
			draft.ScheduledDate,
			draft.DeliverySlot,
			now,
		)
		if err != nil {
			batch.RecordFailure(draft.Row, err.Error())
			continue
		}
		aggregate.MarkImported(batch.ID())

		if err = orderRepo.Add(ctx, aggregate); err != nil {
			batch.RecordFailure(draft.Row, err.Error())
			continue
		}
		batch.RecordSuccess()
	}
	for _, rowErr := range rowErrors {
		batch.RecordFailure(rowErr.Row, rowErr.Message)
	}

	if err = batch.Finalize(time.Now().UTC()); err != nil {
		return ImportOrdersResult{}, err
	}
	if err = uow.ImportRepository().Update(ctx, batch); err != nil {
		return ImportOrdersResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return ImportOrdersResult{}, err
	}

	return ImportOrdersResult{
		BatchID:   batch.ID(),
		TotalRows: batch.TotalRows(),
		Processed: batch.Processed(),
		Failed:    batch.Failed(),
		Status:    batch.Status(),
		Errors:    batch.ErrorPreview(),
	}, nil
}
