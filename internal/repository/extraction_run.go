package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kahawa-labs/beanmarket/constants"
	"github.com/kahawa-labs/beanmarket/gen/ent"
	"github.com/kahawa-labs/beanmarket/internal/pipeline"
)

// RunOutcome carries everything persisted when a run finishes.
type RunOutcome struct {
	Summary          *pipeline.Summary
	Status           constants.RunStatus
	ListingsInserted int
	ModelName        string
	ModelParams      map[string]any
}

type ExtractionRunRepository interface {
	Start(ctx context.Context, supplierID *uuid.UUID, locale string, textBytes int) (*ent.ExtractionRun, error)
	Finish(ctx context.Context, runID uuid.UUID, out RunOutcome) error
	FinishFailure(ctx context.Context, runID uuid.UUID, errorCode, message string) error
}

type extractionRunRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractionRunRepository(entc *ent.Client, log *slog.Logger) ExtractionRunRepository {
	return &extractionRunRepo{ent: entc, log: log}
}

func (r *extractionRunRepo) Start(ctx context.Context, supplierID *uuid.UUID, locale string, textBytes int) (*ent.ExtractionRun, error) {
	b := r.ent.ExtractionRun.
		Create().
		SetStatus(string(constants.RunStatusRunning)).
		SetTextBytes(textBytes)
	if supplierID != nil {
		b = b.SetSupplierID(*supplierID)
	}
	if locale != "" {
		b = b.SetLocale(locale)
	}

	run, err := b.Save(ctx)
	if err != nil {
		r.log.Error("extraction_run start failed", "err", err)
		return nil, err
	}
	r.log.Info("extraction_run started", "run_id", run.ID, "text_bytes", textBytes)
	return run, nil
}

func (r *extractionRunRepo) Finish(ctx context.Context, runID uuid.UUID, out RunOutcome) error {
	b := r.ent.ExtractionRun.
		UpdateOneID(runID).
		SetStatus(string(out.Status)).
		SetFinishedAt(time.Now())
	if s := out.Summary; s != nil {
		b = b.
			SetChunksTotal(s.ChunksTotal).
			SetChunksProcessed(s.ChunksProcessed).
			SetChunksFailed(s.ChunksFailed).
			SetDuplicatesSkipped(s.DuplicatesSkipped).
			SetListingsInserted(out.ListingsInserted)
		if s.ErrorCode != "" {
			b = b.SetErrorCode(s.ErrorCode)
		}
	}
	if out.ModelName != "" {
		b = b.SetModelName(out.ModelName)
	}
	if out.ModelParams != nil {
		if p, err := json.Marshal(out.ModelParams); err == nil {
			b = b.SetModelParams(p)
		}
	}

	if _, err := b.Save(ctx); err != nil {
		r.log.Error("extraction_run finish failed", "run_id", runID, "err", err)
		return err
	}
	r.log.Info("extraction_run finished", "run_id", runID, "status", string(out.Status))
	return nil
}

func (r *extractionRunRepo) FinishFailure(ctx context.Context, runID uuid.UUID, errorCode, message string) error {
	_, err := r.ent.ExtractionRun.
		UpdateOneID(runID).
		SetStatus(string(constants.RunStatusFailed)).
		SetErrorCode(errorCode).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction_run finish(FAILED) failed", "run_id", runID, "err", err)
		return err
	}
	r.log.Warn("extraction_run finished (FAILED)", "run_id", runID, "error_code", errorCode, "error", message)
	return nil
}
