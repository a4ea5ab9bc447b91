package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"fatura-web/internal/config"
	"fatura-web/internal/models"
	"fatura-web/internal/repository"
	"fatura-web/internal/service"
	"fatura-web/internal/utils"
)

type ImportTaskHandler struct {
	redis         *redis.Client
	cfg           *config.Config
	sessionRepo   *repository.ImportSessionRepository
	importService *service.ImportService
}

func NewImportTaskHandler(db *sqlx.DB, redisClient *redis.Client, cfg *config.Config) *ImportTaskHandler {
	importService := service.NewImportService(
		repository.NewCustomerRepository(db),
		repository.NewProjectRepository(db),
		repository.NewAccountRepository(db),
		repository.NewExpenseRepository(db),
		repository.NewPurchaseInvoiceRepository(db),
		repository.NewInvoiceRepository(db),
		cfg.ImportChunkSize,
	)
	return &ImportTaskHandler{
		redis:         redisClient,
		cfg:           cfg,
		sessionRepo:   repository.NewImportSessionRepository(db),
		importService: importService,
	}
}

func (h *ImportTaskHandler) Handle(ctx context.Context, task *asynq.Task) error {
	var payload ImportTaskPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	log := utils.GetLogger().WithFields(logrus.Fields{
		"session_code": payload.SessionCode,
		"session_id":   payload.SessionID,
	})
	log.Info("starting import session")

	session, err := h.sessionRepo.GetByID(payload.SessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	// A session canceled or finished while queued is skipped, not retried.
	switch session.Status {
	case models.ImportStatusCanceled:
		log.Info("session canceled, skipping")
		return nil
	case models.ImportStatusCompleted, models.ImportStatusFailed:
		log.WithField("status", session.Status).Info("session already finished, skipping")
		return nil
	}

	if err := h.sessionRepo.UpdateStatus(session.ID, models.ImportStatusProcessing, ""); err != nil {
		return fmt.Errorf("failed to mark session processing: %w", err)
	}

	// Cancellation requests arrive through the session row; a context
	// cancellation stops the engine between chunks.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	onProgress := func(done, total int) {
		h.sessionRepo.UpdateProgress(session.ID, done, total)
		if total > 0 {
			progress := float64(done) / float64(total) * 100
			h.redis.Set(runCtx, ProgressKey(session.ID), fmt.Sprintf("%.2f", progress), 0)
		}
		if current, err := h.sessionRepo.GetByID(session.ID); err == nil &&
			current.Status == models.ImportStatusCanceled {
			cancel()
		}
	}

	report, err := h.importService.Run(runCtx, session, onProgress)
	if err != nil {
		log.WithError(err).Error("import run failed")
		h.sessionRepo.UpdateStatus(session.ID, models.ImportStatusFailed, err.Error())
		return err
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		h.sessionRepo.UpdateStatus(session.ID, models.ImportStatusFailed, "failed to serialize report")
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	if err := h.sessionRepo.SaveReport(session.ID, string(reportJSON),
		report.SuccessCount(), report.FailureCount(), report.TotalRows()); err != nil {
		log.WithError(err).Error("failed to save report")
	}

	finalStatus := models.ImportStatusCompleted
	if runCtx.Err() != nil {
		finalStatus = models.ImportStatusCanceled
	}
	if err := h.sessionRepo.UpdateStatus(session.ID, finalStatus, ""); err != nil {
		log.WithError(err).Error("failed to update session status")
	}

	log.WithFields(logrus.Fields{
		"processed": report.SuccessCount(),
		"failed":    report.FailureCount(),
		"status":    finalStatus,
	}).Info("import session finished")
	return nil
}
