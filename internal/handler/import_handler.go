package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"fatura-web/internal/config"
	"fatura-web/internal/importer"
	"fatura-web/internal/models"
	"fatura-web/internal/repository"
	"fatura-web/internal/service"
	"fatura-web/internal/utils"
	"fatura-web/internal/worker"
)

type ImportHandler struct {
	sessionRepo   *repository.ImportSessionRepository
	importService *service.ImportService
	asynqClient   *asynq.Client
	redis         *redis.Client
	cfg           *config.Config
}

func NewImportHandler(
	sessionRepo *repository.ImportSessionRepository,
	importService *service.ImportService,
	asynqClient *asynq.Client,
	redis *redis.Client,
	cfg *config.Config,
) *ImportHandler {
	return &ImportHandler{
		sessionRepo:   sessionRepo,
		importService: importService,
		asynqClient:   asynqClient,
		redis:         redis,
		cfg:           cfg,
	}
}

// UploadFile accepts a CSV or Excel file for one import kind, records the
// session and queues it for background processing.
func (h *ImportHandler) UploadFile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int)
	tenantID := c.Locals("tenant_id").(string)

	kind := c.Params("kind")
	if !service.ImportKinds[kind] {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown import kind", nil)
	}

	lang := c.Query("lang", "tr")
	if lang != "tr" && lang != "en" {
		lang = "tr"
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "File is required", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".csv" && ext != ".xlsx" && ext != ".xls" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only CSV and Excel files are allowed", nil)
	}
	if file.Size > int64(h.cfg.UploadMaxSize) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "File size exceeds maximum limit", nil)
	}

	sessionCode := fmt.Sprintf("IMP-%s", uuid.New().String()[:8])
	filename := fmt.Sprintf("%s_%d%s", sessionCode, time.Now().Unix(), ext)
	filePath := filepath.Join(h.cfg.UploadPath, filename)

	if err := os.MkdirAll(h.cfg.UploadPath, 0o755); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to prepare upload directory", err)
	}
	if err := c.SaveFile(file, filePath); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save file", err)
	}

	// Structural problems (missing header, broken workbook) surface to the
	// uploader immediately instead of failing later in the worker.
	data, err := os.ReadFile(filePath)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to read file", err)
	}
	totalRows, err := h.importService.CountRows(file.Filename, data)
	if err != nil {
		os.Remove(filePath)
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "File could not be parsed", err)
	}

	session := &models.ImportSession{
		SessionCode: sessionCode,
		TenantID:    tenantID,
		UserID:      userID,
		Kind:        kind,
		Language:    lang,
		Filename:    file.Filename,
		FilePath:    filePath,
		TotalRows:   totalRows,
		Status:      models.ImportStatusUploaded,
	}
	if err := h.sessionRepo.Create(session); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create session", err)
	}

	payload, _ := json.Marshal(worker.ImportTaskPayload{
		SessionID:   session.ID,
		SessionCode: session.SessionCode,
	})
	task := asynq.NewTask(worker.TaskImportProcess, payload)
	if _, err := h.asynqClient.Enqueue(task); err != nil {
		h.sessionRepo.UpdateStatus(session.ID, models.ImportStatusFailed, "failed to queue processing task")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to queue processing", err)
	}

	return utils.SuccessResponse(c, "File uploaded", fiber.Map{
		"session_code": session.SessionCode,
		"total_rows":   session.TotalRows,
		"status":       session.Status,
	})
}

func (h *ImportHandler) GetSessions(c *fiber.Ctx) error {
	tenantID := c.Locals("tenant_id").(string)
	params := utils.GetPaginationParams(c)
	offset := (params.Page - 1) * params.Limit

	sessions, total, err := h.sessionRepo.GetSessions(tenantID, params.Limit, offset)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load sessions", err)
	}
	return c.JSON(utils.PaginatedResponse{
		Success:    true,
		Message:    "Sessions retrieved successfully",
		Data:       sessions,
		Pagination: utils.CalculatePagination(params.Page, params.Limit, int64(total)),
	})
}

func (h *ImportHandler) GetSessionDetail(c *fiber.Ctx) error {
	tenantID := c.Locals("tenant_id").(string)

	session, err := h.sessionRepo.GetByCode(tenantID, c.Params("code"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Session not found", err)
	}

	var report *importer.Report
	if session.ReportJSON != "" {
		report = &importer.Report{}
		if err := json.Unmarshal([]byte(session.ReportJSON), report); err != nil {
			report = nil
		}
	}
	return utils.SuccessResponse(c, "Session retrieved successfully", fiber.Map{
		"session": session,
		"report":  report,
	})
}

// GetProgress reports the percentage the worker publishes to Redis while a
// session runs.
func (h *ImportHandler) GetProgress(c *fiber.Ctx) error {
	tenantID := c.Locals("tenant_id").(string)

	session, err := h.sessionRepo.GetByCode(tenantID, c.Params("code"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Session not found", err)
	}

	progress := "0"
	if session.Status == models.ImportStatusCompleted {
		progress = "100"
	} else {
		key := worker.ProgressKey(session.ID)
		if v, err := h.redis.Get(c.Context(), key).Result(); err == nil {
			progress = v
		}
	}
	return utils.SuccessResponse(c, "Progress retrieved", fiber.Map{
		"session_code": session.SessionCode,
		"status":       session.Status,
		"progress":     progress,
	})
}

// DownloadReport streams the session report as CSV in the language the file
// was uploaded with.
func (h *ImportHandler) DownloadReport(c *fiber.Ctx) error {
	tenantID := c.Locals("tenant_id").(string)

	session, err := h.sessionRepo.GetByCode(tenantID, c.Params("code"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Session not found", err)
	}
	if session.ReportJSON == "" {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Report not ready", nil)
	}

	var report importer.Report
	if err := json.Unmarshal([]byte(session.ReportJSON), &report); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to decode report", err)
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, session.Language); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to render report", err)
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_report.csv"`, session.SessionCode))
	return c.Send(buf.Bytes())
}

// CancelSession stops a queued or running import. The worker checks the
// status between chunks, so already persisted chunks stay.
func (h *ImportHandler) CancelSession(c *fiber.Ctx) error {
	tenantID := c.Locals("tenant_id").(string)

	session, err := h.sessionRepo.GetByCode(tenantID, c.Params("code"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Session not found", err)
	}
	if session.Status != models.ImportStatusUploaded && session.Status != models.ImportStatusProcessing {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("Session is already %s", session.Status), nil)
	}
	if err := h.sessionRepo.UpdateStatus(session.ID, models.ImportStatusCanceled, ""); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to cancel session", err)
	}
	return utils.SuccessResponse(c, "Session canceled", nil)
}

// ExportSessions downloads the session history as an Excel workbook.
func (h *ImportHandler) ExportSessions(c *fiber.Ctx) error {
	tenantID := c.Locals("tenant_id").(string)

	sessions, _, err := h.sessionRepo.GetSessions(tenantID, 1000, 0)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load sessions", err)
	}
	data, err := service.ExportSessionsList(sessions)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to render export", err)
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="import_sessions.xlsx"`)
	return c.Send(data)
}
