package handler

import (
	"errors"

	"go-agroprod-ws/internal/service"
	"go-agroprod-ws/pkg/clients/cloudstore"

	"github.com/gofiber/fiber/v2"
)

type BackupHandler struct {
	service service.BackupService
}

func NewBackupHandler(s service.BackupService) *BackupHandler {
	return &BackupHandler{service: s}
}

// Export streams the whole database as one JSON bundle.
// GET /api/v1/backup/export
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	bundle, err := h.service.Export()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	c.Set("Content-Disposition", `attachment; filename="agroprod-backup.json"`)
	return c.JSON(bundle)
}

// Import replaces every collection with the uploaded bundle.
// POST /api/v1/backup/import
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	var bundle service.BackupBundle
	if err := c.BodyParser(&bundle); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid backup file"})
	}

	if err := h.service.Import(&bundle); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Backup restored"})
}

// CloudSave pushes a fresh export to the configured remote store.
// POST /api/v1/backup/cloud/save
func (h *BackupHandler) CloudSave(c *fiber.Ctx) error {
	exportDate, err := h.service.CloudSave(c.Context())
	if err != nil {
		if errors.Is(err, service.ErrCloudBackupDisabled) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(502).JSON(fiber.Map{"error": "Cloud backup failed"})
	}

	return c.JSON(fiber.Map{"message": "Backup saved to cloud", "export_date": exportDate})
}

// CloudRestore pulls the last cloud bundle and applies it.
// POST /api/v1/backup/cloud/restore
func (h *BackupHandler) CloudRestore(c *fiber.Ctx) error {
	if err := h.service.CloudRestore(c.Context()); err != nil {
		switch {
		case errors.Is(err, service.ErrCloudBackupDisabled):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, cloudstore.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "No cloud backup found"})
		default:
			return c.Status(502).JSON(fiber.Map{"error": "Cloud restore failed"})
		}
	}

	return c.JSON(fiber.Map{"message": "Backup restored from cloud"})
}
