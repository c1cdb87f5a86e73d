package handler

import (
	"go-agroprod-ws/internal/model"
	"go-agroprod-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PrestationHandler struct {
	service service.PrestationService
}

func NewPrestationHandler(s service.PrestationService) *PrestationHandler {
	return &PrestationHandler{service: s}
}

func (h *PrestationHandler) CreateProd(c *fiber.Ctx) error {
	var record model.PrestationProdRecord
	if err := c.BodyParser(&record); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateProd(&record, getUserID(c), getUserName(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Prestation recorded", "data": record})
}

func (h *PrestationHandler) GetAllProd(c *fiber.Ctx) error {
	records, err := h.service.GetAllProd()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(records)
}

func (h *PrestationHandler) UpdateProd(c *fiber.Ctx) error {
	recordID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid record ID"})
	}

	var req service.PrestationProdUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateProd(recordID, &req, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Prestation updated", "data": updated})
}

func (h *PrestationHandler) DeleteProd(c *fiber.Ctx) error {
	recordID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid record ID"})
	}

	if err := h.service.DeleteProd(recordID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Prestation deleted"})
}

func (h *PrestationHandler) CreateEtuvage(c *fiber.Ctx) error {
	var record model.PrestationEtuvageRecord
	if err := c.BodyParser(&record); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateEtuvage(&record, getUserID(c), getUserName(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Prestation recorded", "data": record})
}

func (h *PrestationHandler) GetAllEtuvage(c *fiber.Ctx) error {
	records, err := h.service.GetAllEtuvage()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(records)
}

func (h *PrestationHandler) UpdateEtuvage(c *fiber.Ctx) error {
	recordID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid record ID"})
	}

	var req service.PrestationEtuvageUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateEtuvage(recordID, &req, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Prestation updated", "data": updated})
}

func (h *PrestationHandler) DeleteEtuvage(c *fiber.Ctx) error {
	recordID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid record ID"})
	}

	if err := h.service.DeleteEtuvage(recordID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Prestation deleted"})
}
