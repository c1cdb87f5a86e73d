package handler

import (
	"go-agroprod-ws/internal/model"
	"go-agroprod-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MasterDataHandler struct {
	service service.MasterDataService
}

func NewMasterDataHandler(s service.MasterDataService) *MasterDataHandler {
	return &MasterDataHandler{service: s}
}

type masterDataValueRequest struct {
	Value string `json:"value"`
}

func (h *MasterDataHandler) GetAll(c *fiber.Ctx) error {
	data, err := h.service.GetAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(data)
}

func (h *MasterDataHandler) AddValue(c *fiber.Ctx) error {
	kind := model.MasterDataKind(c.Params("kind"))

	var req masterDataValueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.AddValue(kind, req.Value, getUserName(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Value added"})
}

func (h *MasterDataHandler) RemoveValue(c *fiber.Ctx) error {
	kind := model.MasterDataKind(c.Params("kind"))

	var req masterDataValueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.RemoveValue(kind, req.Value, getUserName(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Value removed"})
}
