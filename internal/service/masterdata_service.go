package service

import (
	"errors"
	"strings"

	"go-agroprod-ws/internal/model"
	"go-agroprod-ws/internal/repository"
	"go-agroprod-ws/internal/ws"
)

type MasterDataService interface {
	GetAll() (*model.MasterData, error)
	AddValue(kind model.MasterDataKind, value, actor string) error
	RemoveValue(kind model.MasterDataKind, value, actor string) error
}

type masterDataService struct {
	repo  repository.MasterDataRepository
	wsHub *ws.Hub
}

func NewMasterDataService(repo repository.MasterDataRepository, wsHub *ws.Hub) MasterDataService {
	return &masterDataService{repo: repo, wsHub: wsHub}
}

func (s *masterDataService) GetAll() (*model.MasterData, error) {
	return s.repo.GetAll()
}

func (s *masterDataService) AddValue(kind model.MasterDataKind, value, actor string) error {
	if !model.ValidMasterDataKind(string(kind)) {
		return errors.New("unknown master data kind")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("value is required")
	}

	if err := s.repo.AddValue(kind, value); err != nil {
		return err
	}
	s.notifyChange("add", actor)
	return nil
}

func (s *masterDataService) RemoveValue(kind model.MasterDataKind, value, actor string) error {
	if !model.ValidMasterDataKind(string(kind)) {
		return errors.New("unknown master data kind")
	}

	if err := s.repo.RemoveValue(kind, value); err != nil {
		return err
	}
	s.notifyChange("remove", actor)
	return nil
}

func (s *masterDataService) notifyChange(action, actor string) {
	if s.wsHub == nil {
		return
	}
	go s.wsHub.Publish(map[string]interface{}{
		"type":   "data_changed",
		"scope":  "master_data",
		"action": action,
		"actor":  actor,
	})
}
