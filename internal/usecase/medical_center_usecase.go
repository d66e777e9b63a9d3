package usecase

import (
	"context"
	"errors"

	"github.com/shifacare/medcenter-booking/internal/converter"
	"github.com/shifacare/medcenter-booking/internal/delivery/dto"
	"github.com/shifacare/medcenter-booking/internal/domain/entity"
	"github.com/shifacare/medcenter-booking/internal/domain/repository"
	"github.com/shifacare/medcenter-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrCenterNotFound = errors.New("medical center not found")

type MedicalCenterUsecase interface {
	CreateCenter(ctx context.Context, actor Actor, req *dto.CreateMedicalCenterRequest) (*dto.MedicalCenterResponse, error)
	GetCenter(ctx context.Context, centerID uuid.UUID) (*dto.MedicalCenterResponse, error)
	ListActiveCenters(ctx context.Context) (*dto.MedicalCenterListResponse, error)
	ListAllCenters(ctx context.Context) (*dto.MedicalCenterListResponse, error)
	UpdateCenter(ctx context.Context, actor Actor, centerID uuid.UUID, req *dto.UpdateMedicalCenterRequest) (*dto.MedicalCenterResponse, error)
	DeleteCenter(ctx context.Context, actor Actor, centerID uuid.UUID) error
}

type medicalCenterUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	centerRepo   repository.MedicalCenterRepository
	auditService service.AuditService
}

func NewMedicalCenterUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	centerRepo repository.MedicalCenterRepository,
	auditService service.AuditService,
) MedicalCenterUsecase {
	return &medicalCenterUsecase{
		db:           db,
		log:          log,
		centerRepo:   centerRepo,
		auditService: auditService,
	}
}

func (u *medicalCenterUsecase) CreateCenter(ctx context.Context, actor Actor, req *dto.CreateMedicalCenterRequest) (*dto.MedicalCenterResponse, error) {
	active := true
	center := &entity.MedicalCenter{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		IsActive:    &active,
	}

	if err := u.centerRepo.Create(u.db.WithContext(ctx), center); err != nil {
		u.log.Warnf("Failed to create medical center: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(u.db.WithContext(ctx), &actor.UserID, entity.AuditActionCenterCreate,
		"medical_center", center.ID.String(), nil, center)

	return converter.MedicalCenterToResponse(center), nil
}

func (u *medicalCenterUsecase) GetCenter(ctx context.Context, centerID uuid.UUID) (*dto.MedicalCenterResponse, error) {
	center, err := u.centerRepo.FindByID(u.db.WithContext(ctx), centerID)
	if err != nil {
		u.log.Warnf("Failed to find medical center: %+v", err)
		return nil, err
	}
	if center == nil {
		return nil, ErrCenterNotFound
	}

	return converter.MedicalCenterToResponse(center), nil
}

func (u *medicalCenterUsecase) ListActiveCenters(ctx context.Context) (*dto.MedicalCenterListResponse, error) {
	centers, err := u.centerRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list medical centers: %+v", err)
		return nil, err
	}

	return &dto.MedicalCenterListResponse{
		Centers: converter.MedicalCentersToResponses(centers),
		Total:   len(centers),
	}, nil
}

func (u *medicalCenterUsecase) ListAllCenters(ctx context.Context) (*dto.MedicalCenterListResponse, error) {
	centers, err := u.centerRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list medical centers: %+v", err)
		return nil, err
	}

	return &dto.MedicalCenterListResponse{
		Centers: converter.MedicalCentersToResponses(centers),
		Total:   len(centers),
	}, nil
}

func (u *medicalCenterUsecase) UpdateCenter(ctx context.Context, actor Actor, centerID uuid.UUID, req *dto.UpdateMedicalCenterRequest) (*dto.MedicalCenterResponse, error) {
	center, err := u.centerRepo.FindByID(u.db.WithContext(ctx), centerID)
	if err != nil {
		u.log.Warnf("Failed to find medical center: %+v", err)
		return nil, err
	}
	if center == nil {
		return nil, ErrCenterNotFound
	}

	old := *center

	if req.Name != "" {
		center.Name = req.Name
	}
	if req.Description != "" {
		center.Description = req.Description
	}
	if req.Address != "" {
		center.Address = req.Address
	}
	if req.Phone != "" {
		center.Phone = req.Phone
	}
	if req.IsActive != nil {
		center.IsActive = req.IsActive
	}

	if err := u.centerRepo.Update(u.db.WithContext(ctx), center); err != nil {
		u.log.Warnf("Failed to update medical center: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(u.db.WithContext(ctx), &actor.UserID, entity.AuditActionCenterUpdate,
		"medical_center", center.ID.String(), old, center)

	return converter.MedicalCenterToResponse(center), nil
}

func (u *medicalCenterUsecase) DeleteCenter(ctx context.Context, actor Actor, centerID uuid.UUID) error {
	affected, err := u.centerRepo.Delete(u.db.WithContext(ctx), centerID)
	if err != nil {
		u.log.Warnf("Failed to delete medical center: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrCenterNotFound
	}

	u.auditService.LogAction(u.db.WithContext(ctx), &actor.UserID, entity.AuditActionCenterDelete,
		"medical_center", centerID.String(), nil, nil)

	return nil
}
