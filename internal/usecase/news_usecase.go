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

var ErrNewsNotFound = errors.New("news item not found")

type NewsUsecase interface {
	CreateNews(ctx context.Context, actor Actor, req *dto.CreateNewsRequest) (*dto.NewsResponse, error)
	GetNews(ctx context.Context, newsID uuid.UUID) (*dto.NewsResponse, error)
	ListPublishedNews(ctx context.Context) (*dto.NewsListResponse, error)
	ListAllNews(ctx context.Context) (*dto.NewsListResponse, error)
	UpdateNews(ctx context.Context, actor Actor, newsID uuid.UUID, req *dto.UpdateNewsRequest) (*dto.NewsResponse, error)
	DeleteNews(ctx context.Context, actor Actor, newsID uuid.UUID) error
}

type newsUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	newsRepo      repository.NewsRepository
	adminRoleRepo repository.AdminRoleRepository
	auditService  service.AuditService
}

func NewNewsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	newsRepo repository.NewsRepository,
	adminRoleRepo repository.AdminRoleRepository,
	auditService service.AuditService,
) NewsUsecase {
	return &newsUsecase{
		db:            db,
		log:           log,
		newsRepo:      newsRepo,
		adminRoleRepo: adminRoleRepo,
		auditService:  auditService,
	}
}

func (u *newsUsecase) CreateNews(ctx context.Context, actor Actor, req *dto.CreateNewsRequest) (*dto.NewsResponse, error) {
	if err := u.authorizeNewsScope(ctx, actor, req.MedicalCenterID); err != nil {
		return nil, err
	}

	published := req.IsPublished
	news := &entity.News{
		MedicalCenterID: req.MedicalCenterID,
		Title:           req.Title,
		Body:            req.Body,
		IsPublished:     &published,
	}

	if err := u.newsRepo.Create(u.db.WithContext(ctx), news); err != nil {
		u.log.Warnf("Failed to create news: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(u.db.WithContext(ctx), &actor.UserID, entity.AuditActionNewsCreate,
		"news", news.ID.String(), nil, news)

	return converter.NewsToResponse(news), nil
}

func (u *newsUsecase) GetNews(ctx context.Context, newsID uuid.UUID) (*dto.NewsResponse, error) {
	news, err := u.newsRepo.FindByID(u.db.WithContext(ctx), newsID)
	if err != nil {
		u.log.Warnf("Failed to find news: %+v", err)
		return nil, err
	}
	if news == nil {
		return nil, ErrNewsNotFound
	}

	return converter.NewsToResponse(news), nil
}

func (u *newsUsecase) ListPublishedNews(ctx context.Context) (*dto.NewsListResponse, error) {
	items, err := u.newsRepo.FindPublished(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list published news: %+v", err)
		return nil, err
	}

	return &dto.NewsListResponse{
		News:  converter.NewsItemsToResponses(items),
		Total: len(items),
	}, nil
}

func (u *newsUsecase) ListAllNews(ctx context.Context) (*dto.NewsListResponse, error) {
	items, err := u.newsRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list news: %+v", err)
		return nil, err
	}

	return &dto.NewsListResponse{
		News:  converter.NewsItemsToResponses(items),
		Total: len(items),
	}, nil
}

func (u *newsUsecase) UpdateNews(ctx context.Context, actor Actor, newsID uuid.UUID, req *dto.UpdateNewsRequest) (*dto.NewsResponse, error) {
	news, err := u.findAuthorizedNews(ctx, actor, newsID)
	if err != nil {
		return nil, err
	}

	old := *news

	if req.Title != "" {
		news.Title = req.Title
	}
	if req.Body != "" {
		news.Body = req.Body
	}
	if req.IsPublished != nil {
		news.IsPublished = req.IsPublished
	}

	if err := u.newsRepo.Update(u.db.WithContext(ctx), news); err != nil {
		u.log.Warnf("Failed to update news: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(u.db.WithContext(ctx), &actor.UserID, entity.AuditActionNewsUpdate,
		"news", news.ID.String(), old, news)

	return converter.NewsToResponse(news), nil
}

func (u *newsUsecase) DeleteNews(ctx context.Context, actor Actor, newsID uuid.UUID) error {
	if _, err := u.findAuthorizedNews(ctx, actor, newsID); err != nil {
		return err
	}

	affected, err := u.newsRepo.Delete(u.db.WithContext(ctx), newsID)
	if err != nil {
		u.log.Warnf("Failed to delete news: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrNewsNotFound
	}

	u.auditService.LogAction(u.db.WithContext(ctx), &actor.UserID, entity.AuditActionNewsDelete,
		"news", newsID.String(), nil, nil)

	return nil
}

// authorizeNewsScope: platform-wide items (nil center) are super-admin
// territory; center-scoped items follow the usual center authorization.
func (u *newsUsecase) authorizeNewsScope(ctx context.Context, actor Actor, centerID *uuid.UUID) error {
	if centerID == nil {
		if !actor.IsPlatformAdmin() {
			return ErrCenterForbidden
		}
		return nil
	}
	return authorizeCenter(u.db.WithContext(ctx), u.adminRoleRepo, actor, *centerID)
}

func (u *newsUsecase) findAuthorizedNews(ctx context.Context, actor Actor, newsID uuid.UUID) (*entity.News, error) {
	news, err := u.newsRepo.FindByID(u.db.WithContext(ctx), newsID)
	if err != nil {
		u.log.Warnf("Failed to find news: %+v", err)
		return nil, err
	}
	if news == nil {
		return nil, ErrNewsNotFound
	}

	if err := u.authorizeNewsScope(ctx, actor, news.MedicalCenterID); err != nil {
		return nil, err
	}
	return news, nil
}
