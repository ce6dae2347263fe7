package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/wcmap/toilet-map/internal/auth"
	"github.com/wcmap/toilet-map/internal/config"
	"github.com/wcmap/toilet-map/internal/models"
	"github.com/wcmap/toilet-map/internal/webhook"
	"github.com/wcmap/toilet-map/pkg/geo"
)

// Теги происхождения записи: кто отправил заявку
const (
	SubmittedByAdmin = "admin"
	SubmittedByWeb   = "web"
)

//go:generate mockgen -source=toilet.go -destination=mocks/mock_toilet.go -package=mocks

// ToiletRepository определяет контракт хранилища записей.
// Реализации (postgres, elasticsearch) взаимозаменяемы: одинаковые входы
// дают логически одинаковые результаты.
type ToiletRepository interface {
	// List возвращает записи в порядке создания (новые первыми).
	// При onlyApproved=true отдаются только одобренные записи.
	List(ctx context.Context, onlyApproved bool) ([]*models.Toilet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Toilet, error)
	Create(ctx context.Context, toilet *models.Toilet) error
	Update(ctx context.Context, id uuid.UUID, update models.ToiletUpdate) (*models.Toilet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ToiletCache определяет контракт кэша записей
type ToiletCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Toilet, error)
	Set(ctx context.Context, toilet *models.Toilet) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// ToiletService определяет контракт бизнес-логики каталога туалетов
type ToiletService interface {
	ListToilets(ctx context.Context, sess *auth.Session, query models.NearbyQuery) ([]*models.Toilet, error)
	GetToilet(ctx context.Context, sess *auth.Session, id uuid.UUID) (*models.Toilet, error)
	CreateToilet(ctx context.Context, sess *auth.Session, toilet *models.Toilet) error
	UpdateToilet(ctx context.Context, sess *auth.Session, id uuid.UUID, update models.ToiletUpdate) (*models.Toilet, error)
	DeleteToilet(ctx context.Context, sess *auth.Session, id uuid.UUID) error
}

type toiletService struct {
	repo      ToiletRepository
	cache     ToiletCache
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.Publisher
}

func NewToiletService(repo ToiletRepository, cache ToiletCache, logger *logrus.Logger, cfg *config.Config, publisher webhook.Publisher) ToiletService {
	return &toiletService{
		repo:      repo,
		cache:     cache,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

func isAdmin(sess *auth.Session) bool {
	return sess != nil && sess.IsAdmin
}

// ListToilets возвращает видимые вызывающему записи. Если в запросе заданы
// координаты, записи фильтруются по радиусу и сортируются по расстоянию.
func (s *toiletService) ListToilets(ctx context.Context, sess *auth.Session, query models.NearbyQuery) ([]*models.Toilet, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "toilet",
		"method":  "ListToilets",
		"admin":   isAdmin(sess),
	})
	log.Debug("Listing toilets")

	// Публичные вызовы видят только одобренные записи; хранилище умеет лишь
	// этот грубый предикат, фильтрация по расстоянию всегда на нашей стороне
	toilets, err := s.repo.List(ctx, !isAdmin(sess))
	if err != nil {
		log.WithError(err).Error("Failed to list toilets from repository")
		return nil, fmt.Errorf("service: could not list toilets: %w", err)
	}

	if !query.HasPoint() {
		log.WithField("count", len(toilets)).Debug("Toilets listed without proximity filter")
		return toilets, nil
	}

	// Радиус по умолчанию применяется только при отсутствии параметра:
	// явный radius=0 означает "ровно в точке запроса"
	radius := s.cfg.DefaultRadiusKm
	if query.RadiusKm != nil {
		radius = *query.RadiusKm
	}

	// Линейный проход по всем видимым записям: расстояние до каждой,
	// отсечение по радиусу, устойчивая сортировка по возрастанию
	nearby := make([]*models.Toilet, 0, len(toilets))
	for _, t := range toilets {
		d := geo.DistanceKm(*query.Latitude, *query.Longitude, t.Latitude, t.Longitude)
		if d <= radius {
			t.Distance = &d
			nearby = append(nearby, t)
		}
	}
	sort.SliceStable(nearby, func(i, j int) bool {
		return *nearby[i].Distance < *nearby[j].Distance
	})

	log.WithFields(logrus.Fields{"count": len(nearby), "radius_km": radius}).Debug("Nearby toilets listed")
	return nearby, nil
}

// GetToilet возвращает одну запись, если она существует и видна вызывающему
func (s *toiletService) GetToilet(ctx context.Context, sess *auth.Session, id uuid.UUID) (*models.Toilet, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "toilet",
		"method":    "GetToilet",
		"toilet_id": id,
	})

	toilet, err := s.cache.Get(ctx, id)
	if err != nil {
		// Промах или сбой кэша не фатален, идем в хранилище
		log.WithError(err).Warn("Failed to read toilet from cache")
	}

	if toilet == nil {
		toilet, err = s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrToiletNotFound) {
				return nil, ErrToiletNotFound
			}
			log.WithError(err).Error("Failed to get toilet from repository")
			return nil, fmt.Errorf("service: could not get toilet: %w", err)
		}
		if cacheErr := s.cache.Set(ctx, toilet); cacheErr != nil {
			log.WithError(cacheErr).Warn("Failed to cache toilet")
		}
	}

	// Неодобренная запись для публичного вызова неотличима от отсутствующей
	if !toilet.IsApproved && !isAdmin(sess) {
		return nil, ErrToiletNotFound
	}
	return toilet, nil
}

// CreateToilet создает запись-заявку. isApproved и submittedBy назначаются
// сервером независимо от того, что прислал клиент.
func (s *toiletService) CreateToilet(ctx context.Context, sess *auth.Session, toilet *models.Toilet) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "toilet",
		"method":  "CreateToilet",
		"name":    toilet.Name,
	})
	log.Info("Attempting to create a new toilet")

	toilet.IsApproved = false
	if isAdmin(sess) {
		toilet.SubmittedBy = SubmittedByAdmin
	} else {
		toilet.SubmittedBy = SubmittedByWeb
	}

	if err := s.repo.Create(ctx, toilet); err != nil {
		log.WithError(err).Error("Failed to create toilet in repository")
		return fmt.Errorf("service: could not create toilet: %w", err)
	}

	s.publishEvent(ctx, webhook.EventToiletSubmitted, toilet)
	log.WithField("toilet_id", toilet.ID).Info("Toilet created successfully")
	return nil
}

// UpdateToilet применяет частичное обновление. Требует административную
// сессию до обращения к хранилищу, независимо от бэкенда.
func (s *toiletService) UpdateToilet(ctx context.Context, sess *auth.Session, id uuid.UUID, update models.ToiletUpdate) (*models.Toilet, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "toilet",
		"method":    "UpdateToilet",
		"toilet_id": id,
	})

	if !isAdmin(sess) {
		log.Warn("Update attempted without admin session")
		return nil, ErrForbidden
	}
	if update.IsEmpty() {
		return nil, ErrEmptyUpdate
	}
	log.Info("Attempting to update toilet")

	// Событие одобрения публикуется только на реальном переходе
	// Pending->Approved, повторное одобрение события не порождает
	approving := false
	if update.IsApproved != nil && *update.IsApproved {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrToiletNotFound) {
				log.Warn("Attempted to update a non-existent toilet")
				return nil, ErrToiletNotFound
			}
			log.WithError(err).Error("Failed to get toilet before update")
			return nil, fmt.Errorf("service: could not update toilet: %w", err)
		}
		approving = !current.IsApproved
	}

	toilet, err := s.repo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, ErrToiletNotFound) {
			log.Warn("Attempted to update a non-existent toilet")
			return nil, ErrToiletNotFound
		}
		log.WithError(err).Error("Failed to update toilet in repository")
		return nil, fmt.Errorf("service: could not update toilet: %w", err)
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate toilet cache")
	}

	if approving {
		s.publishEvent(ctx, webhook.EventToiletApproved, toilet)
	}

	log.Info("Toilet updated successfully")
	return toilet, nil
}

// DeleteToilet безвозвратно удаляет запись. Только для администратора.
func (s *toiletService) DeleteToilet(ctx context.Context, sess *auth.Session, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "toilet",
		"method":    "DeleteToilet",
		"toilet_id": id,
	})

	if !isAdmin(sess) {
		log.Warn("Delete attempted without admin session")
		return ErrForbidden
	}
	log.Info("Attempting to delete toilet")

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrToiletNotFound) {
			log.Warn("Attempted to delete a non-existent toilet")
			return ErrToiletNotFound
		}
		log.WithError(err).Error("Failed to delete toilet in repository")
		return fmt.Errorf("service: could not delete toilet: %w", err)
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate toilet cache")
	}

	log.Info("Toilet deleted successfully")
	return nil
}

// publishEvent ставит событие модерации в очередь. Сбой публикации не влияет
// на результат запроса.
func (s *toiletService) publishEvent(ctx context.Context, eventType string, toilet *models.Toilet) {
	event := webhook.Event{
		Type:        eventType,
		ToiletID:    toilet.ID,
		Name:        toilet.Name,
		Latitude:    toilet.Latitude,
		Longitude:   toilet.Longitude,
		SubmittedBy: toilet.SubmittedBy,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("event_type", eventType).Error("Failed to publish webhook event")
	}
}
