package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/olivere/elastic/v7"
	"github.com/wcmap/toilet-map/internal/models"
	"github.com/wcmap/toilet-map/internal/service"
)

// toiletMapping - схема индекса. Координаты хранятся как обычные числа:
// фильтрация по расстоянию выполняется на стороне приложения.
const toiletMapping = `
{
	"mappings": {
		"properties": {
			"name":            {"type": "text"},
			"latitude":        {"type": "double"},
			"longitude":       {"type": "double"},
			"description":     {"type": "text"},
			"isAccessible":    {"type": "boolean"},
			"isFree":          {"type": "boolean"},
			"hasBabyChanging": {"type": "boolean"},
			"isApproved":      {"type": "boolean"},
			"submittedBy":     {"type": "keyword"},
			"createdAt":       {"type": "date"}
		}
	}
}`

// listSize с запасом покрывает весь каталог: пагинации в API нет
const listSize = 10000

// toiletDoc - представление записи в индексе. id живет в _id документа.
type toiletDoc struct {
	Name            string    `json:"name"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Description     string    `json:"description"`
	IsAccessible    bool      `json:"isAccessible"`
	IsFree          bool      `json:"isFree"`
	HasBabyChanging bool      `json:"hasBabyChanging"`
	IsApproved      bool      `json:"isApproved"`
	SubmittedBy     string    `json:"submittedBy"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (d *toiletDoc) toModel(id uuid.UUID) *models.Toilet {
	return &models.Toilet{
		ID:              id,
		Name:            d.Name,
		Latitude:        d.Latitude,
		Longitude:       d.Longitude,
		Description:     d.Description,
		IsAccessible:    d.IsAccessible,
		IsFree:          d.IsFree,
		HasBabyChanging: d.HasBabyChanging,
		IsApproved:      d.IsApproved,
		SubmittedBy:     d.SubmittedBy,
		CreatedAt:       d.CreatedAt,
	}
}

// ElasticToiletRepository - документная реализация хранилища записей.
// Сервер умеет только грубый фильтр по isApproved, остальное - в приложении.
type ElasticToiletRepository struct {
	client *elastic.Client
	index  string
}

// NewElasticToiletRepository создает репозиторий и при необходимости индекс
func NewElasticToiletRepository(ctx context.Context, client *elastic.Client, index string) (service.ToiletRepository, error) {
	exists, err := client.IndexExists(index).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check if index exists: %w", err)
	}
	if !exists {
		createIndex, err := client.CreateIndex(index).BodyString(toiletMapping).Do(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create index: %w", err)
		}
		if !createIndex.Acknowledged {
			return nil, fmt.Errorf("create index %q was not acknowledged", index)
		}
	}

	return &ElasticToiletRepository{
		client: client,
		index:  index,
	}, nil
}

// Create индексирует новую запись. id и created_at назначаются здесь:
// у документного хранилища нет серверных DEFAULT-значений.
func (r *ElasticToiletRepository) Create(ctx context.Context, toilet *models.Toilet) error {
	toilet.ID = uuid.New()
	toilet.CreatedAt = time.Now().UTC()

	doc := toiletDoc{
		Name:            toilet.Name,
		Latitude:        toilet.Latitude,
		Longitude:       toilet.Longitude,
		Description:     toilet.Description,
		IsAccessible:    toilet.IsAccessible,
		IsFree:          toilet.IsFree,
		HasBabyChanging: toilet.HasBabyChanging,
		IsApproved:      toilet.IsApproved,
		SubmittedBy:     toilet.SubmittedBy,
		CreatedAt:       toilet.CreatedAt,
	}

	_, err := r.client.Index().
		Index(r.index).
		Id(toilet.ID.String()).
		BodyJson(doc).
		Refresh("wait_for").
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index toilet: %w", err)
	}
	return nil
}

// GetByID возвращает запись по её UUID
func (r *ElasticToiletRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Toilet, error) {
	res, err := r.client.Get().
		Index(r.index).
		Id(id.String()).
		Do(ctx)
	if err != nil {
		if elastic.IsNotFound(err) {
			return nil, service.ErrToiletNotFound
		}
		return nil, fmt.Errorf("failed to get toilet by id: %w", err)
	}

	doc := &toiletDoc{}
	if err := json.Unmarshal(res.Source, doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal toilet document: %w", err)
	}
	return doc.toModel(id), nil
}

// List возвращает записи в порядке создания, новые первыми.
// При onlyApproved=true используется term-фильтр по isApproved.
func (r *ElasticToiletRepository) List(ctx context.Context, onlyApproved bool) ([]*models.Toilet, error) {
	var query elastic.Query = elastic.NewMatchAllQuery()
	if onlyApproved {
		query = elastic.NewTermQuery("isApproved", true)
	}

	searchResult, err := r.client.Search().
		Index(r.index).
		Query(query).
		Sort("createdAt", false).
		Size(listSize).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list toilets: %w", err)
	}

	toilets := make([]*models.Toilet, 0, len(searchResult.Hits.Hits))
	for _, hit := range searchResult.Hits.Hits {
		id, err := uuid.Parse(hit.Id)
		if err != nil {
			return nil, fmt.Errorf("failed to parse toilet document id %q: %w", hit.Id, err)
		}
		doc := &toiletDoc{}
		if err := json.Unmarshal(hit.Source, doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal toilet document: %w", err)
		}
		toilets = append(toilets, doc.toModel(id))
	}
	return toilets, nil
}

// Update применяет частичное обновление и возвращает обновленную запись
func (r *ElasticToiletRepository) Update(ctx context.Context, id uuid.UUID, update models.ToiletUpdate) (*models.Toilet, error) {
	partial := map[string]interface{}{}
	if update.Name != nil {
		partial["name"] = *update.Name
	}
	if update.Latitude != nil {
		partial["latitude"] = *update.Latitude
	}
	if update.Longitude != nil {
		partial["longitude"] = *update.Longitude
	}
	if update.Description != nil {
		partial["description"] = *update.Description
	}
	if update.IsAccessible != nil {
		partial["isAccessible"] = *update.IsAccessible
	}
	if update.IsFree != nil {
		partial["isFree"] = *update.IsFree
	}
	if update.HasBabyChanging != nil {
		partial["hasBabyChanging"] = *update.HasBabyChanging
	}
	if update.IsApproved != nil {
		partial["isApproved"] = *update.IsApproved
	}

	_, err := r.client.Update().
		Index(r.index).
		Id(id.String()).
		Doc(partial).
		Refresh("wait_for").
		Do(ctx)
	if err != nil {
		if elastic.IsNotFound(err) {
			return nil, service.ErrToiletNotFound
		}
		return nil, fmt.Errorf("failed to update toilet: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Delete безвозвратно удаляет запись
func (r *ElasticToiletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.Delete().
		Index(r.index).
		Id(id.String()).
		Refresh("wait_for").
		Do(ctx)
	if err != nil {
		if elastic.IsNotFound(err) {
			return service.ErrToiletNotFound
		}
		return fmt.Errorf("failed to delete toilet: %w", err)
	}
	return nil
}
