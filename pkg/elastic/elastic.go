package elastic

import (
	"context"
	"fmt"

	"github.com/olivere/elastic/v7"
)

// NewClient создает клиент Elasticsearch и проверяет доступность кластера
func NewClient(ctx context.Context, url string) (*elastic.Client, error) {
	client, err := elastic.NewClient(
		elastic.SetURL(url),
		elastic.SetSniff(false),
	)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать клиент elasticsearch: %w", err)
	}

	// Проверяем соединение с кластером
	_, _, err = client.Ping(url).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("не удалось выполнить ping к elasticsearch: %w", err)
	}

	return client, nil
}
