package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

type ESConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

func newESClient(config ESConfig) (*elasticsearch.TypedClient, error) {
	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}

// LoadFromES pulls up to size documents from an index and maps the named
// source fields into a Frame. JSON numbers become numeric columns,
// strings become categorical; a document missing a field contributes
// zero / empty string for that row.
func LoadFromES(ctx context.Context, config ESConfig, fields []string, size int) (*Frame, error) {
	client, err := newESClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	slog.Info("Loading dataset from Elasticsearch", "index", config.IndexName, "fields", fields, "size", size)

	res, err := client.Search().
		Index(config.IndexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		Size(size).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to execute dataset search: %w", err)
	}

	hits := res.Hits.Hits
	if len(hits) == 0 {
		return nil, fmt.Errorf("index %q returned no documents", config.IndexName)
	}

	docs := make([]map[string]any, len(hits))
	for i, hit := range hits {
		var doc map[string]any
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document source: %w", err)
		}
		docs[i] = doc
	}

	frame := NewFrame(len(docs))
	for _, field := range fields {
		if nums, ok := collectNumericField(docs, field); ok {
			if err := frame.SetNumeric(field, nums); err != nil {
				return nil, err
			}
			continue
		}
		cats := make([]string, len(docs))
		for i, doc := range docs {
			if v, ok := doc[field]; ok {
				cats[i] = fmt.Sprintf("%v", v)
			}
		}
		if err := frame.SetCategorical(field, cats); err != nil {
			return nil, err
		}
	}

	slog.Info("Dataset loaded from Elasticsearch", "rows", len(docs), "columns", len(fields))
	return frame, nil
}

func collectNumericField(docs []map[string]any, field string) ([]float64, bool) {
	nums := make([]float64, len(docs))
	for i, doc := range docs {
		v, ok := doc[field]
		if !ok || v == nil {
			nums[i] = 0
			continue
		}
		n, ok := v.(float64)
		if !ok {
			return nil, false
		}
		nums[i] = n
	}
	return nums, true
}
