// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hirunaj/pawtrail/internal/adapter"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/models"
)

// searchLimit caps every search variant. It matches the server's own default
// so the no-token search degrades to the same "most recent records" page the
// server would serve anyway.
const searchLimit = 25

type clientSearchService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewClientSearchService constructs a [ClientSearchService].
func NewClientSearchService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSearchService {
	return &clientSearchService{
		adapter: serverAdapter,
		logger:  logger,
	}
}

// Search implements [ClientSearchService]. Matching is exact on the
// lowercased copies the server maintains, so tokens are normalized here and
// never sent as typed.
func (s *clientSearchService) Search(ctx context.Context, collection, name, location string) ([]models.Record, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	location = strings.ToLower(strings.TrimSpace(location))

	variants := searchVariants(collection, name, location)

	results := make([][]models.Record, len(variants))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, query := range variants {
		group.Go(func() error {
			records, err := s.adapter.QueryRecords(groupCtx, query)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	return mergeResults(results), nil
}

// SearchReports implements [ClientSearchService].
func (s *clientSearchService) SearchReports(ctx context.Context, name, location string) ([]models.Record, error) {
	results := make([][]models.Record, len(models.ReportCollections))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, collection := range models.ReportCollections {
		group.Go(func() error {
			records, err := s.Search(groupCtx, collection, name, location)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return mergeResults(results), nil
}

// searchVariants builds the query fan-out for one collection: up to three
// variants — name+location, location only, name only — each issued only when
// its tokens are present. A variant must never run with a missing token: it
// would degrade to an unfiltered most-recent query and pull in records that
// match neither token. Only a search with no tokens at all falls back to the
// single unfiltered "most recent" query.
func searchVariants(collection, name, location string) []models.SearchQuery {
	variants := make([]models.SearchQuery, 0, 3)

	if name != "" && location != "" {
		variants = append(variants, models.SearchQuery{Collection: collection, Name: name, Location: location, Limit: searchLimit})
	}
	if location != "" {
		variants = append(variants, models.SearchQuery{Collection: collection, Location: location, Limit: searchLimit})
	}
	if name != "" {
		variants = append(variants, models.SearchQuery{Collection: collection, Name: name, Limit: searchLimit})
	}

	if len(variants) == 0 {
		variants = append(variants, models.SearchQuery{Collection: collection, Limit: searchLimit})
	}

	return variants
}

// mergeResults flattens the variant results, drops duplicate identifiers, and
// sorts newest first with ID as the tiebreaker.
func mergeResults(results [][]models.Record) []models.Record {
	merged := make([]models.Record, 0)
	seen := make(map[string]struct{})
	for _, records := range results {
		for _, record := range records {
			if _, ok := seen[record.ID]; ok {
				continue
			}
			seen[record.ID] = struct{}{}
			merged = append(merged, record)
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].CreatedAt.After(merged[j].CreatedAt)
		}
		return merged[i].ID < merged[j].ID
	})

	return merged
}
