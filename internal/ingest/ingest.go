// Package ingest loads the five dataset CSV files into their MongoDB collections.
//
// Rows are streamed in fixed-size chunks; each chunk becomes one ordered bulk
// write of upserts keyed by the collection's natural key. There is no retry
// and no checkpoint: a failed bulk write aborts the file's ingest.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/goodbooksapp/goodbooks-server/internal/domain"
)

// Dataset maps a CSV file to its target collection and natural key.
type Dataset struct {
	File       string
	Collection string
	Keys       []string
}

// Datasets lists the five fixed dataset files in load order.
var Datasets = []Dataset{
	{File: "books.csv", Collection: domain.CollectionBooks, Keys: []string{"book_id"}},
	{File: "ratings.csv", Collection: domain.CollectionRatings, Keys: []string{"user_id", "book_id"}},
	{File: "tags.csv", Collection: domain.CollectionTags, Keys: []string{"tag_id"}},
	{File: "book_tags.csv", Collection: domain.CollectionBookTags, Keys: []string{"goodreads_book_id", "tag_id"}},
	{File: "to_read.csv", Collection: domain.CollectionToRead, Keys: []string{"user_id", "book_id"}},
}

// BulkWriter is the store surface the loader depends on.
type BulkWriter interface {
	BulkUpsert(ctx context.Context, collection string, models []mongo.WriteModel) (upserted, modified int64, err error)
}

// Loader streams CSV files into the store in chunks.
type Loader struct {
	store     BulkWriter
	dataDir   string
	chunkSize int
	logger    *slog.Logger
}

// NewLoader creates a loader reading from dataDir with the given chunk size.
func NewLoader(store BulkWriter, dataDir string, chunkSize int, logger *slog.Logger) *Loader {
	return &Loader{
		store:     store,
		dataDir:   dataDir,
		chunkSize: chunkSize,
		logger:    logger,
	}
}

// LoadAll ingests all five datasets in order. The first failure aborts the run.
func (l *Loader) LoadAll(ctx context.Context) error {
	for _, ds := range Datasets {
		if err := l.LoadDataset(ctx, ds); err != nil {
			return fmt.Errorf("ingest of %s failed: %w", ds.File, err)
		}
	}
	return nil
}

// LoadDataset streams one CSV file into its collection.
func (l *Loader) LoadDataset(ctx context.Context, ds Dataset) error {
	path := filepath.Join(l.dataDir, ds.File)
	l.logger.Info("Loading dataset", "file", ds.File, "collection", ds.Collection)

	file, err := os.Open(path) //#nosec G304 -- Data directory comes from configuration
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	start := time.Now()
	var total int64
	models := make([]mongo.WriteModel, 0, l.chunkSize)

	flush := func() error {
		upserted, modified, err := l.store.BulkUpsert(ctx, ds.Collection, models)
		if err != nil {
			return err
		}
		total += upserted + modified
		l.logger.Debug("Chunk written", "collection", ds.Collection, "rows", len(models), "total", total)
		models = models[:0]
		return nil
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read row: %w", err)
		}

		doc := rowToDocument(header, record)
		filter, err := keyFilter(doc, ds.Keys)
		if err != nil {
			return err
		}

		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(filter).
			SetUpdate(bson.M{"$set": doc}).
			SetUpsert(true))

		if len(models) >= l.chunkSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	if len(models) > 0 {
		if err := flush(); err != nil {
			return err
		}
	}

	l.logger.Info("Finished dataset",
		"collection", ds.Collection,
		"upserted", total,
		"duration", time.Since(start),
	)

	return nil
}

// rowToDocument maps one CSV row to a document using the file header as
// field names. Missing values are normalized to null.
func rowToDocument(header, record []string) bson.M {
	doc := make(bson.M, len(header))
	for i, field := range header {
		if i >= len(record) {
			doc[field] = nil
			continue
		}
		doc[field] = convertValue(record[i])
	}
	return doc
}

// convertValue infers the value type of a CSV cell: empty cells become null,
// numeric cells become int64 or float64, everything else stays a string.
func convertValue(raw string) any {
	if raw == "" {
		return nil
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// keyFilter extracts the natural-key fields of a document into the upsert
// filter. Every key column must be present in the CSV.
func keyFilter(doc bson.M, keys []string) (bson.M, error) {
	filter := make(bson.M, len(keys))
	for _, key := range keys {
		value, ok := doc[key]
		if !ok {
			return nil, fmt.Errorf("missing key column %q", key)
		}
		filter[key] = value
	}
	return filter, nil
}
