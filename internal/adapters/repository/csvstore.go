package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/okian/ranked/internal/domain/model"
)

// Fixed layout of a persisted record: name,rating,deviation,bucket.
const recordFields = 4

// CSVStore implements Store over a headerless CSV file. Records carry no
// meaningful order on disk.
type CSVStore struct {
	path    string
	tempExt string
}

// NewCSVStore creates a store backed by the file at path.
func NewCSVStore(path string, opts ...Option) *CSVStore {
	s := &CSVStore{
		path:    path,
		tempExt: ".new",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Path returns the live file path.
func (s *CSVStore) Path() string {
	return s.path
}

// Load reads every record from the file.
func (s *CSVStore) Load(ctx context.Context) ([]*model.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, s.path, err)
	}
	defer f.Close() //nolint:errcheck // read-only close

	r := csv.NewReader(f)
	r.FieldsPerRecord = recordFields

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, s.path, err)
	}

	items := make([]*model.Item, 0, len(records))
	for i, rec := range records {
		item, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: %s record %d: %v", ErrParse, s.path, i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Save writes a complete fresh copy next to the live file and renames it
// into place, so an interrupted write can never corrupt the store.
func (s *CSVStore) Save(ctx context.Context, items []*model.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp := s.path + s.tempExt
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, tmp, err)
	}

	w := csv.NewWriter(f)
	for _, item := range items {
		if err := w.Write(formatRecord(item)); err != nil {
			f.Close() //nolint:errcheck,gosec // already failing
			return fmt.Errorf("%w: %s: %v", ErrWrite, tmp, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close() //nolint:errcheck,gosec // already failing
		return fmt.Errorf("%w: %s: %v", ErrWrite, tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrReplace, s.path, err)
	}
	return nil
}

// Append adds one record to the end of the live file.
func (s *CSVStore) Append(ctx context.Context, item *model.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOpen, s.path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(formatRecord(item)); err != nil {
		f.Close() //nolint:errcheck,gosec // already failing
		return fmt.Errorf("%w: %s: %v", ErrWrite, s.path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close() //nolint:errcheck,gosec // already failing
		return fmt.Errorf("%w: %s: %v", ErrWrite, s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, s.path, err)
	}
	return nil
}

func parseRecord(rec []string) (*model.Item, error) {
	rating, err := strconv.ParseFloat(rec[1], 64)
	if err != nil {
		return nil, fmt.Errorf("rating %q: %v", rec[1], err)
	}
	deviation, err := strconv.ParseFloat(rec[2], 64)
	if err != nil {
		return nil, fmt.Errorf("deviation %q: %v", rec[2], err)
	}
	bucket, err := strconv.ParseInt(rec[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bucket %q: %v", rec[3], err)
	}
	return &model.Item{
		Name:      rec[0],
		Rating:    rating,
		Deviation: deviation,
		Bucket:    bucket,
	}, nil
}

func formatRecord(item *model.Item) []string {
	return []string{
		item.Name,
		strconv.FormatFloat(item.Rating, 'f', -1, 64),
		strconv.FormatFloat(item.Deviation, 'f', -1, 64),
		strconv.FormatInt(item.Bucket, 10),
	}
}
