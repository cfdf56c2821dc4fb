package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/de-tools/market-atlas/pkg/models/store"
)

const (
	colCountryCode = "country_code"
	colCountryName = "country_name"
	colRegionCode  = "region_code"
	colStatCode    = "stat_code"
	colYear        = "year"
	colValue       = "value"
)

var requiredColumns = []string{colCountryCode, colRegionCode, colYear, colValue}

// FileSource reads one CSV file of statistics. Unless the file carries a
// stat_code column, every row belongs to the statistic named after the file.
type FileSource struct {
	path     string
	statCode string
}

func NewFileSource(path string) *FileSource {
	base := filepath.Base(path)
	return &FileSource{
		path:     path,
		statCode: strings.TrimSuffix(base, filepath.Ext(base)),
	}
}

// DirSources returns one FileSource per *.csv file in dir, sorted by name.
func DirSources(dir string) ([]*FileSource, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("list csv files: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no csv files found in %s", dir)
	}
	sort.Strings(matches)

	sources := make([]*FileSource, 0, len(matches))
	for _, m := range matches {
		sources = append(sources, NewFileSource(m))
	}
	return sources, nil
}

func (s *FileSource) Name() string {
	return filepath.Base(s.path)
}

func (s *FileSource) Records(ctx context.Context) ([]store.StatisticRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	return s.parse(ctx, f)
}

func (s *FileSource) parse(ctx context.Context, r io.Reader) ([]store.StatisticRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", s.Name(), err)
	}

	columns := make(map[string]int, len(headers))
	for i, h := range headers {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		columns[strings.ReplaceAll(key, " ", "_")] = i
	}
	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", s.Name(), col)
		}
	}

	records := make([]store.StatisticRecord, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name(), err)
		}
		line, _ := reader.FieldPos(0)

		field := func(col string) string {
			i, ok := columns[col]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		rawValue := field(colValue)
		if rawValue == "" {
			continue
		}

		year, err := strconv.Atoi(field(colYear))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid year %q", s.Name(), line, field(colYear))
		}
		value, err := strconv.ParseFloat(strings.ReplaceAll(rawValue, ",", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid value %q", s.Name(), line, rawValue)
		}

		statCode := field(colStatCode)
		if statCode == "" {
			statCode = s.statCode
		}

		records = append(records, store.StatisticRecord{
			CountryCode: field(colCountryCode),
			CountryName: field(colCountryName),
			RegionCode:  field(colRegionCode),
			StatCode:    statCode,
			Year:        year,
			Value:       value,
		})
	}

	return records, nil
}
