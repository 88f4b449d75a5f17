// Package batch turns CSV files into the record lists sent by bulk actions.
package batch

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ffoerster/ee-ark/client/internal/types"
)

// LoadFile reads the whole CSV file at path. Open and parse failures are
// returned unwrapped.
func LoadFile(path string) ([]types.BatchRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	records, err := Read(f)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("records", len(records)).Msg("csv loaded")
	return records, nil
}

// Read decodes a header-driven table. The first line names the columns and
// every following line becomes one record in file order.
//
// A leading UTF-8 byte order mark is dropped. Rows shorter than the header
// omit the missing trailing columns; cells past the last header are ignored.
// An input with no header yields an empty, non-nil slice.
func Read(r io.Reader) ([]types.BatchRecord, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1

	records := []types.BatchRecord{}
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return records, nil
	}
	if err != nil {
		return nil, err
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		rec := make(types.BatchRecord, len(header))
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			rec[header[i]] = cell
		}
		records = append(records, rec)
	}
}
