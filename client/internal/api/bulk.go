package api

import (
	"context"
	"net/http"

	"github.com/ffoerster/ee-ark/client/internal/batch"
	clienterrors "github.com/ffoerster/ee-ark/client/internal/errors"
	"github.com/ffoerster/ee-ark/client/internal/types"
)

const columnARK = string(types.FieldARK)

// QueryCSV resolves every ARK listed in the csv file. Only the first record
// is checked for an ark column; the registry reports on the rest.
func QueryCSV(ctx context.Context, t types.Transport, req types.ActionRequest) (types.Response, error) {
	const action = "query_csv"
	if err := requireFields(action, req, types.FieldCSV); err != nil {
		return nil, err
	}
	if err := allowOnly(action, req, types.FieldCSV); err != nil {
		return nil, err
	}
	records, err := batch.LoadFile(req.Value(types.FieldCSV))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, clienterrors.MissingColumn(action, columnARK, 0)
	}
	if _, ok := records[0][columnARK]; !ok {
		return nil, clienterrors.MissingColumn(action, columnARK, 1)
	}
	return anonymous(ctx, t, http.MethodPost, pathBulkQuery, records)
}

// UpdateCSV applies one update per csv record. Every record must name its ark.
func UpdateCSV(ctx context.Context, t types.Transport, credential string, req types.ActionRequest) (types.Response, error) {
	const action = "update_csv"
	if err := requireFields(action, req, types.FieldCSV); err != nil {
		return nil, err
	}
	if err := allowOnly(action, req, types.FieldCSV); err != nil {
		return nil, err
	}
	records, err := batch.LoadFile(req.Value(types.FieldCSV))
	if err != nil {
		return nil, err
	}
	for i, rec := range records {
		if _, ok := rec[columnARK]; !ok {
			return nil, clienterrors.MissingColumn(action, columnARK, i+1)
		}
	}
	return authorized(ctx, t, credential, http.MethodPost, pathBulkUpdate, types.BulkUpdateBody{Data: records})
}

// MintCSV mints one ARK per csv record under naan. Records carry no
// identifier, so they are not inspected.
func MintCSV(ctx context.Context, t types.Transport, credential string, req types.ActionRequest) (types.Response, error) {
	const action = "mint_csv"
	if err := requireFields(action, req, types.FieldCSV, types.FieldNAAN); err != nil {
		return nil, err
	}
	if err := allowOnly(action, req, types.FieldCSV, types.FieldNAAN); err != nil {
		return nil, err
	}
	records, err := batch.LoadFile(req.Value(types.FieldCSV))
	if err != nil {
		return nil, err
	}
	return authorized(ctx, t, credential, http.MethodPost, pathBulkMint, types.BulkMintBody{
		Data: records,
		NAAN: req.Value(types.FieldNAAN),
	})
}
