package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/fabiandarga/employee-import/internal/csvio"
	"github.com/fabiandarga/employee-import/internal/employee"
	"github.com/fabiandarga/employee-import/internal/logging"
)

// csvRequest is the body of both import endpoints.
type csvRequest struct {
	CSVData string `json:"csv_data"`
}

// validateResponse reports the outcome of a dry-run validation.
type validateResponse struct {
	Accepted   int                  `json:"accepted"`
	Rejected   int                  `json:"rejected"`
	Records    []employee.Record    `json:"records"`
	Rejections []employee.Rejection `json:"rejections"`
}

// insertedRecord is a stored record together with its assigned id.
type insertedRecord struct {
	ID int64 `json:"id"`
	employee.Record
}

// insertResponse reports the outcome of an insert run: what was stored
// (with storage-assigned ids) and what was rejected row by row.
type insertResponse struct {
	ImportID   string               `json:"import_id"`
	Inserted   int                  `json:"inserted"`
	Rejected   int                  `json:"rejected"`
	Records    []insertedRecord     `json:"records"`
	Rejections []employee.Rejection `json:"rejections"`
}

// handleValidate runs the CSV pipeline without touching storage.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	result, ok := s.processCSV(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, validateResponse{
		Accepted:   len(result.Records),
		Rejected:   len(result.Rejections),
		Records:    result.Records,
		Rejections: result.Rejections,
	})
}

// handleInsert validates the CSV and persists every accepted record.
// Rejected rows are reported but never abort the batch; a storage failure
// fails the whole request.
func (s *Server) handleInsert(w http.ResponseWriter, r *http.Request) {
	result, ok := s.processCSV(w, r)
	if !ok {
		return
	}

	importID := uuid.New().String()
	logger := logging.FromContext(r.Context()).With("import_id", importID)

	ids, err := s.store.InsertMany(r.Context(), result.Records)
	if err != nil {
		logger.Error("insert batch failed", "rows", len(result.Records), "error", err)
		writeError(w, r, http.StatusInternalServerError, "storing employees failed")
		return
	}
	s.metrics.RowsInserted.Add(float64(len(ids)))

	records := make([]insertedRecord, len(ids))
	for i, id := range ids {
		records[i] = insertedRecord{ID: id, Record: result.Records[i]}
	}

	logger.Info("import complete",
		"inserted", len(records),
		"rejected", len(result.Rejections),
	)

	writeJSON(w, http.StatusCreated, insertResponse{
		ImportID:   importID,
		Inserted:   len(records),
		Rejected:   len(result.Rejections),
		Records:    records,
		Rejections: result.Rejections,
	})
}

// handleTemplate returns a CSV header template for the employees schema.
func (s *Server) handleTemplate(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.csv"`)
	fmt.Fprintln(w, strings.Join(employee.Columns(), ","))
}

// handleHealth reports liveness and storage reachability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		logging.FromContext(r.Context()).Error("health check failed", "error", err)
		writeError(w, r, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// processCSV decodes the request body and runs the batch pipeline.
// On failure it writes the error response itself and returns ok=false.
func (s *Server) processCSV(w http.ResponseWriter, r *http.Request) (employee.Result, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Import.MaxBodySize)

	var req csvRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return employee.Result{}, false
		}
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return employee.Result{}, false
	}
	if strings.TrimSpace(req.CSVData) == "" {
		writeError(w, r, http.StatusBadRequest, "csv_data is required")
		return employee.Result{}, false
	}

	result, err := employee.Process(req.CSVData)
	if err != nil {
		if errors.Is(err, csvio.ErrEmptyInput) {
			writeError(w, r, http.StatusBadRequest, "csv_data is empty")
			return employee.Result{}, false
		}
		writeError(w, r, http.StatusBadRequest, err.Error())
		return employee.Result{}, false
	}

	s.metrics.RowsAccepted.Add(float64(len(result.Records)))
	s.metrics.RowsRejected.Add(float64(len(result.Rejections)))
	return result, true
}
