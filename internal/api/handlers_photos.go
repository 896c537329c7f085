// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"errors"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"path"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/importer"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/validation"
)

// multipartMemory is held in memory before parts spill to temp files.
const multipartMemory = 32 << 20

// photoFields are the multipart field names accepted for uploads.
var photoFields = []string{"photos[]", "photos"}

// maxScanBodyBytes bounds the JSON body of a scan request.
const maxScanBodyBytes = 64 << 10

// ImportPhotos imports uploaded photos
//
// @Summary Import photos
// @Description Extracts GPS and capture date from each uploaded photo, resolves the place and upserts the location. Photos without GPS or outside from/to are skipped.
// @Tags Photos
// @Accept multipart/form-data
// @Produce json
// @Param photos[] formData file true "Photos"
// @Param from formData string false "Earliest capture date (RFC3339 or YYYY-MM-DD)"
// @Param to formData string false "Latest capture date (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} APIResponse{data=models.ImportSummary}
// @Failure 400 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /photos/import [post]
func (h *Handler) ImportPhotos(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	r.Body = http.MaxBytesReader(w, r.Body, h.config.Import.MaxUploadBytes())
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "Upload exceeds the configured size limit")
			return
		}
		rw.BadRequest("Expected a multipart form with photos[] files")
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to remove multipart temp files")
		}
	}()

	files := uploadedPhotos(r.MultipartForm)
	if len(files) == 0 {
		rw.BadRequest("No photos provided")
		return
	}

	dr, verr, err := parseDateRange(r.FormValue("from"), r.FormValue("to"))
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr != nil {
		writeValidationError(rw, verr)
		return
	}

	sources := make([]importer.Source, len(files))
	for i, fh := range files {
		sources[i] = uploadSource(fh)
	}

	summary, err := h.importer.ImportFiles(r.Context(), sources, importOptions(dr))
	h.writeImportResult(rw, summary, err)
}

// ScanPhotos imports photos from a directory under the photo root
//
// @Summary Scan photo directory
// @Tags Photos
// @Accept json
// @Produce json
// @Param request body scanRequest true "Directory relative to the photo root and optional date range"
// @Success 200 {object} APIResponse{data=models.ImportSummary}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /photos/scan [post]
func (h *Handler) ScanPhotos(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.config.Import.PhotoDir == "" {
		rw.ServiceUnavailable("Directory scanning is disabled: no photo directory configured")
		return
	}

	var req scanRequest
	if r.ContentLength != 0 {
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxScanBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			rw.BadRequest("Invalid JSON body")
			return
		}
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		writeValidationError(rw, verr)
		return
	}

	dr, verr, err := parseDateRange(req.From, req.To)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr != nil {
		writeValidationError(rw, verr)
		return
	}

	dir, err := importer.ResolveScanDir(h.config.Import.PhotoDir, req.Directory)
	if err != nil {
		rw.BadRequest("Directory must be inside the photo root")
		return
	}

	summary, err := h.importer.ScanDirectory(r.Context(), dir, importOptions(dr))
	if errors.Is(err, fs.ErrNotExist) {
		rw.NotFound("Directory not found")
		return
	}
	h.writeImportResult(rw, summary, err)
}

func (h *Handler) writeImportResult(rw *ResponseWriter, summary models.ImportSummary, err error) {
	switch {
	case err == nil:
		rw.Success(summary)
	case errors.Is(err, importer.ErrImportInProgress):
		rw.Conflict("An import is already in progress")
	default:
		logging.Ctx(rw.r.Context()).Error().Err(err).Msg("Import failed")
		rw.InternalError("Import failed")
	}
}

// uploadedPhotos returns the files under the accepted field names in order.
func uploadedPhotos(form *multipart.Form) []*multipart.FileHeader {
	var files []*multipart.FileHeader
	for _, field := range photoFields {
		files = append(files, form.File[field]...)
	}
	return files
}

// uploadSource adapts an uploaded file to an importer source. Uploads carry
// no modification time, so photos without a capture date fall back to now.
func uploadSource(fh *multipart.FileHeader) importer.Source {
	return importer.Source{
		Name: path.Base(fh.Filename),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
