package admin

import (
	"fmt"
	"net/http"
	"strconv"

	"freshcart/internal/domain"
	"freshcart/internal/handler"
	"freshcart/internal/service"
)

// ReportHandler handles the back-office medical report catalog routes,
// including the CSV bulk import and its downloadable template.
type ReportHandler struct {
	admin *service.AdminService
}

func NewReportHandler(admin *service.AdminService) *ReportHandler {
	return &ReportHandler{admin: admin}
}

// List handles GET /admin/reports
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	payload, err := h.admin.ListReports(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Raw(w, http.StatusOK, payload)
}

// Create handles POST /admin/reports
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	payload, err := h.admin.CreateReport(r.Context(), body)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Raw(w, http.StatusCreated, payload)
}

// Update handles PUT /admin/reports/{id}
func (h *ReportHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("admin.updateReport", "Invalid report id"))
		return
	}

	body, err := readBody(r)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	payload, err := h.admin.UpdateReport(r.Context(), id, body)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Raw(w, http.StatusOK, payload)
}

// Delete handles DELETE /admin/reports/{id}
func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("admin.deleteReport", "Invalid report id"))
		return
	}

	if err := h.admin.DeleteReport(r.Context(), id); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Import handles POST /admin/reports/import with a multipart "file" part.
func (h *ReportHandler) Import(w http.ResponseWriter, r *http.Request) {
	const op = "admin.importReports"

	file, header, err := r.FormFile("file")
	if err != nil {
		handler.ErrorResponse(w, r, domain.Invalid(op, "A report file is required"))
		return
	}
	defer file.Close()

	payload, err := h.admin.ImportReports(r.Context(), header.Filename, file)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Raw(w, http.StatusOK, payload)
}

// Template handles GET /admin/reports/template, relaying the backend's
// downloadable CSV template.
func (h *ReportHandler) Template(w http.ResponseWriter, r *http.Request) {
	download, err := h.admin.ReportTemplate(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", download.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(download.Body)
}
