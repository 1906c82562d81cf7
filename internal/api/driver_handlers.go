package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"DriverDesk/internal/constants"
	"DriverDesk/internal/models"
)

// ListDrivers возвращает реестр.
func ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers := depsFrom(r).Service.Drivers()
	writeJSONSuccess(w, "Drivers retrieved", ListResponse{Items: drivers, Total: len(drivers)})
}

// CreateDriver добавляет водителя.
func CreateDriver(w http.ResponseWriter, r *http.Request) {
	var d models.Driver
	if !decodeJSON(w, r, &d) {
		return
	}
	created, err := depsFrom(r).Service.AddDriver(r.Context(), d)
	if err != nil {
		writeServiceError(w, "CreateDriver", err)
		return
	}
	writeJSONSuccess(w, "Driver created", created)
}

// UpdateDriver обновляет водителя; the id comes from the path.
func UpdateDriver(w http.ResponseWriter, r *http.Request) {
	var d models.Driver
	if !decodeJSON(w, r, &d) {
		return
	}
	updated, err := depsFrom(r).Service.UpdateDriver(r.Context(), chi.URLParam(r, "id"), d)
	if err != nil {
		writeServiceError(w, "UpdateDriver", err)
		return
	}
	writeJSONSuccess(w, "Driver updated", updated)
}

// DeleteDriver удаляет водителя из реестра.
func DeleteDriver(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := depsFrom(r).Service.DeleteDriver(r.Context(), id); err != nil {
		writeServiceError(w, "DeleteDriver", err)
		return
	}
	writeJSONSuccess(w, "Driver deleted", map[string]string{"id": id})
}

// ImportDrivers заменяет реестр содержимым CSV-файла: multipart поле "file" или сырое тело.
func ImportDrivers(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var src io.Reader = r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxBodySize); err != nil {
			writeJSONError(w, http.StatusBadRequest, constants.CodeInvalidRequest, "Invalid multipart form")
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, constants.CodeInvalidRequest, "Field 'file' is required")
			return
		}
		defer file.Close()
		log.Infof("ImportDrivers: получен файл %s (%d байт)", header.Filename, header.Size)
		src = file
	}

	res, err := depsFrom(r).Service.ImportRoster(r.Context(), src)
	if err != nil {
		writeServiceError(w, "ImportDrivers", err)
		return
	}
	writeJSONSuccess(w, "Roster imported", ImportResponse{Imported: len(res.Drivers), Skipped: res.Skipped, Rows: res.Rows})
}
