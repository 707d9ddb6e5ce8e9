package ui

import (
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dminhvu/GSD-222/internal/errors"
	"github.com/dminhvu/GSD-222/internal/ledger"
)

// DownloadFileName is the fixed name of the produced CSV artifact.
const DownloadFileName = "redpath_upload.csv"

type indexData struct {
	Error       string
	MaxUploadMB int
	Notes       template.HTML
}

type resultData struct {
	ID               string
	SourceName       string
	Summary          ledger.Summary
	Preview          []ledger.NormalizedRecord
	Truncated        bool
	PreviewRows      int
	DownloadFileName string
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderTemplate(c, http.StatusOK, "index.html", indexData{
		MaxUploadMB: s.config.Upload.MaxUploadMB,
		Notes:       s.notes,
	})
}

// handleUpload normalizes the uploaded export and stores the result for
// preview and download.
func (s *Server) handleUpload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		s.renderUploadError(c, "Select a file to upload.")
		return
	}

	if header.Size > s.config.MaxUploadBytes() {
		s.renderUploadError(c, fmt.Sprintf("File exceeds the %d MB upload limit.", s.config.Upload.MaxUploadMB))
		return
	}

	if err := s.uploads.Acquire(c.Request.Context(), 1); err != nil {
		s.renderUploadError(c, "Upload canceled.")
		return
	}
	defer s.uploads.Release(1)

	file, err := header.Open()
	if err != nil {
		s.renderUploadError(c, "Could not read the uploaded file.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.renderUploadError(c, "Could not read the uploaded file.")
		return
	}

	table, err := ledger.Normalize(data, header.Filename)
	if err != nil {
		log.Printf("[Upload] Rejected %s: %v", header.Filename, err)
		s.renderUploadError(c, errors.UserMessage(err))
		return
	}

	csvBytes, err := table.CSV()
	if err != nil {
		log.Printf("[Upload] Failed to write CSV for %s: %v", header.Filename, err)
		s.renderUploadError(c, "Failed to produce the output file.")
		return
	}

	id := s.store.Put(&ResultEntry{
		SourceName: header.Filename,
		Table:      table,
		CSV:        csvBytes,
		Summary:    ledger.Summarize(table),
	})

	log.Printf("[Upload] Normalized %s into %d records", header.Filename, table.Len())
	c.Redirect(http.StatusSeeOther, "/result/"+id)
}

func (s *Server) renderUploadError(c *gin.Context, message string) {
	s.renderTemplate(c, http.StatusOK, "index.html", indexData{
		Error:       message,
		MaxUploadMB: s.config.Upload.MaxUploadMB,
		Notes:       s.notes,
	})
}

func (s *Server) handleResult(c *gin.Context) {
	id := c.Param("id")
	entry, ok := s.store.Get(id)
	if !ok {
		s.renderTemplate(c, http.StatusNotFound, "notfound.html", gin.H{"ID": id})
		return
	}

	preview := entry.Table.Records
	truncated := false
	if len(preview) > s.config.Results.PreviewRows {
		preview = preview[:s.config.Results.PreviewRows]
		truncated = true
	}

	s.renderTemplate(c, http.StatusOK, "result.html", resultData{
		ID:               entry.ID,
		SourceName:       entry.SourceName,
		Summary:          entry.Summary,
		Preview:          preview,
		Truncated:        truncated,
		PreviewRows:      s.config.Results.PreviewRows,
		DownloadFileName: DownloadFileName,
	})
}

func (s *Server) handleDownload(c *gin.Context) {
	entry, ok := s.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Result not found or expired"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", DownloadFileName))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", entry.CSV)
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"results": s.store.Len(),
	})
}
