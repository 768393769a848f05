// Package api exposes a read-only HTTP view over one OSKAR binary file.
package api

import (
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/oskarbin/internal/logger"
	"github.com/samcharles93/oskarbin/pkg/oskar"
)

// Server serves the header and decoded records of a single container.
// Scans are forward-only and not restartable, so every request opens a
// fresh scanner and releases it when the response is built.
type Server struct {
	path string
	log  logger.Logger
}

func NewServer(path string, log logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	return &Server{path: path, log: log}
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/healthz", s.handleHealth)
	e.GET("/v1/header", s.handleHeader)
	e.GET("/v1/records", s.handleRecords)
	e.GET("/v1/verify", s.handleVerify)
}

func (s *Server) handleHealth(c *echo.Context) error {
	return writeJSON(c, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHeader(c *echo.Context) error {
	sc, err := oskar.Open(s.path)
	if err != nil {
		return writeServerError(c, err.Error())
	}
	defer func() { _ = sc.Close() }()

	return writeJSON(c, http.StatusOK, HeaderResponse{
		ScanID: newScanID(),
		File:   s.path,
		Header: headerInfo(sc.Header()),
	})
}

func (s *Server) handleRecords(c *echo.Context) error {
	limit, err := queryInt(c, "limit", 100)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	group, err := queryInt(c, "group", -1)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	tagID, err := queryInt(c, "tag", -1)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	sc, err := oskar.Open(s.path)
	if err != nil {
		return writeServerError(c, err.Error())
	}
	defer func() { _ = sc.Close() }()

	resp := RecordsResponse{
		ScanID:  newScanID(),
		File:    s.path,
		Records: []RecordInfo{},
	}
	for sc.Next() {
		rec := sc.Record()
		if group >= 0 && int(rec.Tag.GroupID) != group {
			continue
		}
		if tagID >= 0 && int(rec.Tag.TagID) != tagID {
			continue
		}
		if limit > 0 && len(resp.Records) >= limit {
			resp.More = true
			break
		}
		resp.Records = append(resp.Records, recordInfo(rec))
	}
	if err := sc.Err(); err != nil {
		s.log.Error("scan failed", "file", s.path, "err", err)
		return writeContainerError(c, err.Error())
	}

	resp.Count = len(resp.Records)
	return writeJSON(c, http.StatusOK, resp)
}

func (s *Server) handleVerify(c *echo.Context) error {
	sc, err := oskar.Open(s.path)
	if err != nil {
		return writeServerError(c, err.Error())
	}
	defer func() { _ = sc.Close() }()

	resp := VerifyResponse{ScanID: newScanID(), File: s.path, OK: true}
	for sc.Next() {
		resp.Records++
		if sc.Record().Tag.UsesCRC32C() {
			resp.Checked++
		}
	}
	if err := sc.Err(); err != nil {
		resp.OK = false
		resp.Error = err.Error()
		s.log.Warn("verify failed", "file", s.path, "err", err)
	}
	return writeJSON(c, http.StatusOK, resp)
}
