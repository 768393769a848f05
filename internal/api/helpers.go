package api

import (
	"fmt"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/oskarbin/pkg/oskar"
)

func writeJSON(c *echo.Context, status int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Blob(status, echo.MIMEApplicationJSON, b)
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg)
}

func writeContainerError(c *echo.Context, msg string) error {
	return writeError(c, http.StatusUnprocessableEntity, "container_error", msg)
}

func writeServerError(c *echo.Context, msg string) error {
	return writeError(c, http.StatusInternalServerError, "server_error", msg)
}

func writeError(c *echo.Context, status int, errType, msg string) error {
	return writeJSON(c, status, map[string]any{
		"error": ErrorBody{Message: msg, Type: errType},
	})
}

func newScanID() string {
	return "scan_" + uuid.NewString()
}

// queryInt parses an optional integer query parameter.
func queryInt(c *echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s: %v", name, err)
	}
	return v, nil
}

func headerInfo(h oskar.FileHeader) HeaderInfo {
	return HeaderInfo{
		Version:      h.Version,
		LittleEndian: h.PayloadsLittleEndian(),
		VoidPtrSize:  h.VoidPtrSize,
		IntSize:      h.IntSize,
		LongSize:     h.LongSize,
		FloatSize:    h.FloatSize,
		DoubleSize:   h.DoubleSize,
		AppVersion:   h.AppVersion,
		HasChecksums: h.HasChecksums(),
	}
}

func recordInfo(r oskar.Record) RecordInfo {
	return RecordInfo{
		Offset:      r.Offset,
		Group:       r.Tag.GroupID,
		Tag:         r.Tag.TagID,
		UserIndex:   r.Tag.UserIndex,
		Type:        r.Tag.TypeString(),
		Complex:     r.Value.Complex,
		Matrix:      r.Value.Matrix,
		PayloadSize: r.Tag.PayloadSize,
		CRC:         r.Tag.UsesCRC32C(),
		Value:       r.Value.Data,
	}
}
