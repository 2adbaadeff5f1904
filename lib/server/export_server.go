package server

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/stratdash/lib/export"
)

func (s *server) initExport(r *gin.Engine) {
	r.GET("/api/export", s.exportCSV)
}

func (s *server) exportCSV(c *gin.Context) {
	var params Filters

	err := c.ShouldBindQuery(&params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := s.compute(&params)
	if err != nil {
		sendError(c, err)
		return
	}

	var buf bytes.Buffer
	err = export.WriteCSV(&buf, export.ToRows(d.result))
	if err != nil {
		sendError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%v"`, export.FileName))
	c.Data(http.StatusOK, export.MimeType, buf.Bytes())
}
