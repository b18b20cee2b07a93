package api

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/victorhprada/excel-automation/internal/model"
)

type uploadResponse struct {
	Slot     string  `json:"slot"`
	Filename string  `json:"filename"`
	SizeKB   float64 `json:"sizeKB"`
}

// UploadFile receives one workbook for a slot. A new upload replaces the
// previous file and invalidates the table parsed from it.
// POST /api/files/:slot
func (h *Handler) UploadFile(c *gin.Context) {
	slot, ok := model.ParseSlot(c.Param("slot"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Posição de upload desconhecida"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nenhum arquivo enviado"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !slot.Accepts(ext) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Extensão não suportada para %s: use %s",
				slot.Label(), strings.Join(slot.AllowedExtensions(), " ou ")),
		})
		return
	}

	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Arquivo excede o tamanho máximo permitido"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao ler o arquivo enviado"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao ler o arquivo enviado"})
		return
	}

	upload := &model.UploadedFile{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Data:     data,
	}
	h.session(c).SetUpload(slot, upload)

	c.JSON(http.StatusOK, uploadResponse{
		Slot:     string(slot),
		Filename: upload.Filename,
		SizeKB:   upload.SizeKB(),
	})
}
