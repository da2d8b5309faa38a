package http

import (
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/megamind1212/notesmate-api/internal/util"
)

var (
	swaggerOnce sync.Once
	swaggerJSON []byte
	swaggerErr  error
)

func loadSwaggerSpec() ([]byte, error) {
	swaggerOnce.Do(func() {
		data, err := os.ReadFile(filepath.Join("docs", "swagger.yaml"))
		if err != nil {
			swaggerErr = err
			return
		}
		swaggerJSON, swaggerErr = yaml.YAMLToJSON(data)
	})
	return swaggerJSON, swaggerErr
}

// RegisterSwagger serves the API spec at /swagger/doc.json and the UI at
// /swagger/*. The yaml is converted once and held in memory.
func RegisterSwagger(e *echo.Echo) {
	e.GET("/swagger/doc.json", func(c echo.Context) error {
		spec, err := loadSwaggerSpec()
		if err != nil {
			c.Logger().Errorf("load swagger spec: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to load swagger spec"))
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, spec)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
