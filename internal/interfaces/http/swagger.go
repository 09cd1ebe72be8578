package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// RegisterSwagger monta la UI de Swagger en /docs si el JSON generado existe.
// El middleware paniquea cuando FilePath no existe, así que sin el archivo
// (p. ej. un build sin correr `swag init`) no se registra nada y la API
// arranca igual.
func RegisterSwagger(app *fiber.App, filePath, title string) {
	if _, err := os.Stat(filePath); err != nil {
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
}
