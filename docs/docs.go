// Package docs registra la especificación OpenAPI de la API en swag.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var swaggerJSON string

// SwaggerInfo metadatos de la especificación.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Retail Analytics API",
	Description:      "Reportes financieros de punto de venta.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  swaggerJSON,
	LeftDelim:        "{%",
	RightDelim:       "%}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// JSON documento OpenAPI ya resuelto.
func JSON() ([]byte, error) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return nil, err
	}
	return []byte(doc), nil
}
