// Package docs registers the API document with swag so that echo-swagger can
// serve it under /swagger/.
package docs

import (
	"haul/internal/generated/servers"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Haul API",
	Description:      "Food-delivery order management.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  "{}",
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	if doc, err := servers.GetSwagger(); err == nil {
		if raw, marshalErr := doc.MarshalJSON(); marshalErr == nil {
			SwaggerInfo.SwaggerTemplate = string(raw)
		}
	}
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
