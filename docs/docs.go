// Package docs registra el documento OpenAPI que sirve /swagger/doc.json.
// Se mantiene a mano a partir de las anotaciones godoc de los handlers; al
// cambiar una anotación hay que actualizar también este documento.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
"paths": {
        "/users/register": {
            "post": {
                "tags": [
                    "users"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/users.tokenResponse"
                        }
                    },
                    "422": {
                        "description": "JSON inválido, validación o email ya usado",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "429": {
                        "description": "demasiados intentos",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                },
                "summary": "Registrar usuario",
                "description": "Crea la cuenta y devuelve un token válido por 7 días. Acepta JSON o form.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "name, email, phone, password, confirmpassword",
                        "schema": {
                            "$ref": "#/definitions/users.credentialsRequest"
                        }
                    }
                ]
            }
        },
        "/users/login": {
            "post": {
                "tags": [
                    "users"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/users.tokenResponse"
                        }
                    },
                    "422": {
                        "description": "Usuário ou Senha inválido!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "429": {
                        "description": "demasiados intentos",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                },
                "summary": "Login",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "email y password",
                        "schema": {
                            "$ref": "#/definitions/users.credentialsRequest"
                        }
                    }
                ]
            }
        },
        "/users/checkuser": {
            "get": {
                "tags": [
                    "users"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/users.userResponse"
                        }
                    },
                    "400": {
                        "description": "Token inválido!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "401": {
                        "description": "Acesso negado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                },
                "summary": "Usuario actual",
                "description": "Devuelve el usuario del token o null si no viene header Authorization.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": false,
                        "description": "Bearer token",
                        "type": "string"
                    }
                ]
            }
        },
        "/users/{id}": {
            "get": {
                "tags": [
                    "users"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/users.userEnvelope"
                        }
                    },
                    "422": {
                        "description": "Usuário não encontrado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                },
                "summary": "Obtener usuario",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del usuario",
                        "type": "string"
                    }
                ]
            }
        },
        "/users/edit/{id}": {
            "patch": {
                "tags": [
                    "users"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Token inválido!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "401": {
                        "description": "Acesso negado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Usuário não encontrado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "422": {
                        "description": "validación, email en uso u otro usuario",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                },
                "summary": "Editar perfil",
                "description": "Solo el propio usuario. Form multipart; image opcional (png/jpg/jpeg).",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": true,
                        "description": "Bearer token",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del usuario",
                        "type": "string"
                    },
                    {
                        "name": "name",
                        "in": "formData",
                        "required": true,
                        "description": "Nombre",
                        "type": "string"
                    },
                    {
                        "name": "phone",
                        "in": "formData",
                        "required": true,
                        "description": "Teléfono",
                        "type": "string"
                    },
                    {
                        "name": "email",
                        "in": "formData",
                        "required": false,
                        "description": "Email",
                        "type": "string"
                    },
                    {
                        "name": "password",
                        "in": "formData",
                        "required": false,
                        "description": "Nueva contraseña",
                        "type": "string"
                    },
                    {
                        "name": "confirmpassword",
                        "in": "formData",
                        "required": false,
                        "description": "Confirmación",
                        "type": "string"
                    },
                    {
                        "name": "image",
                        "in": "formData",
                        "required": false,
                        "description": "Imagen de perfil",
                        "type": "file"
                    }
                ]
            }
        },
        "/pets/create": {
            "post": {
                "tags": [
                    "pets"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/pets.createdResponse"
                        }
                    },
                    "400": {
                        "description": "Token inválido!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "401": {
                        "description": "Acesso negado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "422": {
                        "description": "validación",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                },
                "summary": "Crear mascota",
                "description": "El usuario autenticado queda como dueño. Form multipart con al menos una imagen (png/jpg/jpeg).",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": true,
                        "description": "Bearer token",
                        "type": "string"
                    },
                    {
                        "name": "name",
                        "in": "formData",
                        "required": true,
                        "description": "Nombre",
                        "type": "string"
                    },
                    {
                        "name": "age",
                        "in": "formData",
                        "required": true,
                        "description": "Edad",
                        "type": "integer"
                    },
                    {
                        "name": "weight",
                        "in": "formData",
                        "required": true,
                        "description": "Peso",
                        "type": "number"
                    },
                    {
                        "name": "color",
                        "in": "formData",
                        "required": true,
                        "description": "Color",
                        "type": "string"
                    },
                    {
                        "name": "images",
                        "in": "formData",
                        "required": true,
                        "description": "Imágenes",
                        "type": "file"
                    }
                ]
            }
        },
        "/pets": {
            "get": {
                "tags": [
                    "pets"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.petsEnvelope"
                        }
                    }
                },
                "summary": "Listar mascotas",
                "description": "Todas las mascotas, más recientes primero. Público.",
                "produces": [
                    "application/json"
                ]
            }
        },
        "/pets/mypets": {
            "get": {
                "tags": [
                    "pets"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.petsEnvelope"
                        }
                    },
                    "401": {
                        "description": "Acesso negado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                },
                "summary": "Mis mascotas",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": true,
                        "description": "Bearer token",
                        "type": "string"
                    }
                ]
            }
        },
        "/pets/myadoptions": {
            "get": {
                "tags": [
                    "pets"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.petsEnvelope"
                        }
                    },
                    "401": {
                        "description": "Acesso negado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                },
                "summary": "Mis adopciones",
                "description": "Mascotas donde el usuario autenticado agendó la visita.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": true,
                        "description": "Bearer token",
                        "type": "string"
                    }
                ]
            }
        },
        "/pets/{id}": {
            "get": {
                "tags": [
                    "pets"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.petEnvelope"
                        }
                    },
                    "404": {
                        "description": "Pet não encontrado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "422": {
                        "description": "ID inválido!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                },
                "summary": "Obtener mascota",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID de la mascota",
                        "type": "string"
                    }
                ]
            },
            "delete": {
                "tags": [
                    "pets"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "401": {
                        "description": "Acesso negado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Pet não encontrado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "422": {
                        "description": "ID inválido / no es el dueño",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                },
                "summary": "Eliminar mascota",
                "description": "Solo el dueño.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": true,
                        "description": "Bearer token",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID de la mascota",
                        "type": "string"
                    }
                ]
            },
            "patch": {
                "tags": [
                    "pets"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "401": {
                        "description": "Acesso negado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Pet não encontrado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "422": {
                        "description": "validación / no es el dueño",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                },
                "summary": "Actualizar mascota",
                "description": "Solo el dueño. Reemplaza atributos e imágenes completos.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": true,
                        "description": "Bearer token",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID de la mascota",
                        "type": "string"
                    },
                    {
                        "name": "name",
                        "in": "formData",
                        "required": true,
                        "description": "Nombre",
                        "type": "string"
                    },
                    {
                        "name": "age",
                        "in": "formData",
                        "required": true,
                        "description": "Edad",
                        "type": "integer"
                    },
                    {
                        "name": "weight",
                        "in": "formData",
                        "required": true,
                        "description": "Peso",
                        "type": "number"
                    },
                    {
                        "name": "color",
                        "in": "formData",
                        "required": true,
                        "description": "Color",
                        "type": "string"
                    },
                    {
                        "name": "images",
                        "in": "formData",
                        "required": true,
                        "description": "Imágenes",
                        "type": "file"
                    }
                ]
            }
        },
        "/pets/schedule/{id}": {
            "patch": {
                "tags": [
                    "adoption"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Token inválido!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "401": {
                        "description": "Acesso negado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Pet não encontrado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "422": {
                        "description": "mascota propia / visita ya agendada / ID inválido",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                },
                "summary": "Agendar visita",
                "description": "El usuario autenticado pasa a ser el adoptante. La respuesta incluye nombre y teléfono del dueño.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": true,
                        "description": "Bearer token",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID de la mascota",
                        "type": "string"
                    }
                ]
            }
        },
        "/pets/conclude/{id}": {
            "patch": {
                "tags": [
                    "adoption"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "401": {
                        "description": "Acesso negado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Pet não encontrado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "422": {
                        "description": "no es el dueño / ID inválido",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                },
                "summary": "Concluir adopción",
                "description": "Solo el dueño. Idempotente.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": true,
                        "description": "Bearer token",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID de la mascota",
                        "type": "string"
                    }
                ]
            }
        },
        "/pets/{id}/history": {
            "get": {
                "tags": [
                    "history"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/history.historyEnvelope"
                        }
                    },
                    "400": {
                        "description": "Token inválido!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "401": {
                        "description": "Acesso negado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Pet não encontrado!",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "422": {
                        "description": "ID inválido / no es el dueño",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                },
                "summary": "Historial de una mascota",
                "description": "Solo el dueño. Entradas más recientes primero.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": true,
                        "description": "Bearer token",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID de la mascota",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Máximo de entradas (1-200). Por defecto 50",
                        "type": "integer"
                    },
                    {
                        "name": "types",
                        "in": "query",
                        "required": false,
                        "description": "Lista CSV de tipos (ej: VISIT_SCHEDULED,ADOPTION_CONCLUDED)",
                        "type": "string"
                    }
                ]
            }
        }
    },
    "definitions": {
        "history.entryResponse": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "pet": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "PET_CREATED",
                        "PET_UPDATED",
                        "VISIT_SCHEDULED",
                        "ADOPTION_CONCLUDED"
                    ]
                },
                "actor": {
                    "type": "string"
                },
                "occurredAt": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "history.historyEnvelope": {
            "type": "object",
            "properties": {
                "history": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/history.entryResponse"
                    }
                }
            }
        },
        "pets.createdResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "newPet": {
                    "$ref": "#/definitions/pets.petResponse"
                }
            }
        },
        "pets.petEnvelope": {
            "type": "object",
            "properties": {
                "pet": {
                    "$ref": "#/definitions/pets.petResponse"
                }
            }
        },
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "age": {
                    "type": "integer"
                },
                "weight": {
                    "type": "number"
                },
                "color": {
                    "type": "string"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "avaliable": {
                    "type": "boolean"
                },
                "user": {
                    "type": "string"
                },
                "adopter": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "pets.petsEnvelope": {
            "type": "object",
            "properties": {
                "pets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/pets.petResponse"
                    }
                }
            }
        },
        "respond.MessageBody": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "users.credentialsRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "confirmpassword": {
                    "type": "string"
                }
            }
        },
        "users.tokenResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "token": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                }
            }
        },
        "users.userEnvelope": {
            "type": "object",
            "properties": {
                "user": {
                    "$ref": "#/definitions/users.userResponse"
                }
            }
        },
        "users.userResponse": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Adoption API",
	Description:      "Usuarios, avisos de adopción, visitas e historial de mascotas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
