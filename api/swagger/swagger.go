package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "Timetable API",
    "description": "Weekly lesson timetables with odd/even weeks, double lessons and one-day hotfixes.",
    "version": "1.0.0"
  },
  "basePath": "/api",
  "schemes": [
    "http",
    "https"
  ],
  "securityDefinitions": {
    "BearerAuth": {
      "type": "apiKey",
      "name": "Authorization",
      "in": "header"
    }
  },
  "tags": [
    {
      "name": "Authentication"
    },
    {
      "name": "Schools"
    },
    {
      "name": "Classes"
    },
    {
      "name": "Subgroups"
    },
    {
      "name": "Teachers"
    },
    {
      "name": "Semesters"
    },
    {
      "name": "Lessons"
    },
    {
      "name": "Hotfixes"
    },
    {
      "name": "Timetable"
    },
    {
      "name": "Metrics"
    }
  ],
  "paths": {
    "/health": {
      "get": {
        "summary": "Health check",
        "responses": {
          "200": {
            "description": "OK"
          },
          "503": {
            "description": "Database unavailable"
          }
        }
      }
    },
    "/auth/login": {
      "post": {
        "tags": [
          "Authentication"
        ],
        "summary": "Authenticate user",
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {
              "$ref": "#/definitions/LoginRequest"
            }
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "400": {
            "description": "Invalid payload",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "401": {
            "description": "Invalid credentials",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/auth/logout": {
      "post": {
        "tags": [
          "Authentication"
        ],
        "summary": "Revoke the current token",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "responses": {
          "204": {
            "description": "Revoked"
          },
          "401": {
            "description": "Unauthorized",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/auth/me": {
      "get": {
        "tags": [
          "Authentication"
        ],
        "summary": "Current caller",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "401": {
            "description": "Unauthorized",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/auth/users": {
      "post": {
        "tags": [
          "Authentication"
        ],
        "summary": "Create user",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {
              "$ref": "#/definitions/RegisterUserRequest"
            }
          }
        ],
        "responses": {
          "201": {
            "description": "Created",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "403": {
            "description": "Forbidden",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "409": {
            "description": "Name taken",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/auth/users/{id}": {
      "delete": {
        "tags": [
          "Authentication"
        ],
        "summary": "Delete user",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "type": "integer",
            "required": true,
            "description": "User ID"
          }
        ],
        "responses": {
          "204": {
            "description": "Deleted"
          },
          "404": {
            "description": "Not found",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/schools": {
      "get": {
        "tags": [
          "Schools"
        ],
        "summary": "List schools",
        "parameters": [],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      },
      "post": {
        "tags": [
          "Schools"
        ],
        "summary": "Create school",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {
              "$ref": "#/definitions/CreateSchoolRequest"
            }
          }
        ],
        "responses": {
          "201": {
            "description": "Created",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "400": {
            "description": "Validation failed",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "401": {
            "description": "Unauthorized",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "403": {
            "description": "Forbidden",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "200": {
            "description": "Already existed",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/schools/{id}": {
      "get": {
        "tags": [
          "Schools"
        ],
        "summary": "Get school",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "type": "integer",
            "required": true,
            "description": "School ID"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "Not found",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      },
      "delete": {
        "tags": [
          "Schools"
        ],
        "summary": "Delete school",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "type": "integer",
            "required": true,
            "description": "School ID"
          }
        ],
        "responses": {
          "204": {
            "description": "Deleted"
          },
          "403": {
            "description": "Forbidden",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "Not found",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/classes": {
      "get": {
        "tags": [
          "Classes"
        ],
        "summary": "List classes",
        "parameters": [
          {
            "name": "school_id",
            "in": "query",
            "type": "integer",
            "required": true
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      },
      "post": {
        "tags": [
          "Classes"
        ],
        "summary": "Create class",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {
              "$ref": "#/definitions/CreateClassRequest"
            }
          }
        ],
        "responses": {
          "201": {
            "description": "Created",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "400": {
            "description": "Validation failed",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "401": {
            "description": "Unauthorized",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "403": {
            "description": "Forbidden",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "200": {
            "description": "Already existed",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/classes/{id}": {
      "get": {
        "tags": [
          "Classes"
        ],
        "summary": "Get class",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "type": "integer",
            "required": true,
            "description": "Class ID"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "Not found",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      },
      "delete": {
        "tags": [
          "Classes"
        ],
        "summary": "Delete class",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "type": "integer",
            "required": true,
            "description": "Class ID"
          }
        ],
        "responses": {
          "204": {
            "description": "Deleted"
          },
          "403": {
            "description": "Forbidden",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "Not found",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/subgroups": {
      "get": {
        "tags": [
          "Subgroups"
        ],
        "summary": "List subgroups",
        "parameters": [
          {
            "name": "class_id",
            "in": "query",
            "type": "integer",
            "required": true
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      },
      "post": {
        "tags": [
          "Subgroups"
        ],
        "summary": "Create subgroup",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {
              "$ref": "#/definitions/CreateSubgroupRequest"
            }
          }
        ],
        "responses": {
          "201": {
            "description": "Created",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "400": {
            "description": "Validation failed",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "401": {
            "description": "Unauthorized",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "403": {
            "description": "Forbidden",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "200": {
            "description": "Already existed",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/subgroups/{id}": {
      "get": {
        "tags": [
          "Subgroups"
        ],
        "summary": "Get subgroup",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "type": "integer",
            "required": true,
            "description": "Subgroup ID"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "Not found",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      },
      "delete": {
        "tags": [
          "Subgroups"
        ],
        "summary": "Delete subgroup",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "type": "integer",
            "required": true,
            "description": "Subgroup ID"
          }
        ],
        "responses": {
          "204": {
            "description": "Deleted"
          },
          "403": {
            "description": "Forbidden",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "Not found",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/teachers": {
      "get": {
        "tags": [
          "Teachers"
        ],
        "summary": "List teachers",
        "parameters": [],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      },
      "post": {
        "tags": [
          "Teachers"
        ],
        "summary": "Create teacher",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {
              "$ref": "#/definitions/CreateTeacherRequest"
            }
          }
        ],
        "responses": {
          "201": {
            "description": "Created",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "400": {
            "description": "Validation failed",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "401": {
            "description": "Unauthorized",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "403": {
            "description": "Forbidden",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/teachers/{id}": {
      "get": {
        "tags": [
          "Teachers"
        ],
        "summary": "Get teacher",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "type": "integer",
            "required": true,
            "description": "Teacher ID"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "Not found",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      },
      "delete": {
        "tags": [
          "Teachers"
        ],
        "summary": "Delete teacher",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "type": "integer",
            "required": true,
            "description": "Teacher ID"
          }
        ],
        "responses": {
          "204": {
            "description": "Deleted"
          },
          "403": {
            "description": "Forbidden",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "Not found",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/semesters": {
      "get": {
        "tags": [
          "Semesters"
        ],
        "summary": "List semesters",
        "parameters": [
          {
            "name": "school_id",
            "in": "query",
            "type": "integer"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      },
      "post": {
        "tags": [
          "Semesters"
        ],
        "summary": "Create semester",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {
              "$ref": "#/definitions/CreateSemesterRequest"
            }
          }
        ],
        "responses": {
          "201": {
            "description": "Created",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "400": {
            "description": "Validation failed",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "401": {
            "description": "Unauthorized",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "403": {
            "description": "Forbidden",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "200": {
            "description": "Already existed",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/semesters/{id}": {
      "get": {
        "tags": [
          "Semesters"
        ],
        "summary": "Get semester",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "type": "integer",
            "required": true,
            "description": "Semester ID"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "Not found",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      },
      "delete": {
        "tags": [
          "Semesters"
        ],
        "summary": "Delete semester",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "type": "integer",
            "required": true,
            "description": "Semester ID"
          }
        ],
        "responses": {
          "204": {
            "description": "Deleted"
          },
          "403": {
            "description": "Forbidden",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "Not found",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/semesters/current": {
      "get": {
        "tags": [
          "Semesters"
        ],
        "summary": "Current semester and week parity",
        "parameters": [
          {
            "name": "school_id",
            "in": "query",
            "type": "integer",
            "required": true
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "No semester covers today",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/lessons": {
      "get": {
        "tags": [
          "Lessons"
        ],
        "summary": "List lessons",
        "parameters": [
          {
            "name": "class_id",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "subgroup_id",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "teacher_id",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "weekday",
            "in": "query",
            "type": "integer",
            "description": "0 = Monday"
          },
          {
            "name": "is_odd_week",
            "in": "query",
            "type": "boolean"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      },
      "post": {
        "tags": [
          "Lessons"
        ],
        "summary": "Create lesson",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {
              "$ref": "#/definitions/CreateLessonRequest"
            }
          }
        ],
        "responses": {
          "201": {
            "description": "Created",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "400": {
            "description": "Validation failed",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "401": {
            "description": "Unauthorized",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "403": {
            "description": "Forbidden",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "200": {
            "description": "Already existed",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      },
      "patch": {
        "tags": [
          "Hotfixes"
        ],
        "summary": "Create hotfix",
        "description": "Overrides one lesson on for_date. Without lesson_id and with is_existing=false the whole school day is cancelled, which needs teacher access.",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {
              "$ref": "#/definitions/CreateHotfixRequest"
            }
          }
        ],
        "responses": {
          "201": {
            "description": "Created",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "403": {
            "description": "Forbidden",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "Lesson not found",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "422": {
            "description": "Missing school_id",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/lessons/{id}": {
      "get": {
        "tags": [
          "Lessons"
        ],
        "summary": "Get lesson",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "type": "integer",
            "required": true,
            "description": "Lesson ID"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "Not found",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      },
      "delete": {
        "tags": [
          "Lessons"
        ],
        "summary": "Delete lesson",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "type": "integer",
            "required": true,
            "description": "Lesson ID"
          }
        ],
        "responses": {
          "204": {
            "description": "Deleted"
          },
          "403": {
            "description": "Forbidden",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "Not found",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/lessons/subgroups": {
      "post": {
        "tags": [
          "Lessons"
        ],
        "summary": "Link lesson to subgroup",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "payload",
            "in": "body",
            "required": true,
            "schema": {
              "$ref": "#/definitions/LinkSubgroupRequest"
            }
          }
        ],
        "responses": {
          "201": {
            "description": "Linked",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "200": {
            "description": "Already linked",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/lessons/nearest": {
      "get": {
        "tags": [
          "Lessons"
        ],
        "summary": "Nearest day with lessons",
        "description": "Searches today and the following six days; today counts until its last lesson ends.",
        "parameters": [
          {
            "name": "class_id",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "subgroup_id",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "teacher_id",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "double",
            "in": "query",
            "type": "boolean",
            "description": "Merge back-to-back identical lessons"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "No lessons in the next 7 days",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/lessons/today": {
      "get": {
        "tags": [
          "Lessons"
        ],
        "summary": "Lessons of today",
        "parameters": [
          {
            "name": "class_id",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "subgroup_id",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "teacher_id",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "double",
            "in": "query",
            "type": "boolean",
            "description": "Merge back-to-back identical lessons"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "No current semester",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/lessons/weekday": {
      "get": {
        "tags": [
          "Lessons"
        ],
        "summary": "Lessons of the next occurrence of a weekday",
        "parameters": [
          {
            "name": "weekday",
            "in": "query",
            "type": "integer",
            "required": true,
            "description": "0 = Monday"
          },
          {
            "name": "class_id",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "subgroup_id",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "teacher_id",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "double",
            "in": "query",
            "type": "boolean",
            "description": "Merge back-to-back identical lessons"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "No current semester",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/lessons/hotfix": {
      "get": {
        "tags": [
          "Hotfixes"
        ],
        "summary": "List hotfixes of a date",
        "parameters": [
          {
            "name": "for_date",
            "in": "query",
            "type": "string",
            "required": true,
            "description": "YYYY-MM-DD"
          },
          {
            "name": "school_id",
            "in": "query",
            "type": "integer",
            "required": true
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/lessons/hotfix/{id}": {
      "get": {
        "tags": [
          "Hotfixes"
        ],
        "summary": "Get hotfix",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "type": "integer",
            "required": true,
            "description": "Hotfix ID"
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "404": {
            "description": "Not found",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      },
      "delete": {
        "tags": [
          "Hotfixes"
        ],
        "summary": "Delete hotfix",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "type": "integer",
            "required": true,
            "description": "Hotfix ID"
          }
        ],
        "responses": {
          "204": {
            "description": "Deleted"
          },
          "404": {
            "description": "Not found",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/timetable": {
      "post": {
        "tags": [
          "Timetable"
        ],
        "summary": "Import weekly timetable",
        "consumes": [
          "multipart/form-data"
        ],
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "school_id",
            "in": "formData",
            "type": "integer",
            "required": true
          },
          {
            "name": "lessons_file",
            "in": "formData",
            "type": "file",
            "required": true,
            "description": "xls, xlsx, html, yaml or csv"
          }
        ],
        "responses": {
          "200": {
            "description": "Import report",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "400": {
            "description": "Invalid upload",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "413": {
            "description": "File too large",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "422": {
            "description": "Unreadable file",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      },
      "patch": {
        "tags": [
          "Timetable"
        ],
        "summary": "Import hotfixes",
        "consumes": [
          "multipart/form-data"
        ],
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "parameters": [
          {
            "name": "school_id",
            "in": "formData",
            "type": "integer",
            "required": true
          },
          {
            "name": "lessons_file",
            "in": "formData",
            "type": "file",
            "required": true,
            "description": "xls, xlsx, html, yaml or csv"
          }
        ],
        "responses": {
          "200": {
            "description": "Import report",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          },
          "400": {
            "description": "Invalid upload",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/timetable/export": {
      "get": {
        "tags": [
          "Timetable"
        ],
        "summary": "Export weekly timetable",
        "produces": [
          "text/csv",
          "application/pdf"
        ],
        "parameters": [
          {
            "name": "class_id",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "subgroup_id",
            "in": "query",
            "type": "integer"
          },
          {
            "name": "format",
            "in": "query",
            "type": "string",
            "description": "csv or pdf"
          }
        ],
        "responses": {
          "200": {
            "description": "Rendered file",
            "schema": {
              "type": "file"
            }
          },
          "400": {
            "description": "Invalid format or scope",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    },
    "/metrics/summary": {
      "get": {
        "tags": [
          "Metrics"
        ],
        "summary": "Metrics summary",
        "security": [
          {
            "BearerAuth": []
          }
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {
              "$ref": "#/definitions/ResponseEnvelope"
            }
          }
        }
      }
    }
  },
  "definitions": {
    "LoginRequest": {
      "type": "object",
      "required": [
        "name",
        "password"
      ],
      "properties": {
        "name": {
          "type": "string"
        },
        "password": {
          "type": "string"
        }
      }
    },
    "RegisterUserRequest": {
      "type": "object",
      "required": [
        "name",
        "password"
      ],
      "properties": {
        "name": {
          "type": "string"
        },
        "password": {
          "type": "string"
        },
        "access_level": {
          "type": "integer",
          "description": "0 unauthorized, 1 class president, 2 teacher, 3 admin"
        }
      }
    },
    "CreateSchoolRequest": {
      "type": "object",
      "required": [
        "name",
        "address"
      ],
      "properties": {
        "name": {
          "type": "string"
        },
        "address": {
          "type": "string"
        },
        "is_using_double_week": {
          "type": "boolean"
        }
      }
    },
    "CreateClassRequest": {
      "type": "object",
      "required": [
        "school_id",
        "number",
        "letter"
      ],
      "properties": {
        "school_id": {
          "type": "integer"
        },
        "number": {
          "type": "integer"
        },
        "letter": {
          "type": "string"
        }
      }
    },
    "CreateSubgroupRequest": {
      "type": "object",
      "required": [
        "class_id",
        "name"
      ],
      "properties": {
        "class_id": {
          "type": "integer"
        },
        "name": {
          "type": "string"
        }
      }
    },
    "CreateTeacherRequest": {
      "type": "object",
      "required": [
        "name"
      ],
      "properties": {
        "name": {
          "type": "string"
        }
      }
    },
    "CreateSemesterRequest": {
      "type": "object",
      "required": [
        "school_id",
        "start_date",
        "end_date"
      ],
      "properties": {
        "school_id": {
          "type": "integer"
        },
        "start_date": {
          "type": "string",
          "format": "date",
          "example": "2024-01-08"
        },
        "end_date": {
          "type": "string",
          "format": "date",
          "example": "2024-05-31"
        },
        "week_reverse": {
          "type": "boolean",
          "description": "Swap odd and even weeks; null when the school does not alternate weeks"
        }
      }
    },
    "CreateLessonRequest": {
      "type": "object",
      "required": [
        "school_id",
        "name",
        "start_time",
        "end_time",
        "room",
        "teacher_id"
      ],
      "properties": {
        "school_id": {
          "type": "integer"
        },
        "name": {
          "type": "string"
        },
        "start_time": {
          "type": "string",
          "example": "08:30"
        },
        "end_time": {
          "type": "string",
          "example": "08:30"
        },
        "weekday": {
          "type": "integer",
          "description": "0 = Monday"
        },
        "is_odd_week": {
          "type": "boolean",
          "description": "null for every week"
        },
        "room": {
          "type": "string"
        },
        "teacher_id": {
          "type": "integer"
        }
      }
    },
    "LinkSubgroupRequest": {
      "type": "object",
      "required": [
        "lesson_id",
        "subgroup_id"
      ],
      "properties": {
        "lesson_id": {
          "type": "integer"
        },
        "subgroup_id": {
          "type": "integer"
        }
      }
    },
    "CreateHotfixRequest": {
      "type": "object",
      "required": [
        "for_date"
      ],
      "properties": {
        "lesson_id": {
          "type": "integer"
        },
        "school_id": {
          "type": "integer"
        },
        "for_date": {
          "type": "string",
          "format": "date",
          "example": "2024-01-10"
        },
        "is_existing": {
          "type": "boolean"
        },
        "name": {
          "type": "string"
        },
        "start_time": {
          "type": "string",
          "example": "08:30"
        },
        "end_time": {
          "type": "string",
          "example": "08:30"
        },
        "room": {
          "type": "string"
        },
        "teacher_id": {
          "type": "integer"
        }
      }
    },
    "APIError": {
      "type": "object",
      "properties": {
        "code": {
          "type": "string"
        },
        "message": {
          "type": "string"
        },
        "status": {
          "type": "integer"
        }
      }
    },
    "ResponseEnvelope": {
      "type": "object",
      "properties": {
        "data": {
          "type": "object"
        },
        "error": {
          "$ref": "#/definitions/APIError"
        },
        "meta": {
          "type": "object"
        }
      }
    }
  }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
