package store

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Documents are schema-checked when they are read back, so downstream code
// never sees a malformed shape even if the underlying rows were written by
// older deployments or external tooling.

const studentSchema = `{
	"type": "object",
	"required": ["id", "name", "email"],
	"properties": {
		"id": {"type": "string", "pattern": "^[0-9]{9}$"},
		"name": {"type": "string"},
		"email": {"type": "string"},
		"enrolled_courses": {"type": ["array", "null"], "items": {"type": "string"}},
		"assignment_ids": {"type": ["array", "null"], "items": {"type": "string"}},
		"grade_sheet": {
			"type": ["object", "null"],
			"additionalProperties": {"type": "number", "minimum": 0, "maximum": 100}
		},
		"program": {"type": "string"},
		"semester": {"type": "string", "enum": ["A", "B", "C", ""]},
		"completed_credits": {"type": "integer", "minimum": 0}
	}
}`

const courseSchema = `{
	"type": "object",
	"required": ["code", "name", "credits"],
	"properties": {
		"code": {"type": "string", "minLength": 1},
		"name": {"type": "string"},
		"credits": {"type": "integer", "minimum": 1},
		"semester": {"type": "string", "enum": ["A", "B", "C", ""]},
		"assignment_ids": {"type": ["array", "null"], "items": {"type": "string"}}
	}
}`

const programSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"total_credits": {"type": "integer", "minimum": 0},
		"course_codes": {"type": ["array", "null"], "items": {"type": "string"}}
	}
}`

const recordSchema = `{
	"type": "object",
	"required": ["id", "student_id", "course_code", "grade", "attempts"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"student_id": {"type": "string", "pattern": "^[0-9]{9}$"},
		"course_code": {"type": "string", "minLength": 1},
		"grade": {"type": "number", "minimum": 0, "maximum": 100},
		"semester": {"type": "string", "enum": ["A", "B", "C"]},
		"year": {"type": "integer", "minimum": 1000, "maximum": 9999},
		"attempts": {"type": "integer", "minimum": 1}
	}
}`

const userSchema = `{
	"type": "object",
	"required": ["uid", "email", "role"],
	"properties": {
		"uid": {"type": "string", "minLength": 1},
		"email": {"type": "string"},
		"role": {"type": "string", "enum": ["admin", "user"]},
		"is_active": {"type": "boolean"}
	}
}`

func compileSchemas() (map[string]*jsonschema.Schema, error) {
	sources := map[string]string{
		CollectionStudents: studentSchema,
		CollectionCourses:  courseSchema,
		CollectionPrograms: programSchema,
		CollectionRecords:  recordSchema,
		CollectionUsers:    userSchema,
	}

	schemas := make(map[string]*jsonschema.Schema, len(sources))
	for collection, source := range sources {
		schema, err := jsonschema.CompileString(collection+".json", source)
		if err != nil {
			return nil, fmt.Errorf("compile schema for %s: %w", collection, err)
		}
		schemas[collection] = schema
	}

	return schemas, nil
}
