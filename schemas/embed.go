// Package schemas holds the JSON Schema files shipped with the builder.
package schemas

import "embed"

// Files contains every *.schema.json in this directory
//
//go:embed *.schema.json
var Files embed.FS

// ResumeRecordFile is the name of the record schema inside Files
const ResumeRecordFile = "resume_record.schema.json"
