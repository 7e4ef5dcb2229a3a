// Package schemas holds the JSON schema validators applied to each
// collection at creation time. The schema files are embedded so the seeder
// binary stays self-contained.
package schemas

import (
	"embed"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

//go:embed *.json
var files embed.FS

// Load parses the embedded schema for the named collection into a document
// suitable for use as a $jsonSchema validator.
func Load(collection string) (bson.M, error) {
	data, err := files.ReadFile(collection + ".json")
	if err != nil {
		return nil, fmt.Errorf("no schema for collection %q: %w", collection, err)
	}

	var schema bson.M
	if err := bson.UnmarshalExtJSON(data, false, &schema); err != nil {
		return nil, fmt.Errorf("invalid schema for collection %q: %w", collection, err)
	}
	return schema, nil
}
