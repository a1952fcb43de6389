// Package repository exposes typed accessors over the document store. Each
// repository decodes gateway documents into the model structs so downstream
// services never handle raw JSON.
package repository

import (
	"encoding/json"

	"github.com/noah-isme/siakad-go-api/pkg/apperr"
)

func decodeInto(collection string, raw json.RawMessage, target interface{}) error {
	if err := json.Unmarshal(raw, target); err != nil {
		return apperr.NewStore("decode", collection, err)
	}
	return nil
}
