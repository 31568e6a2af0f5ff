package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FileMetadata is the plaintext JSON encrypted into every file record.
// Field names are part of the wire format.
type FileMetadata struct {
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	Mime         string `json:"mime"`
	Key          string `json:"key"`
	LastModified int64  `json:"lastModified"`
}

// FolderMetadata is the plaintext JSON encrypted into every folder record.
type FolderMetadata struct {
	Name string `json:"name"`
}

// UnmarshalJSON accepts size and lastModified as numbers or numeric strings,
// as written by older clients. Values that do not parse become zero.
func (m *FileMetadata) UnmarshalJSON(data []byte) error {
	var aux struct {
		Name         string          `json:"name"`
		Size         json.RawMessage `json:"size"`
		Mime         string          `json:"mime"`
		Key          string          `json:"key"`
		LastModified json.RawMessage `json:"lastModified"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	m.Name = aux.Name
	m.Mime = aux.Mime
	m.Key = aux.Key
	m.Size = lenientInt(aux.Size)
	m.LastModified = lenientInt(aux.LastModified)
	return nil
}

func lenientInt(raw json.RawMessage) int64 {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}
