package service

import (
	"encoding/json"
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/MKhiriev/go-cloud-keeper/internal/utils"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

// lastModifiedFloor is 2001-01-01T00:00:00Z in milliseconds. Older values
// come from clients that wrote garbage and are replaced by the server
// timestamp.
const lastModifiedFloor int64 = 978307200000

// secondsThreshold separates second from millisecond timestamps.
const secondsThreshold int64 = 100_000_000_000

var errEmptyName = errors.New("decoded item has no name")

func toMillis(ts int64) int64 {
	if ts > 0 && ts < secondsThreshold {
		return ts * 1000
	}
	return ts
}

// normalizeLastModified keeps lastModified when it is plausible and falls
// back to the server timestamp otherwise.
func normalizeLastModified(lastModified, serverTimestamp int64) int64 {
	if lastModified > lastModifiedFloor && lastModified < math.MaxInt64 {
		return lastModified
	}
	return toMillis(serverTimestamp)
}

// parseFileMetadata turns decrypted file metadata into the metadata half of
// a decoded item.
func parseFileMetadata(plain string) (models.DecodedItem, error) {
	var meta models.FileMetadata
	if err := json.Unmarshal([]byte(plain), &meta); err != nil {
		return models.DecodedItem{}, err
	}
	name := utils.StripTags(meta.Name)
	if strings.TrimSpace(name) == "" {
		return models.DecodedItem{}, errEmptyName
	}
	return models.DecodedItem{
		Type:         models.ItemFile,
		Name:         name,
		Size:         meta.Size,
		Mime:         utils.StripTags(meta.Mime),
		Key:          meta.Key,
		LastModified: meta.LastModified,
	}, nil
}

func parseFolderMetadata(plain string) (models.DecodedItem, error) {
	var meta models.FolderMetadata
	if err := json.Unmarshal([]byte(plain), &meta); err != nil {
		return models.DecodedItem{}, err
	}
	name := utils.StripTags(meta.Name)
	if strings.TrimSpace(name) == "" {
		return models.DecodedItem{}, errEmptyName
	}
	return models.DecodedItem{Type: models.ItemFolder, Name: name}, nil
}

// completeFile merges the decoded metadata with the server record.
func completeFile(meta models.DecodedItem, raw models.RawFile, source models.ListingSource) models.DecodedItem {
	item := meta
	item.UUID = raw.UUID
	item.Parent = raw.Parent
	item.Type = models.ItemFile
	item.Source = source
	if item.Size <= 0 {
		item.Size = raw.Size
	}
	item.LastModified = normalizeLastModified(meta.LastModified, raw.Timestamp)
	item.Timestamp = toMillis(raw.Timestamp)
	item.Chunks = raw.Chunks
	item.Region = raw.Region
	item.Bucket = raw.Bucket
	item.Version = raw.Version
	item.SharerEmail = raw.SharerEmail
	item.ReceiverEmail = raw.ReceiverEmail
	return item
}

func completeFolder(meta models.DecodedItem, raw models.RawFolder, source models.ListingSource) models.DecodedItem {
	ts := toMillis(raw.Timestamp)
	return models.DecodedItem{
		UUID:          raw.UUID,
		Parent:        raw.Parent,
		Type:          models.ItemFolder,
		Source:        source,
		Name:          meta.Name,
		LastModified:  ts,
		Timestamp:     ts,
		SharerEmail:   raw.SharerEmail,
		ReceiverEmail: raw.ReceiverEmail,
	}
}

// itemMetadataJSON renders the plaintext metadata of item. Field names are
// part of the wire format.
func itemMetadataJSON(item models.DecodedItem) (string, error) {
	var (
		raw []byte
		err error
	)
	if item.IsFolder() {
		raw, err = json.Marshal(models.FolderMetadata{Name: item.Name})
	} else {
		raw, err = json.Marshal(models.FileMetadata{
			Name:         item.Name,
			Size:         item.Size,
			Mime:         item.Mime,
			Key:          item.Key,
			LastModified: item.LastModified,
		})
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SortItems orders a listing the way file managers do: folders first, then
// by name ignoring case. The UUID breaks ties so the order is stable across
// calls.
func SortItems(items []models.DecodedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.IsFolder() != b.IsFolder() {
			return a.IsFolder()
		}
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an != bn {
			return an < bn
		}
		return a.UUID < b.UUID
	})
}
