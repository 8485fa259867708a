package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	data := []byte("John Smith\nEngineer")
	metadata := NewMetadata("resume.txt", data)

	assert.Equal(t, "resume.txt", metadata.Filename)
	assert.Equal(t, len(data), metadata.Size)
	assert.Len(t, metadata.Hash, 64)

	_, err := time.Parse(time.RFC3339, metadata.Timestamp)
	assert.NoError(t, err)
}

func TestNewMetadata_Hash(t *testing.T) {
	a := NewMetadata("a.txt", []byte("Content 1"))
	b := NewMetadata("b.txt", []byte("Content 1"))
	c := NewMetadata("a.txt", []byte("Content 2"))

	assert.Equal(t, a.Hash, b.Hash)
	assert.NotEqual(t, a.Hash, c.Hash)
}

func TestMetadata_ToJSON(t *testing.T) {
	metadata := &Metadata{
		Filename:  "resume.pdf",
		Size:      42,
		Hash:      "abcd1234",
		Timestamp: "2024-01-01T00:00:00Z",
	}

	jsonBytes, err := metadata.ToJSON()
	require.NoError(t, err)

	var unmarshaled Metadata
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaled))
	assert.Equal(t, *metadata, unmarshaled)
}
