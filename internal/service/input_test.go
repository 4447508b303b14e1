// internal/service/input_test.go
package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/opsdesk/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDListUnmarshalSingleID(t *testing.T) {
	id := uuid.New()

	var list IDList
	err := json.Unmarshal([]byte(`"`+id.String()+`"`), &list)
	require.NoError(t, err)
	assert.Equal(t, IDList{id}, list)
}

func TestIDListUnmarshalArray(t *testing.T) {
	first, second := uuid.New(), uuid.New()

	var list IDList
	err := json.Unmarshal([]byte(`["`+first.String()+`","`+second.String()+`"]`), &list)
	require.NoError(t, err)
	assert.Equal(t, IDList{first, second}, list)
}

func TestIDListUnmarshalRejectsGarbage(t *testing.T) {
	var list IDList
	assert.Error(t, json.Unmarshal([]byte(`"not-a-uuid"`), &list))
	assert.Error(t, json.Unmarshal([]byte(`42`), &list))
}

func TestIDListDedupe(t *testing.T) {
	first, second := uuid.New(), uuid.New()

	list := IDList{first, second, first, second, first}
	assert.Equal(t, []uuid.UUID{first, second}, list.Dedupe())
}

func TestParseDate(t *testing.T) {
	expected := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	for _, value := range []string{
		"2025-03-10",
		"2025-03-10T14:30:00Z",
		"2025-03-10 14:30:00",
	} {
		got, err := parseDate(value)
		require.NoError(t, err, value)
		assert.Equal(t, expected, got, value)
	}
}

func TestParseDateRejectsUnknownFormat(t *testing.T) {
	_, err := parseDate("10/03/2025")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
