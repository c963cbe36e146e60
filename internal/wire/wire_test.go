package wire

import (
	"encoding/json"
	"testing"

	"github.com/csbs-dept/portal-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	out, err := Normalize([]byte(`{"_id": 7, "title": "x"}`))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, float64(7), m["id"])
	assert.NotContains(t, m, "_id")
	assert.Equal(t, "x", m["title"])
}

func TestNormalizePassthrough(t *testing.T) {
	out, err := Normalize([]byte(`{"id": 7, "title": "x"}`))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, float64(7), m["id"])
}

func TestNormalizeMalformed(t *testing.T) {
	_, err := Normalize([]byte(`[1, 2]`))
	assert.Error(t, err)
}

func TestDocument(t *testing.T) {
	notice := models.Notice{Title: "x", Category: models.NoticeNew}
	notice.ID = 4

	doc, err := Document(notice)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(doc, &m))
	assert.Equal(t, float64(4), m["_id"])
	assert.NotContains(t, m, "id")
}

func TestDocumentNormalizeRoundTrip(t *testing.T) {
	student := models.Student{Name: "Arun Prakash", RollNo: "CSBS2301", Year: 1, Section: "A", Email: "a@x", CGPA: 8.5}
	student.ID = 13

	doc, err := Document(student)
	require.NoError(t, err)
	norm, err := Normalize(doc)
	require.NoError(t, err)

	var got models.Student
	require.NoError(t, json.Unmarshal(norm, &got))
	assert.Equal(t, student, got)
}
