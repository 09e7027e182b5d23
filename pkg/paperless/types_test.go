package paperless_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

func TestPage_HasNext(t *testing.T) {
	t.Parallel()

	next := "https://example.com/api/documents/?page=2"
	empty := ""

	assert.True(t, (&paperless.Page[int]{Next: &next}).HasNext())
	assert.False(t, (&paperless.Page[int]{Next: &empty}).HasNext())
	assert.False(t, (&paperless.Page[int]{}).HasNext())
}

func TestMatchingAlgorithm_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    paperless.MatchingAlgorithm
		wantErr bool
	}{
		{"none", "0", paperless.MatchNone, false},
		{"any", "1", paperless.MatchAny, false},
		{"auto", "6", paperless.MatchAuto, false},
		{"above domain", "7", 0, true},
		{"negative", "-1", 0, true},
		{"wrong type", `"any"`, 0, true},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var algorithm paperless.MatchingAlgorithm

			err := json.Unmarshal([]byte(testCase.input), &algorithm)
			if testCase.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, algorithm)
		})
	}
}

func TestTaskStatus_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"PENDING", "STARTED", "SUCCESS", "FAILURE"} {
		var status paperless.TaskStatus

		err := json.Unmarshal([]byte(`"`+valid+`"`), &status)
		require.NoError(t, err)
		assert.Equal(t, paperless.TaskStatus(valid), status)
	}

	var status paperless.TaskStatus

	err := json.Unmarshal([]byte(`"RUNNING"`), &status)
	require.Error(t, err)
	assert.ErrorIs(t, err, paperless.ErrValueOutOfRange)
}

func TestTaskStatus_Terminal(t *testing.T) {
	t.Parallel()

	assert.False(t, paperless.TaskStatusPending.Terminal())
	assert.False(t, paperless.TaskStatusStarted.Terminal())
	assert.True(t, paperless.TaskStatusSuccess.Terminal())
	assert.True(t, paperless.TaskStatusFailure.Terminal())
}

func TestShareLinkFileVersion_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var version paperless.ShareLinkFileVersion

	require.NoError(t, json.Unmarshal([]byte(`"original"`), &version))
	assert.Equal(t, paperless.ShareLinkFileOriginal, version)

	require.NoError(t, json.Unmarshal([]byte(`"archive"`), &version))
	assert.Equal(t, paperless.ShareLinkFileArchive, version)

	err := json.Unmarshal([]byte(`"thumbnail"`), &version)
	require.Error(t, err)
	assert.ErrorIs(t, err, paperless.ErrValueOutOfRange)
}

func TestPage_MalformedItemFailsWholePage(t *testing.T) {
	t.Parallel()

	// The second tag carries an out-of-domain matching algorithm; the
	// whole page decode must fail, not yield a partial page.
	body := `{
		"count": 2,
		"next": null,
		"previous": null,
		"results": [
			{"id": 1, "name": "inbox", "matching_algorithm": 1},
			{"id": 2, "name": "broken", "matching_algorithm": 99}
		]
	}`

	var page paperless.Page[paperless.Tag]

	err := json.Unmarshal([]byte(body), &page)
	require.Error(t, err)
	assert.ErrorIs(t, err, paperless.ErrValueOutOfRange)
}

func TestPage_DecodeIdempotent(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"count": 2,
		"next": "https://example.com/api/tags/?page=2",
		"previous": null,
		"results": [
			{"id": 1, "name": "inbox", "matching_algorithm": 1},
			{"id": 2, "name": "archive", "matching_algorithm": 6}
		]
	}`)

	var first, second paperless.Page[paperless.Tag]

	require.NoError(t, json.Unmarshal(body, &first))
	require.NoError(t, json.Unmarshal(body, &second))
	assert.Equal(t, first.Results, second.Results)
	assert.Equal(t, first.Count, second.Count)
}

func TestDocument_YAMLRoundTrip(t *testing.T) {
	t.Parallel()

	correspondent := 3
	document := paperless.Document{
		ID:            42,
		Correspondent: &correspondent,
		Title:         "Invoice 2024-03",
		Tags:          []int{1, 2},
	}

	data, err := yaml.Marshal(&document)
	require.NoError(t, err)

	var decoded paperless.Document

	err = yaml.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, document.ID, decoded.ID)
	assert.Equal(t, document.Title, decoded.Title)
	assert.Equal(t, document.Tags, decoded.Tags)
	require.NotNil(t, decoded.Correspondent)
	assert.Equal(t, correspondent, *decoded.Correspondent)
}
