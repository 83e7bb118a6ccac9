package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTrain(t *testing.T) {
	path := writeFile(t, "train.csv",
		"resume_text,job_description_text,label\n"+
			"\"John Doe\nPython developer\",\"Backend role\nGo or Python\",Good Fit\n"+
			"Short resume,Another role,Not Fit\n")

	rows, err := LoadTrain(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "John Doe\nPython developer", rows[0].ResumeText)
	assert.Equal(t, "Backend role\nGo or Python", rows[0].JobDescriptionText)
	assert.Equal(t, "Good Fit", rows[0].Label)
	assert.Equal(t, "Not Fit", rows[1].Label)
}

func TestLoadTrainMissingColumn(t *testing.T) {
	path := writeFile(t, "train.csv", "resume_text,label\nfoo,Good Fit\n")

	_, err := LoadTrain(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "job_description_text"`)
}

func TestLoadJobDescriptions(t *testing.T) {
	path := writeFile(t, "JDs.csv",
		"id,job_description\n1,\"Software Engineer\nRemote\"\n2,Data Scientist\n")

	jds, err := LoadJobDescriptions(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Software Engineer\nRemote", "Data Scientist"}, jds)
}

func TestLoadAnnotations(t *testing.T) {
	path := writeFile(t, "annotations.json", `{
		"ranklist_1": [[1, 2, 3], [3, 2, 1]],
		"ranklist_2": [[2, 1, 3]],
		"notes": "ignore me"
	}`)

	rankings, err := LoadAnnotations(path)
	require.NoError(t, err)
	require.Len(t, rankings, 2)
	assert.Equal(t, [][]int{{1, 2, 3}, {3, 2, 1}}, rankings["ranklist_1"])
	assert.Equal(t, [][]int{{2, 1, 3}}, rankings["ranklist_2"])
	assert.NotContains(t, rankings, "notes")
}

func TestLoadAnnotationsMissingFile(t *testing.T) {
	_, err := LoadAnnotations(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
