package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewkit/peerscore/internal/application"
	"github.com/reviewkit/peerscore/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	goalsPath := writeFile(t, dir, "goals.json", `[{"id":"g1","owner":"Tom","isMain":true}]`)
	ratingsPath := writeFile(t, dir, "jerry.json", `{"reviewer":"Jerry","votes":[["g1",[["Tom",5]]]]}`)
	junkPath := writeFile(t, dir, "junk.json", `{"foo":"bar"}`)
	missingPath := filepath.Join(dir, "absent.json")

	l := New(application.NewDocumentClassifier())
	docs, err := l.Load(context.Background(), []string{goalsPath, ratingsPath, junkPath, missingPath})
	require.NoError(t, err)
	require.Len(t, docs, 4)

	// Input order is preserved regardless of goroutine scheduling.
	assert.Equal(t, domain.KindGoals, docs[0].Kind)
	assert.Equal(t, goalsPath, docs[0].Name)

	assert.Equal(t, domain.KindRatings, docs[1].Kind)
	assert.Equal(t, "Jerry", docs[1].Ratings.Reviewer)

	assert.Equal(t, domain.KindInvalid, docs[2].Kind, "schema mismatch degrades to invalid")
	assert.Equal(t, domain.KindInvalid, docs[3].Kind, "unreadable file degrades to invalid")
	assert.Equal(t, missingPath, docs[3].Name)
}

func TestLoader_Load_NoPaths(t *testing.T) {
	l := New(application.NewDocumentClassifier())
	docs, err := l.Load(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestLoader_Load_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "goals.json", `[{"id":"g1"}]`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := New(application.NewDocumentClassifier())
	_, err := l.Load(ctx, []string{path})
	assert.ErrorIs(t, err, context.Canceled)
}
