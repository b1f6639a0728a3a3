// Copyright Daniel Amado, 2026. All rights reserved.

package history

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TDanyStark/pdf-to-pptx/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func finishedJob(input string, state types.JobState) *types.ConversionJob {
	now := time.Now()
	return &types.ConversionJob{
		InputPath:  input,
		OutputDir:  "/out",
		DPI:        200,
		Format:     types.FormatPNG,
		State:      state,
		PagesDone:  3,
		PagesTotal: 3,
		StartedAt:  now.Add(-2 * time.Second),
		FinishedAt: now,
	}
}

func TestStore_AddAndList(t *testing.T) {
	s := openTestStore(t)

	first := finishedJob("a.pdf", types.StateDone)
	paths := &types.OutputPaths{PPTXPath: "/out/a/a.pptx"}
	_, err := s.Add(first, paths, nil)
	require.NoError(t, err)

	second := finishedJob("b.pdf", types.StateFailed)
	second.PagesDone = 1
	_, err = s.Add(second, nil, errors.New("render failed"))
	require.NoError(t, err)

	records, err := s.List(10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, "b.pdf", records[0].InputPath)
	assert.Equal(t, types.StateFailed, records[0].State)
	assert.Equal(t, "render failed", records[0].Error)
	assert.Empty(t, records[0].PPTXPath)

	assert.Equal(t, "a.pdf", records[1].InputPath)
	assert.Equal(t, types.StateDone, records[1].State)
	assert.Equal(t, "/out/a/a.pptx", records[1].PPTXPath)
	assert.Equal(t, 3, records[1].Pages)
	assert.False(t, records[1].FinishedAt.IsZero())
}

func TestStore_ListLimit(t *testing.T) {
	s := openTestStore(t)

	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		_, err := s.Add(finishedJob(name, types.StateDone), nil, nil)
		require.NoError(t, err)
	}

	records, err := s.List(2)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// Non-positive limit falls back to the default.
	records, err = s.List(0)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestStore_Reopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")

	s, err := Open(dir)
	require.NoError(t, err)
	_, err = s.Add(finishedJob("a.pdf", types.StateDone), nil, nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Rows survive a restart.
	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()

	records, err := s.List(10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
