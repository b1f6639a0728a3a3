// Copyright Daniel Amado, 2026. All rights reserved.

package pipeline

import (
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/TDanyStark/pdf-to-pptx/pkg/types"
)

// manifest is the job record written next to the presentation.
type manifest struct {
	Input      string            `yaml:"input"`
	DPI        int               `yaml:"dpi"`
	Format     types.ImageFormat `yaml:"format"`
	Pages      int               `yaml:"pages"`
	PPTX       string            `yaml:"pptx"`
	PageImages []string          `yaml:"page_images"`
	StartedAt  time.Time         `yaml:"started_at"`
	FinishedAt time.Time         `yaml:"finished_at"`
}

// writeManifest records what the job produced, serialized as YAML the
// same way metadata sidecars are written elsewhere in the tree.
func writeManifest(jobDir string, job *types.ConversionJob, out *types.OutputPaths) error {
	m := manifest{
		Input:      job.InputPath,
		DPI:        job.DPI,
		Format:     job.Format,
		Pages:      job.PagesTotal,
		PPTX:       out.PPTXPath,
		PageImages: out.PagePaths,
		StartedAt:  job.StartedAt,
		FinishedAt: time.Now(),
	}
	data, err := yaml.Marshal(&m)
	if err != nil {
		return &types.ConversionError{Page: -1, Err: err}
	}
	path := filepath.Join(jobDir, manifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &types.IOError{Path: path, Err: err}
	}
	return nil
}
