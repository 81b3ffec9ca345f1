package ops

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/calebhs/canvas/internal/errors"
	"github.com/calebhs/canvas/internal/plan"
	"github.com/calebhs/canvas/internal/store"
)

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	// Path overrides the destination; default: ~/.canvas/exports/ai-integration-plan.md
	Path string
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Path       string `json:"path"`
	Counts     Counts `json:"counts"`
	ExportedAt int64  `json:"exported_at"`
}

// Export renders the markdown plan and writes it to disk. The file is
// written to a temp path and renamed into place so a failure preserves any
// previous export.
func Export(database *sql.DB, input ExportInput) (*ExportOutput, error) {
	exportPath := input.Path
	if exportPath == "" {
		var err error
		exportPath, err = defaultExportPath()
		if err != nil {
			return nil, err
		}
	}

	p, err := store.LoadProfile(database)
	if err != nil {
		return nil, err
	}
	b, err := store.LoadBoard(database)
	if err != nil {
		return nil, err
	}

	rendered := plan.Render(p, b)

	if err := os.MkdirAll(filepath.Dir(exportPath), 0700); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to generate temp file name: %w", err))
	}
	tempPath := exportPath + "." + hex.EncodeToString(randBytes) + ".tmp"

	if err := os.WriteFile(tempPath, []byte(rendered), 0600); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to write export file: %w", err))
	}
	if err := os.Rename(tempPath, exportPath); err != nil {
		os.Remove(tempPath)
		return nil, errors.NewInternal(fmt.Errorf("failed to finalize export: %w", err))
	}

	return &ExportOutput{
		Path:       exportPath,
		Counts:     Counts{Total: b.TotalCount(), Priority: b.PriorityCount()},
		ExportedAt: time.Now().Unix(),
	}, nil
}

// defaultExportPath generates the default export path under ~/.canvas/exports.
func defaultExportPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.NewInternal(fmt.Errorf("failed to get home directory: %w", err))
	}
	return filepath.Join(homeDir, ".canvas", "exports", plan.Filename), nil
}
