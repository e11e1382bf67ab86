package generator

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Badsnus/prettyqr/pkg/logger"
)

type Generator struct {
	OutputDir string
	logger    *logger.Logger
	rng       *rand.Rand
}

// New returns a generator writing into outputDir, resolved against the
// working directory when relative. A zero seed picks a time based one.
func New(outputDir string, seed int64, log *logger.Logger) *Generator {
	if !filepath.IsAbs(outputDir) {
		wd, _ := os.Getwd()
		outputDir = filepath.Join(wd, outputDir)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Generator{
		OutputDir: outputDir,
		logger:    log,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Generate renders style into OutputDir and returns the file id and path.
// The id is the style name, or a random UUID for unnamed styles.
func (g *Generator) Generate(style Style) (string, string, error) {
	id := style.Name
	if id == "" {
		id = uuid.New().String()
	}
	// The id becomes a file name inside OutputDir.
	if id == "." || id == ".." || filepath.Base(id) != id || strings.ContainsAny(id, `/\`) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidName, style.Name)
	}

	img, err := style.Render(g.rng)
	if err != nil {
		return "", "", fmt.Errorf("failed to render %s: %w", id, err)
	}

	if err = g.ensureOutputDir(); err != nil {
		return "", "", err
	}

	filePath := filepath.Join(g.OutputDir, id+".png")
	if err = img.Save(filePath); err != nil {
		return "", "", fmt.Errorf("failed to save QR code: %w", err)
	}

	g.logger.Infof("(style: %s) saved %s QR code %dx%d to %s", id, style.kind(), img.Bounds().Dx(), img.Bounds().Dy(), filePath)
	return id, filePath, nil
}

func (g *Generator) ensureOutputDir() error {
	if _, err := os.Stat(g.OutputDir); os.IsNotExist(err) {
		err = os.MkdirAll(g.OutputDir, os.ModePerm)
		if err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return nil
}

func (g *Generator) Delete(filePath string) error {
	err := os.Remove(filePath)
	if err != nil {
		return fmt.Errorf("failed to delete QR code file: %w", err)
	}
	g.logger.Debugf("deleted %s", filePath)
	return nil
}
