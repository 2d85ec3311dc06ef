package out_test

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	reportout "lifeos/internal/modules/report/adapter/out"
	apperrors "lifeos/internal/platform/errors"
)

func TestPluginNarratorIntegrationTemplatePlugin(t *testing.T) {
	binPath := buildTemplatePlugin(t)
	narrator := reportout.NewPluginNarrator(binPath)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	prompt := "Total focused time: 480 minutes across 7 sessions."
	narrative, err := narrator.Generate(ctx, prompt)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(narrative, "480 minutes") {
		t.Fatalf("expected narrative to carry the prompt figures, got:\n%s", narrative)
	}
	if !strings.Contains(narrative, "Weekly review") {
		t.Fatalf("expected template heading, got:\n%s", narrative)
	}
}

func TestPluginNarratorMissingBinary(t *testing.T) {
	t.Parallel()
	narrator := reportout.NewPluginNarrator(filepath.Join(t.TempDir(), "no-such-plugin"))
	if _, err := narrator.Generate(context.Background(), "prompt"); !errors.Is(err, apperrors.ErrNarrator) {
		t.Fatalf("expected narrator error, got %v", err)
	}
}

func buildTemplatePlugin(t *testing.T) string {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "narrator-plugin")
	cmd := exec.Command("go", "build", "-o", binPath, "./plugins/narrator")
	cmd.Dir = repositoryRoot(t)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build narrator plugin: %v\n%s", err, string(out))
	}
	return binPath
}

func repositoryRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "../../../../../"))
}
