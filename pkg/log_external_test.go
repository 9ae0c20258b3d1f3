//go:build !noprof

package pkg_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/ardnew/cycleprof"
	"github.com/ardnew/cycleprof/pkg"
)

func TestLogDebug_SiteRegistration(t *testing.T) {
	var buf bytes.Buffer
	original := pkg.Logger()
	defer pkg.SetLogger(original)
	pkg.SetLogger(pkg.NewLogger(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c := cycleprof.NewCollector()
	site := c.Site("decode")
	for i := 0; i < 3; i++ {
		site.Enter().Exit()
	}
	c.Finalize()

	output := buf.String()
	if got := strings.Count(output, "site registered"); got != 1 {
		t.Errorf("site registered lines = %d, want 1: %s", got, output)
	}
	for _, want := range []string{"component=site", "site=decode", "index=0", "component=collector", "report discarded"} {
		if !strings.Contains(output, want) {
			t.Errorf("log output missing %q: %s", want, output)
		}
	}
}
