//go:build !noprof

package sink

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/cycleprof"
	"github.com/ardnew/cycleprof/pkg"
)

var spinSink int

//go:noinline
func spin(n int) {
	sum := spinSink
	for i := 0; i < n; i++ {
		sum += i ^ (sum >> 3)
	}
	spinSink = sum
}

// finalize profiles alpha three times and beta once, then runs h on the
// resulting report.
func finalize(t *testing.T, h cycleprof.ResultHandler) {
	t.Helper()
	c := cycleprof.NewCollector()
	alpha := c.Site("alpha")
	beta := c.Site("beta")
	run := func(s *cycleprof.Site) {
		defer s.Enter().Exit()
		spin(10_000)
	}
	for i := 0; i < 3; i++ {
		run(alpha)
	}
	run(beta)

	var called bool
	c.SetResultHandler(func(r *cycleprof.Report) {
		called = true
		h(r)
	})
	c.Finalize()
	require.True(t, called, "result handler not invoked")
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	finalize(t, func(r *cycleprof.Report) {
		require.NoError(t, WriteText(&buf, r))
	})

	out := buf.String()
	assert.Contains(t, out, "cycleprof: 2 sites, 4 calls")
	assert.Contains(t, out, "process:")
	assert.Contains(t, out, "Site")
	assert.Contains(t, out, "Share")
	a, b := strings.Index(out, "alpha"), strings.Index(out, "beta")
	require.NotEqual(t, -1, a)
	require.NotEqual(t, -1, b)
	assert.Less(t, a, b, "records must keep registration order")
}

func TestWriteText_NoRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, &cycleprof.Report{}))

	assert.Contains(t, buf.String(), "cycleprof: 0 sites, 0 calls")
	assert.NotContains(t, buf.String(), "Share")
}

func TestWriteText_GroupsCallCounts(t *testing.T) {
	c := cycleprof.NewCollector()
	hot := c.Site("hot")
	for i := 0; i < 1500; i++ {
		hot.Enter().Exit()
	}

	var buf bytes.Buffer
	c.SetResultHandler(func(r *cycleprof.Report) {
		require.NoError(t, WriteText(&buf, r))
	})
	c.Finalize()

	assert.Contains(t, buf.String(), "1,500")
}

func TestWriteText_WriterError(t *testing.T) {
	err := WriteText(failWriter{}, &cycleprof.Report{})
	assert.ErrorIs(t, err, errWrite)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	finalize(t, JSON(&buf))

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Records, 2)
	assert.Equal(t, "alpha", got.Records[0].Name)
	assert.Equal(t, uint64(3), got.Records[0].Calls)
	assert.Equal(t, "beta", got.Records[1].Name)
	assert.Equal(t, uint64(1), got.Records[1].Calls)
	assert.NotZero(t, got.CounterHz)
	assert.GreaterOrEqual(t, got.ProcessCycles, got.Records[0].Cycles)
}

func TestWriteJSON_EmptyRecordsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &cycleprof.Report{}))
	assert.Contains(t, buf.String(), `"records": []`)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr error
	}{
		{"text", FormatText, nil},
		{" JSON ", FormatJSON, nil},
		{"Text", FormatText, nil},
		{"yaml", "", pkg.ErrInvalidFormat},
		{"", "", pkg.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, string(tt.want), got.String())
		})
	}
}

func TestWrite_InvalidFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, Format("csv"), &cycleprof.Report{})
	assert.ErrorIs(t, err, pkg.ErrInvalidFormat)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "report.json")
	finalize(t, func(r *cycleprof.Report) {
		require.NoError(t, WriteFile(path, FormatJSON, r))
	})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "alpha"`)
}

func TestWriteFile_EmptyPath(t *testing.T) {
	err := WriteFile("", FormatText, &cycleprof.Report{})
	assert.ErrorIs(t, err, pkg.ErrEmptyPath)
}

func TestFile_Handler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	finalize(t, File(path, FormatText))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "alpha")
}

func TestFile_HandlerLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	original := pkg.Logger()
	pkg.SetLogger(pkg.NewLogger(&buf, nil))
	defer pkg.SetLogger(original)

	File("", FormatText)(&cycleprof.Report{})

	assert.Contains(t, buf.String(), "failed to write report")
	assert.Contains(t, buf.String(), "component=sink")
}

func TestReportCollector(t *testing.T) {
	c := cycleprof.NewCollector()
	// Two call sites sharing a name produce two records.
	c.MarkAs("dup").Exit()
	c.MarkAs("dup").Exit()
	c.MarkAs("solo").Exit()

	var rc *ReportCollector
	c.SetResultHandler(func(r *cycleprof.Report) { rc = NewCollector(r) })
	c.Finalize()
	require.NotNil(t, rc)

	expected := `
# HELP cycleprof_site_calls_total Completed visits to an instrumented site.
# TYPE cycleprof_site_calls_total counter
cycleprof_site_calls_total{site="dup"} 2
cycleprof_site_calls_total{site="solo"} 1
`
	assert.NoError(t, testutil.CollectAndCompare(rc, strings.NewReader(expected),
		"cycleprof_site_calls_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(rc, "cycleprof_site_cycles_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(rc, "cycleprof_process_cycles"))
}

func TestWriteTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycleprof.prom")
	finalize(t, Prometheus(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `cycleprof_site_calls_total{site="alpha"} 3`)
	assert.Contains(t, out, `cycleprof_site_calls_total{site="beta"} 1`)
	assert.Contains(t, out, "cycleprof_profiled_cycles")
}

func TestWriteTextfile_EmptyPath(t *testing.T) {
	assert.ErrorIs(t, WriteTextfile("", &cycleprof.Report{}), pkg.ErrEmptyPath)
}

func TestSlog(t *testing.T) {
	var buf bytes.Buffer
	logger := pkg.NewJSONLogger(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	finalize(t, Slog(logger))

	out := buf.String()
	assert.Contains(t, out, `"msg":"profile report"`)
	assert.Contains(t, out, `"site":"alpha"`)
	assert.Contains(t, out, `"calls":3`)
	assert.Contains(t, out, `"component":"sink"`)
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestZerolog(t *testing.T) {
	var buf bytes.Buffer
	finalize(t, Zerolog(zerolog.New(&buf)))

	out := buf.String()
	assert.Contains(t, out, `"message":"profile report"`)
	assert.Contains(t, out, `"site":"beta"`)
	assert.Contains(t, out, `"calls":1`)
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestTee(t *testing.T) {
	var order []string
	h := Tee(
		func(*cycleprof.Report) { order = append(order, "first") },
		nil,
		func(*cycleprof.Report) { order = append(order, "second") },
	)
	h(&cycleprof.Report{})

	assert.Equal(t, []string{"first", "second"}, order)
}
