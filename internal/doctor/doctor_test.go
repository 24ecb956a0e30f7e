package doctor_test

import (
	"path/filepath"
	"testing"

	"github.com/Pavinberg/monat/internal/doctor"
	"github.com/Pavinberg/monat/internal/history"
	"github.com/Pavinberg/monat/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConfig(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		want    doctor.Status
		wantFix bool
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "config.toml") },
			want: doctor.StatusOK,
		},
		{
			name: "valid",
			path: func(t *testing.T) string { return testutil.TempConfigFile(t, "max_records = 4\n") },
			want: doctor.StatusOK,
		},
		{
			name:    "invalid",
			path:    func(t *testing.T) string { return testutil.TempConfigFile(t, "max_records = 500\n") },
			want:    doctor.StatusFail,
			wantFix: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := doctor.CheckConfig(tt.path(t))
			assert.Equal(t, tt.want, r.Status)
			assert.Equal(t, tt.wantFix, r.Fix != "")
		})
	}
}

func TestCheckStore_None(t *testing.T) {
	store, err := history.SelectStore(history.Options{Dir: testutil.TempDir(t)})
	require.NoError(t, err)

	r := doctor.CheckStore(store)
	assert.Equal(t, doctor.StatusWarn, r.Status)
	assert.Contains(t, r.Fix, "monat init --global")
}

func TestCheckStore_Local(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.WriteLocalHistory(t, dir, "src")
	store, err := history.SelectStore(history.Options{Dir: dir})
	require.NoError(t, err)

	r := doctor.CheckStore(store)
	assert.Equal(t, doctor.StatusOK, r.Status)
	assert.Contains(t, r.Message, "local")
}

func TestCheckRecords(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.MkdirAll(t, dir, "src")
	testutil.WriteFile(t, dir, "file.txt", "")

	results := doctor.CheckRecords([]string{"src", "gone", "file.txt", filepath.Join(dir, "src")}, dir)

	require.Len(t, results, 2)
	assert.Equal(t, "record_2", results[0].Name)
	assert.Equal(t, doctor.StatusWarn, results[0].Status)
	assert.Equal(t, "record_3", results[1].Name)
}

func TestCheckRecords_AllPresent(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.MkdirAll(t, dir, "a", "b")

	results := doctor.CheckRecords([]string{"a", "b"}, dir)
	require.Len(t, results, 1)
	assert.Equal(t, doctor.StatusOK, results[0].Status)
}

func TestRunAll(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.MkdirAll(t, dir, "src")
	testutil.WriteLocalHistory(t, dir, "src")
	store, err := history.SelectStore(history.Options{Dir: dir})
	require.NoError(t, err)

	results := doctor.RunAll(filepath.Join(dir, "missing.toml"), store, []string{"src"})
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, doctor.StatusOK, r.Status, "check %s should be OK", r.Name)
	}
}
