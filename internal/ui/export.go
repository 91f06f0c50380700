package ui

import (
	. "docdiff/internal/diff"
	. "docdiff/internal/logger"
	json "github.com/goccy/go-json"
	"os"
	"path/filepath"
	"strings"
)

// OnExport writes the report list as json plus a unified diff next to
// the right document.
func (v *Viewer) OnExport() {
	if len(v.Result.Items) == 0 { v.Status = "nothing to export"; return }

	base := strings.TrimSuffix(filepath.Base(v.FileB), filepath.Ext(v.FileB))

	reportFile := base + ".report.json"
	data, err := json.MarshalIndent(v.Result.Items, "", "  ")
	if err != nil { Log.Error("report marshal:", err.Error()); v.Status = "export failed"; return }
	if err := os.WriteFile(reportFile, data, 0644); err != nil {
		Log.Error("report write:", err.Error())
		v.Status = "export failed"
		return
	}

	diffFile := base + ".diff"
	unified, err := Unified(v.NameA, v.ContentA, v.NameB, v.ContentB)
	if err == nil {
		if err := os.WriteFile(diffFile, []byte(unified), 0644); err != nil {
			Log.Error("diff write:", err.Error())
		}
	}

	v.Status = "exported " + reportFile
	Log.Info("exported report to", reportFile)
}
