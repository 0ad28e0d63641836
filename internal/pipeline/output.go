package pipeline

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutputPath is <input-stem>.summary.txt next to the input video.
func DefaultOutputPath(videoPath string) string {
	stem := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	return filepath.Join(filepath.Dir(videoPath), stem+".summary.txt")
}

// writeSummary persists the summary. A .docx destination gets a styled
// document; anything else is written as plain UTF-8 text.
func (p *implPipeline) writeSummary(videoPath, outPath, summary string) error {
	if strings.EqualFold(filepath.Ext(outPath), ".docx") {
		title := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
		return writeDocx(title, summary, outPath)
	}
	return os.WriteFile(outPath, []byte(summary), 0644)
}
