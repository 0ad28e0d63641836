package pipeline

import (
	"strings"

	"github.com/gomutex/godocx"
)

const (
	docxFontName  = "Times New Roman"
	docxFontSize  = 13
	docxTitleSize = 16
)

// writeDocx writes the summary as a styled docx: a bold title followed by
// one document paragraph per summary paragraph.
func writeDocx(title, summary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	doc.AddParagraph("").AddText(title).Font(docxFontName).Size(docxTitleSize).Color("000000").Bold(true)
	doc.AddParagraph("")

	for _, para := range strings.Split(summary, "\n\n") {
		para = strings.TrimSpace(strings.ReplaceAll(para, "\n", " "))
		if para == "" {
			continue
		}
		p := doc.AddParagraph("")
		p.AddText(para).Font(docxFontName).Size(docxFontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}
