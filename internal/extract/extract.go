package extract

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io"
	"path/filepath"
	"strings"

	. "docdiff/internal/utils"
	"github.com/acarl005/stripansi"
)

// Unsupported is the fixed placeholder returned for anything that is not
// a recognized document format. Callers must not diff it as real content.
const Unsupported = "format not supported, please convert to txt or docx"

// ExtractText returns the plain text content of a document file.
// Recognized: .txt read as raw text (ANSI escapes stripped), .docx/.doc
// unzipped and read from word/document.xml. Everything else, and any
// extraction failure, degrades to the Unsupported placeholder.
func ExtractText(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		content, err := ReadFileToString(path)
		if err != nil { return Unsupported }
		return stripansi.Strip(content)

	case ".docx", ".doc":
		// .doc is tried the same way, some are renamed docx; a real
		// OLE binary fails the zip open and falls through
		content, err := extractDocx(path)
		if err != nil { return Unsupported }
		return content

	default:
		return Unsupported
	}
}

func extractDocx(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil { return "", err }
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name != "word/document.xml" { continue }
		reader, err := file.Open()
		if err != nil { return "", err }
		defer reader.Close()
		return readDocumentXml(reader)
	}
	return "", errors.New("no word/document.xml in archive")
}

// readDocumentXml pulls the visible text out of OOXML markup: w:t runs
// carry the characters, w:p closes a paragraph, w:br and w:tab are
// explicit breaks. All formatting is discarded.
func readDocumentXml(reader io.Reader) (string, error) {
	decoder := xml.NewDecoder(reader)
	var text strings.Builder
	inRun := false

	for {
		token, err := decoder.Token()
		if err == io.EOF { break }
		if err != nil { return "", err }

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t": inRun = true
			case "br": text.WriteByte('\n')
			case "tab": text.WriteByte('\t')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t": inRun = false
			case "p": text.WriteByte('\n')
			}
		case xml.CharData:
			if inRun { text.Write(t) }
		}
	}
	return strings.TrimSuffix(text.String(), "\n"), nil
}
