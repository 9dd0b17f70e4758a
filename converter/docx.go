package converter

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/rgonek/docrebuild/markup"
)

const (
	bulletNumID  = "1"
	orderedNumID = "2"
)

type docxPart struct {
	name    string
	content any
}

// renderDocx writes an Office Open XML package. Parts are emitted in a
// fixed order with no timestamps, so equal input gives equal bytes.
func (s *state) renderDocx(doc markup.Document) ([]byte, error) {
	body := wBody{SectPr: letterSection()}
	for i, block := range doc.Blocks {
		body.Paragraphs = append(body.Paragraphs, s.docxParagraph(block, i+1))
	}

	meta := MetadataFromSummary(s.summary)
	parts := []docxPart{
		{name: "[Content_Types].xml", content: packageContentTypes()},
		{name: "_rels/.rels", content: packageRelationships()},
		{name: "docProps/core.xml", content: s.coreProperties(meta)},
		{name: "docProps/custom.xml", content: customPropertiesFor(meta)},
		{name: "word/_rels/document.xml.rels", content: documentRelationships()},
		{name: "word/document.xml", content: wDocument{XmlnsW: nsWordML, Body: body}},
		{name: "word/styles.xml", content: s.styles()},
		{name: "word/numbering.xml", content: numbering()},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		if err := writePart(zw, part); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish docx archive: %w", err)
	}

	return buf.Bytes(), nil
}

func writePart(zw *zip.Writer, part docxPart) error {
	w, err := zw.Create(part.name)
	if err != nil {
		return fmt.Errorf("failed to create part %s: %w", part.name, err)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write part %s: %w", part.name, err)
	}
	if err := xml.NewEncoder(w).Encode(part.content); err != nil {
		return fmt.Errorf("failed to encode part %s: %w", part.name, err)
	}
	return nil
}

// docxParagraph maps one block to one paragraph.
func (s *state) docxParagraph(block markup.Block, line int) wParagraph {
	switch block.Kind {
	case markup.BlockHeading:
		return wParagraph{
			Props: &wParagraphProps{Style: &wVal{Val: "Heading" + strconv.Itoa(clampHeading(block.Level))}},
			Runs:  s.runs(block, line, false),
		}
	case markup.BlockRule:
		return wParagraph{
			Props: &wParagraphProps{Border: &wBorders{
				Bottom: wBorder{Val: "single", Size: "6", Space: "1", Color: "auto"},
			}},
		}
	case markup.BlockQuote:
		return wParagraph{
			Props: &wParagraphProps{Style: &wVal{Val: "Quote"}},
			Runs:  s.runs(block, line, true),
		}
	case markup.BlockBullet:
		return wParagraph{
			Props: listProps(bulletNumID),
			Runs:  s.runs(block, line, false),
		}
	case markup.BlockOrdered:
		return wParagraph{
			Props: listProps(orderedNumID),
			Runs:  s.runs(block, line, false),
		}
	case markup.BlockBlank:
		return wParagraph{}
	default:
		return wParagraph{Runs: s.runs(block, line, false)}
	}
}

func listProps(numID string) *wParagraphProps {
	return &wParagraphProps{
		Style: &wVal{Val: "ListParagraph"},
		NumPr: &wNumPr{Level: wVal{Val: "0"}, NumID: wVal{Val: numID}},
	}
}

func clampHeading(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}

func letterSection() wSectPr {
	return wSectPr{
		PageSize: wPageSize{Width: "12240", Height: "15840"},
		PageMargins: wPageMargins{
			Top: "1440", Right: "1440", Bottom: "1440", Left: "1440",
			Header: "720", Footer: "720", Gutter: "0",
		},
	}
}

func (s *state) coreProperties(meta Metadata) coreProperties {
	return coreProperties{
		XmlnsCP:      nsCoreProps,
		XmlnsDC:      nsDublinCore,
		XmlnsDCTerms: nsDCTerms,
		XmlnsDCMI:    nsDCMIType,
		XmlnsXSI:     nsXSI,
		Title:        meta.Title,
		Subject:      meta.Subject,
		Creator:      s.config.Creator,
		Description:  meta.Description,
	}
}

func customPropertiesFor(meta Metadata) customProperties {
	return customProperties{
		Xmlns:   nsCustomProps,
		XmlnsVT: nsDocPropsVT,
		Properties: []customProperty{
			// Property ids start at 2; 0 and 1 are reserved.
			{FmtID: customPropsFmtID, PID: 2, Name: "Comment", Value: meta.Comment},
		},
	}
}

func packageContentTypes() contentTypes {
	const wordML = "application/vnd.openxmlformats-officedocument.wordprocessingml."
	return contentTypes{
		Xmlns: nsContentTypes,
		Defaults: []contentTypeDefault{
			{Extension: "rels", ContentType: "application/vnd.openxmlformats-package.relationships+xml"},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []contentTypeOverride{
			{PartName: "/word/document.xml", ContentType: wordML + "document.main+xml"},
			{PartName: "/word/styles.xml", ContentType: wordML + "styles+xml"},
			{PartName: "/word/numbering.xml", ContentType: wordML + "numbering+xml"},
			{PartName: "/docProps/core.xml", ContentType: "application/vnd.openxmlformats-package.core-properties+xml"},
			{PartName: "/docProps/custom.xml", ContentType: "application/vnd.openxmlformats-officedocument.custom-properties+xml"},
		},
	}
}

func packageRelationships() relationships {
	return relationships{
		Xmlns: nsRelationships,
		Relationships: []relationship{
			{ID: "rId1", Type: relTypeOfficeDocument, Target: "word/document.xml"},
			{ID: "rId2", Type: relTypeCoreProps, Target: "docProps/core.xml"},
			{ID: "rId3", Type: relTypeCustomProps, Target: "docProps/custom.xml"},
		},
	}
}

func documentRelationships() relationships {
	return relationships{
		Xmlns: nsRelationships,
		Relationships: []relationship{
			{ID: "rId1", Type: relTypeStyles, Target: "styles.xml"},
			{ID: "rId2", Type: relTypeNumbering, Target: "numbering.xml"},
		},
	}
}

// headingSizes are run sizes in half-points for Heading1..Heading6.
var headingSizes = [...]string{"32", "28", "26", "24", "22", "22"}

func (s *state) styles() wStyles {
	styles := []wStyle{
		{
			Type:    "paragraph",
			StyleID: "Normal",
			Default: "1",
			Name:    wVal{Val: "Normal"},
			QFormat: &wEmpty{},
			Paragraph: &wParagraphProps{
				Spacing: &wSpacing{After: "120"},
			},
		},
	}

	for i, size := range headingSizes {
		level := i + 1
		styles = append(styles, wStyle{
			Type:    "paragraph",
			StyleID: "Heading" + strconv.Itoa(level),
			Name:    wVal{Val: "heading " + strconv.Itoa(level)},
			BasedOn: &wVal{Val: "Normal"},
			Next:    &wVal{Val: "Normal"},
			UIPrio:  &wVal{Val: "9"},
			QFormat: &wEmpty{},
			Paragraph: &wParagraphProps{
				KeepNext:   &wEmpty{},
				Spacing:    &wSpacing{Before: "240", After: "120"},
				OutlineLvl: &wVal{Val: strconv.Itoa(i)},
			},
			Run: &wRunProps{Bold: &wEmpty{}, Size: &wVal{Val: size}},
		})
	}

	styles = append(styles,
		wStyle{
			Type:    "paragraph",
			StyleID: "Quote",
			Name:    wVal{Val: "Quote"},
			BasedOn: &wVal{Val: "Normal"},
			Next:    &wVal{Val: "Normal"},
			UIPrio:  &wVal{Val: "29"},
			QFormat: &wEmpty{},
			Paragraph: &wParagraphProps{
				Indent: &wIndent{Left: strconv.Itoa(s.config.QuoteIndent)},
			},
			Run: &wRunProps{Italic: &wEmpty{}, Color: &wVal{Val: "404040"}},
		},
		wStyle{
			Type:    "paragraph",
			StyleID: "ListParagraph",
			Name:    wVal{Val: "List Paragraph"},
			BasedOn: &wVal{Val: "Normal"},
			UIPrio:  &wVal{Val: "34"},
			QFormat: &wEmpty{},
			Paragraph: &wParagraphProps{
				Indent: &wIndent{Left: "720"},
			},
		},
	)

	return wStyles{XmlnsW: nsWordML, Styles: styles}
}

// numbering defines one bullet list and one decimal list. Every ordered
// item in the document refers to the same decimal list, so numbering runs
// on across the whole document.
func numbering() wNumbering {
	indent := &wParagraphProps{Indent: &wIndent{Left: "720", Hanging: "360"}}
	return wNumbering{
		XmlnsW: nsWordML,
		AbstractNums: []wAbstractNum{
			{
				ID:             "0",
				MultiLevelType: wVal{Val: "singleLevel"},
				Levels: []wLevel{{
					Level:     "0",
					Start:     wVal{Val: "1"},
					NumFmt:    wVal{Val: "bullet"},
					LevelText: wVal{Val: "•"},
					Justify:   wVal{Val: "left"},
					Paragraph: indent,
				}},
			},
			{
				ID:             "1",
				MultiLevelType: wVal{Val: "singleLevel"},
				Levels: []wLevel{{
					Level:     "0",
					Start:     wVal{Val: "1"},
					NumFmt:    wVal{Val: "decimal"},
					LevelText: wVal{Val: "%1."},
					Justify:   wVal{Val: "left"},
					Paragraph: indent,
				}},
			},
		},
		Nums: []wNum{
			{ID: bulletNumID, AbstractNumID: wVal{Val: "0"}},
			{ID: orderedNumID, AbstractNumID: wVal{Val: "1"}},
		},
	}
}
