package converter

import "encoding/xml"

const (
	nsWordML        = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsCoreProps     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsCustomProps   = "http://schemas.openxmlformats.org/officeDocument/2006/custom-properties"
	nsDocPropsVT    = "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"
	nsDublinCore    = "http://purl.org/dc/elements/1.1/"
	nsDCTerms       = "http://purl.org/dc/terms/"
	nsDCMIType      = "http://purl.org/dc/dcmitype/"
	nsXSI           = "http://www.w3.org/2001/XMLSchema-instance"

	relTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeCustomProps    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/custom-properties"
	relTypeStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeNumbering      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"

	// customPropsFmtID is the fixed format id Word uses for user-defined
	// document properties.
	customPropsFmtID = "{D5CDD505-2E9C-101B-9397-08002B2CF9AE}"
)

// WordprocessingML document part. Element order inside each struct follows
// the schema sequence; Word rejects out-of-order children.

type wDocument struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	Body    wBody    `xml:"w:body"`
}

type wBody struct {
	Paragraphs []wParagraph `xml:"w:p"`
	SectPr     wSectPr      `xml:"w:sectPr"`
}

type wParagraph struct {
	Props *wParagraphProps `xml:"w:pPr"`
	Runs  []wRun           `xml:"w:r"`
}

type wParagraphProps struct {
	Style      *wVal      `xml:"w:pStyle"`
	KeepNext   *wEmpty    `xml:"w:keepNext"`
	NumPr      *wNumPr    `xml:"w:numPr"`
	Border     *wBorders  `xml:"w:pBdr"`
	Spacing    *wSpacing  `xml:"w:spacing"`
	Indent     *wIndent   `xml:"w:ind"`
	OutlineLvl *wVal      `xml:"w:outlineLvl"`
	RunProps   *wRunProps `xml:"w:rPr"`
}

type wNumPr struct {
	Level wVal `xml:"w:ilvl"`
	NumID wVal `xml:"w:numId"`
}

type wBorders struct {
	Bottom wBorder `xml:"w:bottom"`
}

type wBorder struct {
	Val   string `xml:"w:val,attr"`
	Size  string `xml:"w:sz,attr"`
	Space string `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type wSpacing struct {
	Before string `xml:"w:before,attr,omitempty"`
	After  string `xml:"w:after,attr,omitempty"`
}

type wIndent struct {
	Left    string `xml:"w:left,attr,omitempty"`
	Hanging string `xml:"w:hanging,attr,omitempty"`
}

type wRun struct {
	Props *wRunProps `xml:"w:rPr"`
	Text  wText      `xml:"w:t"`
}

type wRunProps struct {
	Bold   *wEmpty `xml:"w:b"`
	Italic *wEmpty `xml:"w:i"`
	Color  *wVal   `xml:"w:color"`
	Size   *wVal   `xml:"w:sz"`
}

type wText struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

type wVal struct {
	Val string `xml:"w:val,attr"`
}

type wEmpty struct{}

type wSectPr struct {
	PageSize    wPageSize    `xml:"w:pgSz"`
	PageMargins wPageMargins `xml:"w:pgMar"`
}

type wPageSize struct {
	Width  string `xml:"w:w,attr"`
	Height string `xml:"w:h,attr"`
}

type wPageMargins struct {
	Top    string `xml:"w:top,attr"`
	Right  string `xml:"w:right,attr"`
	Bottom string `xml:"w:bottom,attr"`
	Left   string `xml:"w:left,attr"`
	Header string `xml:"w:header,attr"`
	Footer string `xml:"w:footer,attr"`
	Gutter string `xml:"w:gutter,attr"`
}

// Styles part.

type wStyles struct {
	XMLName xml.Name `xml:"w:styles"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	Styles  []wStyle `xml:"w:style"`
}

type wStyle struct {
	Type      string           `xml:"w:type,attr"`
	StyleID   string           `xml:"w:styleId,attr"`
	Default   string           `xml:"w:default,attr,omitempty"`
	Name      wVal             `xml:"w:name"`
	BasedOn   *wVal            `xml:"w:basedOn"`
	Next      *wVal            `xml:"w:next"`
	UIPrio    *wVal            `xml:"w:uiPriority"`
	QFormat   *wEmpty          `xml:"w:qFormat"`
	Paragraph *wParagraphProps `xml:"w:pPr"`
	Run       *wRunProps       `xml:"w:rPr"`
}

// Numbering part.

type wNumbering struct {
	XMLName      xml.Name       `xml:"w:numbering"`
	XmlnsW       string         `xml:"xmlns:w,attr"`
	AbstractNums []wAbstractNum `xml:"w:abstractNum"`
	Nums         []wNum         `xml:"w:num"`
}

type wAbstractNum struct {
	ID             string   `xml:"w:abstractNumId,attr"`
	MultiLevelType wVal     `xml:"w:multiLevelType"`
	Levels         []wLevel `xml:"w:lvl"`
}

type wLevel struct {
	Level     string           `xml:"w:ilvl,attr"`
	Start     wVal             `xml:"w:start"`
	NumFmt    wVal             `xml:"w:numFmt"`
	LevelText wVal             `xml:"w:lvlText"`
	Justify   wVal             `xml:"w:lvlJc"`
	Paragraph *wParagraphProps `xml:"w:pPr"`
}

type wNum struct {
	ID            string `xml:"w:numId,attr"`
	AbstractNumID wVal   `xml:"w:abstractNumId"`
}

// Package parts.

type contentTypes struct {
	XMLName   xml.Name              `xml:"Types"`
	Xmlns     string                `xml:"xmlns,attr"`
	Defaults  []contentTypeDefault  `xml:"Default"`
	Overrides []contentTypeOverride `xml:"Override"`
}

type contentTypeDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type contentTypeOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type relationships struct {
	XMLName       xml.Name       `xml:"Relationships"`
	Xmlns         string         `xml:"xmlns,attr"`
	Relationships []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type coreProperties struct {
	XMLName      xml.Name `xml:"cp:coreProperties"`
	XmlnsCP      string   `xml:"xmlns:cp,attr"`
	XmlnsDC      string   `xml:"xmlns:dc,attr"`
	XmlnsDCTerms string   `xml:"xmlns:dcterms,attr"`
	XmlnsDCMI    string   `xml:"xmlns:dcmitype,attr"`
	XmlnsXSI     string   `xml:"xmlns:xsi,attr"`
	Title        string   `xml:"dc:title"`
	Subject      string   `xml:"dc:subject"`
	Creator      string   `xml:"dc:creator"`
	Description  string   `xml:"dc:description"`
}

type customProperties struct {
	XMLName    xml.Name         `xml:"Properties"`
	Xmlns      string           `xml:"xmlns,attr"`
	XmlnsVT    string           `xml:"xmlns:vt,attr"`
	Properties []customProperty `xml:"property"`
}

type customProperty struct {
	FmtID string `xml:"fmtid,attr"`
	PID   int    `xml:"pid,attr"`
	Name  string `xml:"name,attr"`
	Value string `xml:"vt:lpwstr"`
}
