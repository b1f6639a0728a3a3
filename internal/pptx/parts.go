// Copyright Daniel Amado, 2026. All rights reserved.

package pptx

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// Relationship type and namespace URIs from ECMA-376. Only the parts a
// picture-per-slide deck needs are emitted.
const (
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"

	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relThumbnail      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/thumbnail"
	relSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"

	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctCoreProps    = "application/vnd.openxmlformats-package.core-properties+xml"
	ctAppProps     = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// xmlEscape escapes a string for use in XML character data or attributes.
func xmlEscape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return ""
	}
	return b.String()
}

// contentTypesXML builds [Content_Types].xml with one override per slide.
func contentTypesXML(slideCount int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<Types xmlns="%s">`, nsContentTypes)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
	b.WriteString(`<Default Extension="jpg" ContentType="image/jpeg"/>`)
	b.WriteString(`<Default Extension="jpeg" ContentType="image/jpeg"/>`)
	fmt.Fprintf(&b, `<Override PartName="/ppt/presentation.xml" ContentType="%s"/>`, ctPresentation)
	fmt.Fprintf(&b, `<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="%s"/>`, ctSlideMaster)
	fmt.Fprintf(&b, `<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="%s"/>`, ctSlideLayout)
	fmt.Fprintf(&b, `<Override PartName="/ppt/theme/theme1.xml" ContentType="%s"/>`, ctTheme)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="%s"/>`, i, ctSlide)
	}
	fmt.Fprintf(&b, `<Override PartName="/docProps/core.xml" ContentType="%s"/>`, ctCoreProps)
	fmt.Fprintf(&b, `<Override PartName="/docProps/app.xml" ContentType="%s"/>`, ctAppProps)
	b.WriteString(`</Types>`)
	return b.String()
}

// relationship is one entry in a .rels part.
type relationship struct {
	ID     string
	Type   string
	Target string
}

func relsXML(rels []relationship) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<Relationships xmlns="%s">`, nsRelationships)
	for _, r := range rels {
		fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="%s"/>`, r.ID, r.Type, xmlEscape(r.Target))
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func rootRelsXML() string {
	return relsXML([]relationship{
		{"rId1", relOfficeDocument, "ppt/presentation.xml"},
		{"rId2", relCoreProps, "docProps/core.xml"},
		{"rId3", relExtendedProps, "docProps/app.xml"},
		{"rId4", relThumbnail, "docProps/thumbnail.jpeg"},
	})
}

func corePropsXML(title string, now time.Time) string {
	ts := now.UTC().Format(time.RFC3339)
	return xmlHeader + fmt.Sprintf(
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" `+
			`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" `+
			`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`+
			`<dc:title>%s</dc:title>`+
			`<dc:creator>pdf2pptx</dc:creator>`+
			`<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`+
			`<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`+
			`</cp:coreProperties>`,
		xmlEscape(title), ts, ts)
}

func appPropsXML(slideCount int) string {
	return xmlHeader + fmt.Sprintf(
		`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" `+
			`xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">`+
			`<Application>pdf2pptx</Application>`+
			`<Slides>%d</Slides>`+
			`</Properties>`,
		slideCount)
}

const drawingNS = `xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
	`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"`

// presentationXML references the master as rId1 and each slide as rId2..N+1.
func presentationXML(slideW, slideH int64, slideCount int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:presentation %s>`, drawingNS)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 255+i, 1+i)
	}
	b.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, slideW, slideH)
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func presentationRelsXML(slideCount int) string {
	rels := []relationship{{"rId1", relSlideMaster, "slideMasters/slideMaster1.xml"}}
	for i := 1; i <= slideCount; i++ {
		rels = append(rels, relationship{
			ID:     fmt.Sprintf("rId%d", 1+i),
			Type:   relSlide,
			Target: fmt.Sprintf("slides/slide%d.xml", i),
		})
	}
	return relsXML(rels)
}

// emptySpTree is the minimal shape tree every slide-like part requires.
const emptySpTree = `<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`

func slideMasterXML() string {
	return xmlHeader + fmt.Sprintf(
		`<p:sldMaster %s>`+
			`<p:cSld>`+emptySpTree+`</p:spTree></p:cSld>`+
			`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" `+
			`accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>`+
			`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>`+
			`</p:sldMaster>`,
		drawingNS)
}

func slideMasterRelsXML() string {
	return relsXML([]relationship{
		{"rId1", relSlideLayout, "../slideLayouts/slideLayout1.xml"},
		{"rId2", relTheme, "../theme/theme1.xml"},
	})
}

// slideLayoutXML is the blank layout, the only one the deck uses.
func slideLayoutXML() string {
	return xmlHeader + fmt.Sprintf(
		`<p:sldLayout %s type="blank">`+
			`<p:cSld name="Blank">`+emptySpTree+`</p:spTree></p:cSld>`+
			`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`+
			`</p:sldLayout>`,
		drawingNS)
}

func slideLayoutRelsXML() string {
	return relsXML([]relationship{
		{"rId1", relSlideMaster, "../slideMasters/slideMaster1.xml"},
	})
}

// slideXML places one full-bleed picture. Offsets may be negative: the
// image overshoots the slide on the cropped axis.
func slideXML(pageIndex int, offX, offY, extW, extH int64) string {
	return xmlHeader + fmt.Sprintf(
		`<p:sld %s>`+
			`<p:cSld>`+emptySpTree+
			`<p:pic>`+
			`<p:nvPicPr><p:cNvPr id="2" name="Page %d"/><p:cNvPicPr><a:picLocks noChangeAspect="1"/></p:cNvPicPr><p:nvPr/></p:nvPicPr>`+
			`<p:blipFill><a:blip r:embed="rId1"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>`+
			`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
			`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`+
			`</p:pic>`+
			`</p:spTree></p:cSld>`+
			`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`+
			`</p:sld>`,
		drawingNS, pageIndex+1, offX, offY, extW, extH)
}

func slideRelsXML(mediaName string) string {
	return relsXML([]relationship{
		{"rId1", relImage, "../media/" + mediaName},
		{"rId2", relSlideLayout, "../slideLayouts/slideLayout1.xml"},
	})
}

// themeXML is a minimal but complete drawingml theme. Viewers require the
// full color, font, and format scheme structure even though no slide
// content references it.
func themeXML() string {
	return xmlHeader +
		`<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office Theme">` +
		`<a:themeElements>` +
		`<a:clrScheme name="Office">` +
		`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>` +
		`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
		`<a:dk2><a:srgbClr val="44546A"/></a:dk2>` +
		`<a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>` +
		`<a:accent1><a:srgbClr val="4472C4"/></a:accent1>` +
		`<a:accent2><a:srgbClr val="ED7D31"/></a:accent2>` +
		`<a:accent3><a:srgbClr val="A5A5A5"/></a:accent3>` +
		`<a:accent4><a:srgbClr val="FFC000"/></a:accent4>` +
		`<a:accent5><a:srgbClr val="5B9BD5"/></a:accent5>` +
		`<a:accent6><a:srgbClr val="70AD47"/></a:accent6>` +
		`<a:hlink><a:srgbClr val="0563C1"/></a:hlink>` +
		`<a:folHlink><a:srgbClr val="954F72"/></a:folHlink>` +
		`</a:clrScheme>` +
		`<a:fontScheme name="Office">` +
		`<a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>` +
		`<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>` +
		`</a:fontScheme>` +
		`<a:fmtScheme name="Office">` +
		`<a:fillStyleLst>` +
		`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
		`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
		`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
		`</a:fillStyleLst>` +
		`<a:lnStyleLst>` +
		`<a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:prstDash val="solid"/></a:ln>` +
		`<a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:prstDash val="solid"/></a:ln>` +
		`<a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:prstDash val="solid"/></a:ln>` +
		`</a:lnStyleLst>` +
		`<a:effectStyleLst>` +
		`<a:effectStyle><a:effectLst/></a:effectStyle>` +
		`<a:effectStyle><a:effectLst/></a:effectStyle>` +
		`<a:effectStyle><a:effectLst/></a:effectStyle>` +
		`</a:effectStyleLst>` +
		`<a:bgFillStyleLst>` +
		`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
		`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
		`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
		`</a:bgFillStyleLst>` +
		`</a:fmtScheme>` +
		`</a:themeElements>` +
		`</a:theme>`
}
