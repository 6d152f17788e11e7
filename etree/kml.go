// Package etree renders entries as KML documents built with etree.
package etree

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/archmap"
)

// KMLNamespace is the KML 2.2 namespace.
const KMLNamespace = "http://www.opengis.net/kml/2.2"

// Ensure KMLFormatter implements archmap.Formatter at compile time.
var _ archmap.Formatter = (*KMLFormatter)(nil)

// KMLFormatter renders entries as a KML document with one Placemark each.
type KMLFormatter struct {
	name string
}

// Option configures a KMLFormatter.
type Option func(*KMLFormatter)

// WithDocumentName sets the name of the KML Document element.
func WithDocumentName(name string) Option {
	return func(f *KMLFormatter) {
		f.name = name
	}
}

// NewKMLFormatter creates a new KMLFormatter.
func NewKMLFormatter(opts ...Option) *KMLFormatter {
	f := &KMLFormatter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// idCounter hands out feature and geometry ids for one document.
type idCounter struct {
	features   int
	geometries int
}

func (c *idCounter) nextFeature() string {
	c.features++
	return "feat_" + strconv.Itoa(c.features)
}

func (c *idCounter) nextGeometry() string {
	c.geometries++
	return "geom_" + strconv.Itoa(c.geometries)
}

// Format renders entries in input order. Ids restart at 1 on every call,
// so the same input always renders the same bytes.
func (f *KMLFormatter) Format(entries []archmap.Entry) (string, error) {
	var ids idCounter

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	kml := doc.CreateElement("kml")
	kml.CreateAttr("xmlns", KMLNamespace)

	document := kml.CreateElement("Document")
	document.CreateAttr("id", ids.nextFeature())
	if f.name != "" {
		document.CreateElement("name").SetText(f.name)
	}

	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return "", err
		}

		placemark := document.CreateElement("Placemark")
		placemark.CreateAttr("id", ids.nextFeature())
		placemark.CreateElement("name").SetText(e.Name)
		placemark.CreateElement("description").SetText(e.Comment)

		point := placemark.CreateElement("Point")
		point.CreateAttr("id", ids.nextGeometry())
		point.CreateElement("coordinates").SetText(
			archmap.FormatDecimal(e.Longitude) + "," + archmap.FormatDecimal(e.Latitude) + ",0",
		)
	}

	doc.Indent(2)
	return doc.WriteToString()
}
