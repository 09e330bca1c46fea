package networking

// Xlmns maps the namespace prefixes used by the operation structs to
// the ONVIF WSDL namespaces. Declared once on every request envelope.
var Xlmns = map[string]string{
	"onvif": "http://www.onvif.org/ver10/schema",
	"tds":   "http://www.onvif.org/ver10/device/wsdl",
	"trt":   "http://www.onvif.org/ver10/media/wsdl",
	"tev":   "http://www.onvif.org/ver10/events/wsdl",
	"tptz":  "http://www.onvif.org/ver20/ptz/wsdl",
	"timg":  "http://www.onvif.org/ver20/imaging/wsdl",
	"tan":   "http://www.onvif.org/ver20/analytics/wsdl",
	"wsa":   "http://www.w3.org/2005/08/addressing",
}
