package gosoap

import (
	"fmt"

	"github.com/beevik/etree"
)

// ProtocolFault is a SOAP Fault returned by the device: the request was
// understood at the transport level but rejected by the ONVIF service
// (malformed body, unauthorized, unsupported operation). It is not
// retryable.
type ProtocolFault struct {
	Code    string
	Subcode string
	Reason  string
}

func (f *ProtocolFault) Error() string {
	if f.Subcode != "" {
		return fmt.Sprintf("soap fault %s (%s): %s", f.Code, f.Subcode, f.Reason)
	}
	return fmt.Sprintf("soap fault %s: %s", f.Code, f.Reason)
}

// Fault reports whether msg carries a SOAP 1.2 Fault in its Body and,
// if so, returns the decoded fault. A message that is not parseable XML
// reports no fault; the decode path deals with that separately.
func (msg SoapMessage) Fault() (*ProtocolFault, bool) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(msg.String()); err != nil {
		return nil, false
	}

	root := doc.Root()
	if root == nil {
		return nil, false
	}

	elem := root.FindElement("./Body/Fault")
	if elem == nil {
		return nil, false
	}

	fault := &ProtocolFault{}
	if code := elem.FindElement("./Code/Value"); code != nil {
		fault.Code = code.Text()
	}
	if subcode := elem.FindElement("./Code/Subcode/Value"); subcode != nil {
		fault.Subcode = subcode.Text()
	}
	if reason := elem.FindElement("./Reason/Text"); reason != nil {
		fault.Reason = reason.Text()
	}
	return fault, true
}
