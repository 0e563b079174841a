package auditor

import (
	"encoding/xml"
	"strings"

	"github.com/audittax/audittax/internal/common"
)

// nfeDocument covers the slice of the NF-e layout needed at upload time:
// the access key and the line items. The engine parses the rest.
type nfeDocument struct {
	XMLName xml.Name `xml:"nfeProc"`
	NFe     struct {
		InfNFe struct {
			ID    string `xml:"Id,attr"`
			Items []struct {
				Index string `xml:"nItem,attr"`
			} `xml:"det"`
		} `xml:"infNFe"`
	} `xml:"NFe"`
}

// bare layout: some emitters ship the <NFe> element without the
// <nfeProc> wrapper.
type bareNFe struct {
	XMLName xml.Name `xml:"NFe"`
	InfNFe  struct {
		ID    string `xml:"Id,attr"`
		Items []struct {
			Index string `xml:"nItem,attr"`
		} `xml:"det"`
	} `xml:"infNFe"`
}

// ParseDocument extracts the access key and item count from an NF-e XML.
func ParseDocument(content []byte) (documentKey string, totalItems int, err error) {
	var doc nfeDocument
	if xerr := xml.Unmarshal(content, &doc); xerr == nil && doc.NFe.InfNFe.ID != "" {
		return normalizeKey(doc.NFe.InfNFe.ID), len(doc.NFe.InfNFe.Items), nil
	}

	var bare bareNFe
	if xerr := xml.Unmarshal(content, &bare); xerr == nil && bare.InfNFe.ID != "" {
		return normalizeKey(bare.InfNFe.ID), len(bare.InfNFe.Items), nil
	}

	return "", 0, common.NewAppError(common.ErrCodeInvalidInput, "document is not a valid NF-e XML", nil)
}

// normalizeKey strips the "NFe" prefix the Id attribute carries.
func normalizeKey(id string) string {
	return strings.TrimPrefix(id, "NFe")
}
