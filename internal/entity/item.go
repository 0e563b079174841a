package entity

import "github.com/audittax/audittax/constants"

// Item is one audited line item of the fiscal document.
type Item struct {
	Index       int                  `json:"item_index"` // 1-based, stable across fetches
	ProductCode string               `json:"product_code"`
	ProductName string               `json:"product_name"`
	Status      constants.ItemStatus `json:"status"`
	Issues      []string             `json:"issues"`
	Detail      *ItemDetail          `json:"details,omitempty"`
}

// ItemDetail carries the enriched fiscal fields of an item together with
// the values computed from the reference dataset. Present only when the
// backend supplies enrichment; opaque to the tracking core beyond display.
type ItemDetail struct {
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	AmountTotal float64 `json:"amount_total"`
	NCM         string  `json:"ncm,omitempty"`
	CEST        string  `json:"cest,omitempty"`
	CFOP        string  `json:"cfop,omitempty"`
	CST         string  `json:"cst,omitempty"`
	TaxBase     float64 `json:"tax_base"`
	TaxRate     float64 `json:"tax_rate"`
	TaxValue    float64 `json:"tax_value"`

	// Reference-dataset comparison values.
	RefTaxValue     float64 `json:"ref_tax_value"`
	RefMVAPercent   float64 `json:"ref_mva_percent"`
	RefBenefitValue float64 `json:"ref_benefit_value"`
}
